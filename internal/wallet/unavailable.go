package wallet

import (
	"context"
	"math/big"

	"github.com/MKhiriev/go-will-keeper/models"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

type unavailableProvider struct{}

// NewUnavailableProvider returns a Provider that fails every call with
// [ErrNoProvider].
func NewUnavailableProvider() Provider {
	return unavailableProvider{}
}

func (unavailableProvider) Kind() models.ProviderKind {
	return models.ProviderUnavailable
}

func (unavailableProvider) RequestAccounts(context.Context) ([]common.Address, error) {
	return nil, ErrNoProvider
}

func (unavailableProvider) Signer(context.Context, common.Address, *big.Int) (*bind.TransactOpts, error) {
	return nil, ErrNoProvider
}
