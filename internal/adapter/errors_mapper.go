package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError turns a non-2xx gateway reply into a status sentinel wrapped
// in ErrGatewayUnavailable.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %w: %s", ErrGatewayUnavailable, ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w: %s", ErrGatewayUnavailable, ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %w: %s", ErrGatewayUnavailable, ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w: %s", ErrGatewayUnavailable, ErrNotFound, body)
	case http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w: %w: %s", ErrGatewayUnavailable, ErrRequestTooLarge, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %w: %s", ErrGatewayUnavailable, ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %w: %s", ErrGatewayUnavailable, ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: http %d: %s", ErrGatewayUnavailable, resp.StatusCode(), body)
	}
}

// mapRPCError classifies errors coming back from the node or the bound
// contract. Errors it does not recognise keep their chain so wallet
// sentinels raised inside the signer still match with errors.Is.
func mapRPCError(op string, err error) error {
	if err == nil {
		return nil
	}

	msg := err.Error()
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w: %w", op, ErrRPCTimeout, err)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%s: %w", op, err)
	case errors.Is(err, ethereum.NotFound):
		return fmt.Errorf("%s: %w", op, ErrReceiptNotFound)
	case strings.Contains(msg, "execution reverted"):
		return fmt.Errorf("%s: %w: %s", op, ErrTransactionReverted, msg)
	case strings.Contains(msg, "no contract code"):
		return fmt.Errorf("%s: %w", op, ErrContractNotDeployed)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
