package wallet

import (
	"strings"

	"github.com/MKhiriev/go-will-keeper/internal/config"
	"github.com/MKhiriev/go-will-keeper/internal/logger"
)

// NewProvider picks the provider variant from cfg. A keystore directory wins
// over a mnemonic; with neither configured the unavailable provider is
// returned so the client still starts and reports the missing wallet on use.
func NewProvider(cfg config.ClientWallet, log *logger.Logger) (Provider, error) {
	switch {
	case strings.TrimSpace(cfg.KeystoreDir) != "":
		log.Info().Str("func", "wallet.NewProvider").Str("keystore", cfg.KeystoreDir).Msg("using keystore wallet")
		return NewKeystoreProvider(cfg.KeystoreDir, cfg.Passphrase, log)
	case strings.TrimSpace(cfg.Mnemonic) != "":
		log.Info().Str("func", "wallet.NewProvider").Int("accounts", cfg.AccountCount).Msg("using mnemonic wallet")
		return NewMnemonicProvider(cfg.Mnemonic, cfg.AccountCount, log)
	default:
		log.Warn().Str("func", "wallet.NewProvider").Msg("no wallet configured")
		return NewUnavailableProvider(), nil
	}
}
