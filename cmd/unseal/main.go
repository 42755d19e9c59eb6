// Command unseal turns a will sealed by the client back into plaintext.
//
//	unseal -in will.pdf.sealed -out will.pdf
//
// The passphrase is taken from APP_SEAL_PASSPHRASE or asked for on the
// terminal.
package main

import (
	"flag"
	"os"
	"strings"

	"github.com/MKhiriev/go-will-keeper/internal/crypto"
	"github.com/MKhiriev/go-will-keeper/internal/logger"
	"github.com/MKhiriev/go-will-keeper/internal/wallet"
	"github.com/caarlos0/env/v11"
)

const role = "will-keeper-unseal"

type unsealConfig struct {
	Passphrase string `env:"APP_SEAL_PASSPHRASE"`
}

func main() {
	log := logger.New(os.Stderr, role)

	in := flag.String("in", "", "sealed will file")
	out := flag.String("out", "", "where to write the plaintext (default: -in without .sealed)")
	flag.Parse()

	if *in == "" {
		log.Fatal().Msg("-in is required")
	}
	dst := *out
	if dst == "" {
		dst = strings.TrimSuffix(*in, ".sealed")
		if dst == *in {
			dst = *in + ".open"
		}
	}

	var cfg unsealConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("error reading environment")
	}
	if cfg.Passphrase == "" {
		var err error
		cfg.Passphrase, err = wallet.ReadPassphrase("Seal passphrase: ", os.Stderr)
		if err != nil {
			log.Fatal().Err(err).Msg("error reading seal passphrase")
		}
	}

	if err := crypto.OpenFile(crypto.NewSealer(), *in, dst, cfg.Passphrase); err != nil {
		log.Fatal().Err(err).Str("in", *in).Msg("unseal failed")
	}
	log.Info().Str("in", *in).Str("out", dst).Msg("will unsealed")
}
