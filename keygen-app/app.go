package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/compose-network/keygen/keygen-app/config"
	"github.com/compose-network/keygen/x/ethkey"
)

// App generates a single account and prints it
type App struct {
	cfg      *config.Config
	log      zerolog.Logger
	provider *ethkey.Provider
	out      io.Writer
}

// NewApp creates a new application instance writing results to out
func NewApp(cfg *config.Config, log zerolog.Logger, out io.Writer, opts ...ethkey.Option) *App {
	opts = append([]ethkey.Option{ethkey.WithLogger(log)}, opts...)

	return &App{
		cfg:      cfg,
		log:      log.With().Str("component", "app").Logger(),
		provider: ethkey.NewProvider(opts...),
		out:      out,
	}
}

// Run generates the account and writes it in the configured format.
// Nothing is written unless generation succeeds.
func (a *App) Run() error {
	acc, err := a.account()
	if err != nil {
		return err
	}

	a.log.Debug().
		Str("address", acc.Address).
		Bool("override", a.cfg.Key.PrivateKey != "").
		Msg("Account derived")

	return render(a.out, a.cfg.Output.Format, acc)
}

func (a *App) account() (*ethkey.Account, error) {
	if a.cfg.Key.PrivateKey == "" {
		acc, err := ethkey.GenerateWith(a.provider, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to generate key: %w", err)
		}
		return acc, nil
	}

	kp, err := ethkey.KeyPairFromHex(a.cfg.Key.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("invalid private key override: %w", err)
	}
	return ethkey.AccountFromKeyPair(kp)
}

func render(w io.Writer, format string, acc *ethkey.Account) error {
	switch format {
	case config.FormatJSON:
		b, err := json.MarshalIndent(acc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode account: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case config.FormatYAML:
		b, err := yaml.Marshal(acc)
		if err != nil {
			return fmt.Errorf("failed to encode account: %w", err)
		}
		_, err = w.Write(b)
		return err
	default:
		_, err := fmt.Fprintf(w, "Private Key: %s\nEthereum Address: %s\n", acc.PrivateKey, acc.Address)
		return err
	}
}
