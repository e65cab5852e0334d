package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/compose-network/keygen/keygen-app/config"
	"github.com/compose-network/keygen/log"
	"github.com/compose-network/keygen/x/ethkey"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:           "keygen",
		Short:         "Generate an Ethereum account",
		Long:          "Generate a secp256k1 private key and print it with its EIP-55 checksummed Ethereum address.",
		Args:          cobra.NoArgs,
		RunE:          runApp,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run:   runVersion,
	}

	checksumCmd = &cobra.Command{
		Use:   "checksum <address>",
		Short: "Print the EIP-55 checksummed form of an address",
		Args:  cobra.ExactArgs(1),
		RunE:  runChecksum,
	}
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func execute() error {
	initCommands()
	return rootCmd.Execute()
}

func initCommands() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(checksumCmd)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "optional config file path")
	rootCmd.PersistentFlags().String("log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-pretty", false, "enable pretty logging")

	// Output flags
	rootCmd.Flags().String("format", "", "output format (text, json, yaml)")
	rootCmd.Flags().String("private-key", "", "hex private key to derive from instead of generating one")
}

func runApp(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := log.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Debug().
		Str("version", Version).
		Str("git_commit", GitCommit).
		Str("go_version", runtime.Version()).
		Str("config_file", cfgFile).
		Str("format", cfg.Output.Format).
		Msg("Configuration loaded")

	return NewApp(cfg, log.Logger, cmd.OutOrStdout()).Run()
}

func runChecksum(cmd *cobra.Command, args []string) error {
	addr, err := ethkey.ToChecksum(args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), addr)
	return err
}

func runVersion(*cobra.Command, []string) {
	fmt.Printf("keygen\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Time: %s\n", BuildTime)
	fmt.Printf("Git Commit: %s\n", GitCommit)
	fmt.Printf("Go Version: %s\n", runtime.Version())
	fmt.Printf("OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if f := cmd.Flag("log-level"); f != nil && f.Changed {
		cfg.Log.Level = f.Value.String()
	}
	if f := cmd.Flag("log-pretty"); f != nil && f.Changed {
		cfg.Log.Pretty, _ = cmd.Flags().GetBool("log-pretty")
	}
	if f := cmd.Flag("format"); f != nil && f.Changed {
		cfg.Output.Format = strings.ToLower(f.Value.String())
	}
	if f := cmd.Flag("private-key"); f != nil && f.Changed {
		cfg.Key.PrivateKey = strings.TrimSpace(f.Value.String())
	}
}
