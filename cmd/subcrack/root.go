package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/zeromicro/go-zero/core/logx"
	"gomod.pri/subcrack/config"
	"gomod.pri/subcrack/xtrace"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	configPath string
	verbose    bool

	cfg      config.Config
	shutdown func(context.Context) error
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "subcrack",
		Short: "Break and apply monoalphabetic substitution ciphers",
		Long: `subcrack recovers the plaintext of a monoalphabetic substitution cipher from
the ciphertext alone, and encrypts or decrypts messages with a known key.

Examples:
  subcrack attack "gsv xzg hzg"
  subcrack attack --json --timeout 30s -f subcrack.yaml < message.txt
  subcrack encrypt --key 1 "the cat sat"
  subcrack decrypt --key zyxwvutsrqponmlkjihgfedcba "gsvxz ghzg"`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.shutdown(cmd.Context())
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "f", "", "YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "print attack progress")

	root.AddCommand(
		newAttackCmd(a),
		newEncryptCmd(a),
		newDecryptCmd(a),
	)
	return root
}

func (a *app) setup(*cobra.Command, []string) error {
	a.cfg = config.Default()
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	logx.MustSetup(a.cfg.Log)
	a.shutdown = xtrace.Setup(a.cfg.Trace)
	return nil
}
