package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gomod.pri/subcrack/alphabet"
	"gomod.pri/subcrack/cipher"
	"gomod.pri/subcrack/engine"
)

func newEncryptCmd(a *app) *cobra.Command {
	var keyFlag string

	cmd := &cobra.Command{
		Use:   "encrypt --key KEY [message...]",
		Short: "Encrypt a message with a known key",
		Long: `Encrypts the letters of a message in five-letter groups. KEY is a preset
number (1 to 3) or a permutation of the 26 lowercase letters.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseKey(keyFlag)
			if err != nil {
				return err
			}
			text, err := readText(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cipher.Encrypt(alphabet.English, key, text))
			return nil
		},
	}
	cmd.Flags().StringVarP(&keyFlag, "key", "k", "", "preset number or 26-letter key")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func newDecryptCmd(a *app) *cobra.Command {
	var keyFlag string

	cmd := &cobra.Command{
		Use:   "decrypt --key KEY [ciphertext...]",
		Short: "Decrypt a ciphertext with a known key",
		Long: `Reverses the substitution of KEY and splits the result into dictionary
words. When no segmentation is found the raw letters are printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseKey(keyFlag)
			if err != nil {
				return err
			}
			text, err := readText(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			dict, ref, err := engine.Load(cmd.Context(), a.cfg.Resources)
			if err != nil {
				return err
			}
			e, err := engine.New(alphabet.English, dict, ref, a.cfg.Engine)
			if err != nil {
				return err
			}

			d := cipher.Decrypt(alphabet.English, key, text, e.Former())
			fmt.Fprintln(cmd.OutOrStdout(), d.Text())
			if !d.Segmented() {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: decryption did not split into dictionary words")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&keyFlag, "key", "k", "", "preset number or 26-letter key")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
