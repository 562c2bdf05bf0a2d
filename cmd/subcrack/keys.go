package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cast"
	"gomod.pri/subcrack/alphabet"
	"gomod.pri/subcrack/cipher"
	"gomod.pri/subcrack/xerror"
	"gomod.pri/subcrack/xvalidate"
)

type keyArg struct {
	Key string `validate:"subkey" label:"key"`
}

// parseKey accepts a preset number or a 26-letter key.
func parseKey(s string) (alphabet.Key, error) {
	if n, err := cast.ToIntE(s); err == nil {
		key, ok := cipher.Preset(n)
		if !ok {
			return alphabet.Key{}, xerror.Newf(xerror.CodeInvalidParams, "no preset key %d, choose 1 to %d", n, len(cipher.Presets))
		}
		return key, nil
	}

	arg := keyArg{Key: strings.ToLower(strings.TrimSpace(s))}
	if err := xvalidate.Validate(arg); err != nil {
		return alphabet.Key{}, xerror.New(xerror.CodeInvalidParams, err, true)
	}
	return alphabet.MustKey(arg.Key), nil
}

// readText joins args, or reads stdin when there are none.
func readText(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if stdin == nil {
		stdin = os.Stdin
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}
