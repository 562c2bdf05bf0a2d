package lexicon

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/zeromicro/go-zero/core/logc"
	"gomod.pri/subcrack/alphabet"
	"gomod.pri/subcrack/xerror"
)

// Source opens named resources; storage.Storage satisfies it.
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// LoadDictionary reads a word list from src. A missing or unreadable resource
// is CodeResourceUnavailable; a list with no usable word is CodeMalformedResource.
func LoadDictionary(ctx context.Context, src Source, ab alphabet.Alphabet, name string) (*Dictionary, error) {
	rc, err := src.Open(ctx, name)
	if err != nil {
		return nil, xerror.RaiseCtx(ctx, xerror.CodeResourceUnavailable, err, name)
	}
	defer rc.Close()

	dict, err := ReadDictionary(ab, rc)
	if err != nil {
		return nil, xerror.RaiseCtx(ctx, xerror.CodeResourceUnavailable, err, name)
	}
	if dict.Len() == 0 {
		return nil, xerror.RaiseCtx(ctx, xerror.CodeMalformedResource,
			fmt.Errorf("dictionary %s has no usable word", name))
	}

	logc.Infof(ctx, "dictionary %s loaded, words: %d", name, dict.Len())
	return dict, nil
}

// LoadFrequencyTable reads a reference letter ranking from src.
func LoadFrequencyTable(ctx context.Context, src Source, ab alphabet.Alphabet, name string) (FrequencyTable, error) {
	rc, err := src.Open(ctx, name)
	if err != nil {
		return FrequencyTable{}, xerror.RaiseCtx(ctx, xerror.CodeResourceUnavailable, err, name)
	}
	defer rc.Close()

	table, err := ReadFrequencyTable(ab, rc)
	if err != nil {
		code := xerror.CodeResourceUnavailable
		if errors.Is(err, ErrMalformed) {
			code = xerror.CodeMalformedResource
		}
		return FrequencyTable{}, xerror.RaiseCtx(ctx, code, err, name)
	}

	return table, nil
}
