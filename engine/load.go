package engine

import (
	"context"

	"gomod.pri/subcrack/alphabet"
	"gomod.pri/subcrack/lexicon"
	"gomod.pri/subcrack/storage"
	"gomod.pri/subcrack/xerror"
)

// Load reads the dictionary and reference letter ranking named by res. A
// resource left unnamed falls back to the embedded English one.
func Load(ctx context.Context, res Resources) (*lexicon.Dictionary, lexicon.FrequencyTable, error) {
	if res.Dictionary == "" && res.Frequencies == "" {
		dict, ref := lexicon.Default()
		return dict, ref, nil
	}

	store, err := storage.NewStorage(res.Storage)
	if err != nil {
		return nil, lexicon.FrequencyTable{}, xerror.RaiseCtx(ctx, xerror.CodeResourceUnavailable, err, res.Storage.Provider)
	}
	return LoadFrom(ctx, store, res)
}

// LoadFrom is Load with an explicit resource source.
func LoadFrom(ctx context.Context, src lexicon.Source, res Resources) (*lexicon.Dictionary, lexicon.FrequencyTable, error) {
	dict, ref := lexicon.Default()

	var err error
	if res.Dictionary != "" {
		if dict, err = lexicon.LoadDictionary(ctx, src, alphabet.English, res.Dictionary); err != nil {
			return nil, lexicon.FrequencyTable{}, err
		}
	}
	if res.Frequencies != "" {
		if ref, err = lexicon.LoadFrequencyTable(ctx, src, alphabet.English, res.Frequencies); err != nil {
			return nil, lexicon.FrequencyTable{}, err
		}
	}

	return dict, ref, nil
}
