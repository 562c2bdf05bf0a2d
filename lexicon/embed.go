package lexicon

import (
	_ "embed"
	"strings"
	"sync"

	"gomod.pri/subcrack/alphabet"
)

//go:embed data/words.txt
var wordsFile string

//go:embed data/letter_frequencies.txt
var frequenciesFile string

var (
	defaultOnce  sync.Once
	defaultDict  *Dictionary
	defaultTable FrequencyTable
)

// load the embedded resources
func loadDefaults() {
	var err error
	defaultDict, err = ReadDictionary(alphabet.English, strings.NewReader(wordsFile))
	if err != nil {
		panic(err)
	}
	defaultTable, err = ReadFrequencyTable(alphabet.English, strings.NewReader(frequenciesFile))
	if err != nil {
		panic(err)
	}
}

// Default returns the embedded English word list and reference letter ranking.
func Default() (*Dictionary, FrequencyTable) {
	defaultOnce.Do(loadDefaults)
	return defaultDict, defaultTable
}
