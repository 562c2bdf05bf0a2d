package cipher

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gomod.pri/subcrack/alphabet"
)

type wordSet map[string]struct{}

func (s wordSet) Form(stream string) []string {
	// segments only streams that are a single known word
	if _, ok := s[stream]; ok {
		return []string{stream}
	}
	return nil
}

func randomKey(r *rand.Rand) alphabet.Key {
	buf := []byte(alphabet.English.String())
	r.Shuffle(len(buf), func(i, j int) { buf[i], buf[j] = buf[j], buf[i] })
	return alphabet.MustKey(string(buf))
}

func TestDecode(t *testing.T) {
	ab := alphabet.English

	assert.Equal(t, "hello", Decode(ab, ab.Identity(), "Hello!"))
	assert.Equal(t, "abc", Decode(ab, ab.Rotation(1), "b C\td"))
	assert.Equal(t, "abc", Decode(ab, Presets[0], "zyx"))
	assert.Equal(t, "", Decode(ab, ab.Rotation(3), "  123 ,. "))
}

func TestDecode_RoundTrip(t *testing.T) {
	ab := alphabet.English
	text := "thequickbrownfoxjumpsoverthelazydog"

	keys := append([]alphabet.Key{}, Presets...)
	for s := 0; s < alphabet.Size; s++ {
		keys = append(keys, ab.Rotation(s))
	}
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 20; i++ {
		keys = append(keys, randomKey(r))
	}

	for _, k := range keys {
		once := Decode(ab, k, text)
		assert.Equal(t, text, Decode(ab, k.Inverse(ab), once), k.String())
	}
}

func TestEncrypt(t *testing.T) {
	ab := alphabet.English

	tests := []struct {
		name    string
		key     alphabet.Key
		message string
		want    string
	}{
		{"identity groups letters", ab.Identity(), "Hello, World!", "hello world"},
		{"partial last block", ab.Identity(), "abcdefghijk", "abcde fghij k"},
		{"reversed alphabet", Presets[0], "abc", "zyx"},
		{"rotation", ab.Rotation(13), "do wake", "qbjnx r"},
		{"nothing to encrypt", ab.Identity(), "1234 !?", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encrypt(ab, tt.key, tt.message)
			assert.Equal(t, tt.want, got)
			assert.False(t, strings.HasSuffix(got, " "))
		})
	}
}

func TestEncrypt_DecodeRecoversLetters(t *testing.T) {
	ab := alphabet.English
	r := rand.New(rand.NewPCG(3, 4))

	for i := 0; i < 10; i++ {
		k := randomKey(r)
		msg := "Do wake him here, tonight."
		assert.Equal(t, "dowakehimheretonight", Decode(ab, k, Encrypt(ab, k, msg)))
	}
}

func TestDecrypt(t *testing.T) {
	ab := alphabet.English
	seg := wordSet{"tonight": {}}
	key := Presets[2]

	d := Decrypt(ab, key, Encrypt(ab, key, "tonight"), seg)
	assert.True(t, d.Segmented())
	assert.Equal(t, []string{"tonight"}, d.Words)
	assert.Equal(t, "tonight", d.Text())

	d = Decrypt(ab, key, Encrypt(ab, key, "to night"), seg)
	assert.False(t, d.Segmented())
	assert.Empty(t, d.Words)
	assert.Equal(t, "tonight", d.Text())
}

func TestPreset(t *testing.T) {
	k, ok := Preset(1)
	require.True(t, ok)
	assert.Equal(t, "zyxwvutsrqponmlkjihgfedcba", k.String())

	k, ok = Preset(3)
	require.True(t, ok)
	assert.Equal(t, "mnbvcxzlkjhgfdsapoiuytrewq", k.String())

	_, ok = Preset(0)
	assert.False(t, ok)
	_, ok = Preset(4)
	assert.False(t, ok)
}
