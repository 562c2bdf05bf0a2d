package alphabet

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPermutation(t *testing.T, k Key) {
	t.Helper()
	require.Len(t, k.String(), Size)
	seen := make(map[byte]bool, Size)
	for i := 0; i < Size; i++ {
		c := k.At(i)
		assert.False(t, seen[c], "symbol %q repeats in %s", c, k)
		seen[c] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		letters string
		wantErr bool
	}{
		{name: "english", letters: "abcdefghijklmnopqrstuvwxyz"},
		{name: "reordered", letters: "zyxwvutsrqponmlkjihgfedcba"},
		{name: "too short", letters: "abc", wantErr: true},
		{name: "uppercase", letters: "ABCDEFGHIJKLMNOPQRSTUVWXYZ", wantErr: true},
		{name: "repeat", letters: "aacdefghijklmnopqrstuvwxyz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(tt.letters)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.letters, a.String())
			for i := 0; i < Size; i++ {
				assert.Equal(t, i, a.Index(a.At(i)))
			}
		})
	}
}

func TestAlphabet_Letters(t *testing.T) {
	assert.Equal(t, "dowakehim", English.Letters("Do wake, HIM!"))
	assert.Equal(t, "", English.Letters(" 123 \t\n"))
	assert.Equal(t, "caf", English.Letters("café"))
}

func TestAlphabet_ContainsAll(t *testing.T) {
	assert.True(t, English.ContainsAll("hello"))
	assert.False(t, English.ContainsAll("don't"))
	assert.False(t, English.ContainsAll(""))
}

func TestRotation(t *testing.T) {
	seen := make(map[string]bool)
	for s := 0; s < Size; s++ {
		k := English.Rotation(s)
		assertPermutation(t, k)
		seen[k.String()] = true
	}
	assert.Len(t, seen, Size)
	assert.Equal(t, English.Identity(), English.Rotation(0))
	assert.Equal(t, "nopqrstuvwxyzabcdefghijklm", English.Rotation(13).String())
	assert.Equal(t, English.Rotation(1), English.Rotation(27))
	assert.Equal(t, English.Rotation(25), English.Rotation(-1))
}

func TestNewKey(t *testing.T) {
	_, err := NewKey("zyxwvutsrqponmlkjihgfedcba")
	assert.NoError(t, err)

	_, err = NewKey("zyxwvutsrqponmlkjihgfedcb")
	assert.Error(t, err)

	_, err = NewKey("zzxwvutsrqponmlkjihgfedcba")
	assert.Error(t, err)

	assert.Panics(t, func() { MustKey("abc") })
}

func TestKey_Reverse(t *testing.T) {
	k := MustKey("lazybcdefghijkmnopqrstuvwx")
	r := k.Reverse()
	assertPermutation(t, r)
	assert.Equal(t, "xwvutsrqponmkjihgfedcbyzal", r.String())
	assert.Equal(t, "lazybcdefghijkmnopqrstuvwx", k.String(), "reverse must not touch the receiver")
	assert.Equal(t, k, r.Reverse())
}

func TestKey_Inverse(t *testing.T) {
	k := MustKey("mnbvcxzlkjhgfdsapoiuytrewq")
	inv := k.Inverse(English)
	assertPermutation(t, inv)

	for p := 0; p < Size; p++ {
		c := k.At(p)
		assert.Equal(t, English.At(p), inv.At(English.Index(c)))
	}
	assert.Equal(t, k, inv.Inverse(English))
	assert.Equal(t, English.Rotation(13), English.Rotation(13).Inverse(English))
}

func TestKey_JSON(t *testing.T) {
	type wrapper struct {
		Key Key `json:"key"`
	}

	data, err := json.Marshal(wrapper{Key: English.Rotation(3)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"key":"defghijklmnopqrstuvwxyzabc"}`, string(data))

	var w wrapper
	require.NoError(t, json.Unmarshal(data, &w))
	assert.Equal(t, English.Rotation(3), w.Key)

	assert.Error(t, json.Unmarshal([]byte(`{"key":"abc"}`), &w))

	require.NoError(t, json.Unmarshal([]byte(`{"key":""}`), &w))
	assert.True(t, w.Key.IsZero())
}
