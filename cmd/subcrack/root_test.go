package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/jsonx"
	"gomod.pri/subcrack/alphabet"
	"gomod.pri/subcrack/cipher"
	"gomod.pri/subcrack/engine"
	"gomod.pri/subcrack/xerror"
)

const sentence = "do wake him here tonight"

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr string
	}{
		{in: "1", want: "zyxwvutsrqponmlkjihgfedcba"},
		{in: "2", want: "lazybcdefghijkmnopqrstuvwx"},
		{in: " MNBVCXZLKJHGFDSAPOIUYTREWQ ", want: "mnbvcxzlkjhgfdsapoiuytrewq"},
		{in: "4", wantErr: "no preset key 4"},
		{in: "abc", wantErr: "key must be a permutation of the 26 lowercase letters"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			key, err := parseKey(tt.in)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.True(t, xerror.Is(err, xerror.CodeInvalidParams))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, key.String())
		})
	}
}

func TestEncryptCmd(t *testing.T) {
	out, _, err := run(t, "", "encrypt", "--key", "1", "The cat", "sat.")
	require.NoError(t, err)
	assert.Equal(t, "gsvxz ghzg\n", out)

	out, _, err = run(t, "the cat sat", "encrypt", "-k", "1")
	require.NoError(t, err)
	assert.Equal(t, "gsvxz ghzg\n", out)

	_, _, err = run(t, "", "encrypt", "--key", "abc", "hello")
	assert.Error(t, err)

	_, _, err = run(t, "", "encrypt", "hello")
	assert.Error(t, err)
}

func TestDecryptCmd(t *testing.T) {
	out, stderr, err := run(t, "", "decrypt", "--key", "zyxwvutsrqponmlkjihgfedcba", "gsvxz ghzg")
	require.NoError(t, err)
	assert.Equal(t, "the cat sat\n", out)
	assert.Empty(t, stderr)

	ciphertext := cipher.Encrypt(alphabet.English, cipher.Presets[2], sentence)
	out, _, err = run(t, "", "decrypt", "-k", "3", ciphertext)
	require.NoError(t, err)
	assert.Equal(t, sentence+"\n", out)

	out, stderr, err = run(t, "", "decrypt", "-k", "3", "qqqqq")
	require.NoError(t, err)
	assert.Equal(t, 6, len(out))
	assert.Contains(t, stderr, "did not split")
}

func TestAttackCmd(t *testing.T) {
	ciphertext := cipher.Encrypt(alphabet.English, alphabet.English.Rotation(13), sentence)

	out, _, err := run(t, "", "attack", "--pool-size", "3000", "--seed", "42", ciphertext)
	require.NoError(t, err)
	assert.Contains(t, out, "plaintext: "+sentence)
	assert.Contains(t, out, "strategy:  rotational")

	out, _, err = run(t, ciphertext, "attack", "--pool-size", "3000", "--seed", "42", "--json")
	require.NoError(t, err)
	var res engine.Result
	require.NoError(t, jsonx.UnmarshalFromString(out, &res))
	assert.True(t, res.Found)
	assert.Equal(t, sentence, res.Plaintext)
	assert.Equal(t, alphabet.English.Rotation(13), res.Key)

	_, stderr, err := run(t, "", "attack", "-v", "--pool-size", "3000", ciphertext)
	require.NoError(t, err)
	assert.Contains(t, stderr, "pool of 3000 keys")
	assert.Contains(t, stderr, "matches")

	_, _, err = run(t, "", "attack", "--pool-size", "3", ciphertext)
	assert.Error(t, err)

	_, _, err = run(t, "", "attack", "12345")
	assert.Error(t, err)
}

func TestAttackCmd_Config(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "words.txt"), []byte("the\ncat\nsat\n"), 0o644))

	path := filepath.Join(dir, "subcrack.yaml")
	yaml := `
Log:
  Level: error
Engine:
  PoolSize: 500
  Seed: 1
Resources:
  Dictionary: words.txt
  Storage:
    Provider: local
    Root: ` + dir + `
Cache:
  Type: memory
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	out, _, err := run(t, "", "attack", "-f", path, "--json", "gsv xzg hzg")
	require.NoError(t, err)

	var res engine.Result
	require.NoError(t, jsonx.UnmarshalFromString(out, &res))
	assert.Equal(t, "the cat sat", res.Plaintext)
	assert.Equal(t, 500, res.PoolSize)

	_, _, err = run(t, "", "attack", "-f", filepath.Join(dir, "missing.yaml"), "gsv")
	assert.Error(t, err)
}
