package xvalidate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	PoolSize int    `validate:"gte=1" label:"pool size"`
	Anchors  int    `validate:"gte=0,lte=26"`
	Key      string `validate:"omitempty,subkey" label:"key"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		v       sample
		wantErr string
	}{
		{
			name: "valid",
			v:    sample{PoolSize: 10, Anchors: 1, Key: "zyxwvutsrqponmlkjihgfedcba"},
		},
		{
			name: "empty key is allowed",
			v:    sample{PoolSize: 10},
		},
		{
			name:    "labelled field",
			v:       sample{PoolSize: 0},
			wantErr: "pool size must be 1 or greater",
		},
		{
			name:    "unlabelled field",
			v:       sample{PoolSize: 1, Anchors: 27},
			wantErr: "Anchors must be 26 or less",
		},
		{
			name:    "custom key rule",
			v:       sample{PoolSize: 1, Key: "abc"},
			wantErr: "key must be a permutation of the 26 lowercase letters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.v)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
