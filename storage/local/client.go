package local

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/zeromicro/go-zero/core/logc"
	"gomod.pri/subcrack/storage/types"
	"gomod.pri/subcrack/xerror"
)

const provider = string(types.StorageProviderLocal)

type Client struct {
	root string
}

func NewClient(cfg types.Config) *Client {
	return &Client{root: cfg.Root}
}

func (c *Client) path(name string) string {
	if c.root == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.root, name)
}

func (c *Client) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(c.path(name))
	if err != nil {
		logc.Errorf(ctx, "Open file error, errMsg: %s", err.Error())
		return nil, xerror.WrapProviderError(provider, err)
	}

	return f, nil
}
