// Package web serves resources over plain HTTP(S) from a base URL.
package web

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/zeromicro/go-zero/core/logc"
	"gomod.pri/subcrack/storage/types"
	"gomod.pri/subcrack/xerror"
	"gomod.pri/subcrack/xhttp"
)

const provider = string(types.StorageProviderHTTP)

type Client struct {
	http     *xhttp.Client
	endpoint string
	prefix   string
}

func NewClient(cfg types.Config, opts ...xhttp.ClientOption) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("http storage needs an endpoint")
	}
	return &Client{
		http:     xhttp.NewClient(opts...),
		endpoint: strings.TrimSuffix(cfg.Endpoint, "/"),
		prefix:   cfg.Prefix,
	}, nil
}

func (c *Client) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	url := c.endpoint + "/" + types.ObjectKey(c.prefix, name)

	resp, err := c.http.Get(ctx, url, nil)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		logc.Errorf(ctx, "Download error: %v, url: %s", err, url)
		return nil, xerror.WrapProviderError(provider, err)
	}

	return resp.Body, nil
}
