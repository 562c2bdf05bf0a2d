package obs

import (
	"context"
	"fmt"
	"io"

	huaweiObs "github.com/huaweicloud/huaweicloud-sdk-go-obs/obs"
	"github.com/zeromicro/go-zero/core/logc"
	"gomod.pri/subcrack/storage/types"
	"gomod.pri/subcrack/xerror"
)

const provider = string(types.StorageProviderOBS)

type Client struct {
	prefix    string
	obsClient *huaweiObs.ObsClient
	bucket    types.Bucket
}

func NewClient(cfg types.Config) (*Client, error) {
	obsClient, err := huaweiObs.New(cfg.AccessKey, cfg.SecretKey, cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("Create obsClient error, errMsg: %s", err.Error())
	}

	return &Client{obsClient: obsClient, prefix: cfg.Prefix, bucket: cfg.Bucket}, nil
}

func (c *Client) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	input := &huaweiObs.GetObjectInput{}
	input.Bucket = string(c.bucket)
	input.Key = types.ObjectKey(c.prefix, name)

	output, err := c.obsClient.GetObject(input)
	if err != nil {
		logc.Errorf(ctx, "Download file error, errMsg: %s", err.Error())
		return nil, xerror.WrapProviderError(provider, err)
	}

	return output.Body, nil
}
