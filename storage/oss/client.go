package oss

import (
	"context"
	"io"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
	"github.com/zeromicro/go-zero/core/logc"
	"gomod.pri/subcrack/storage/types"
	"gomod.pri/subcrack/xerror"
)

const provider = string(types.StorageProviderOSS)

type Client struct {
	prefix    string
	ossClient *oss.Client
	bucket    types.Bucket
}

func NewClient(cfg types.Config) (*Client, error) {
	config := oss.LoadDefaultConfig().
		WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey)).
		WithEndpoint(cfg.Endpoint).
		WithRegion(cfg.Region)

	client := oss.NewClient(config)
	return &Client{ossClient: client, prefix: cfg.Prefix, bucket: cfg.Bucket}, nil
}

func (c *Client) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	request := &oss.GetObjectRequest{
		Bucket: oss.Ptr(string(c.bucket)),
		Key:    oss.Ptr(types.ObjectKey(c.prefix, name)),
	}
	result, err := c.ossClient.GetObject(ctx, request)
	if err != nil {
		logc.Errorf(ctx, "Download stream error, errMsg: %s", err.Error())
		return nil, xerror.WrapProviderError(provider, err)
	}

	return result.Body, nil
}
