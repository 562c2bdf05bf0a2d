package s3

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/zeromicro/go-zero/core/logc"
	"gomod.pri/subcrack/storage/types"
	"gomod.pri/subcrack/xerror"
)

const provider = string(types.StorageProviderS3)

// objectGetter is the part of *s3.Client the resource store uses.
type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type Client struct {
	s3Client objectGetter
	bucket   string
	prefix   string
}

func NewClient(cfg types.Config) (*Client, error) {
	// load aws config
	awsCfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(aws.CredentialsProviderFunc(func(ctx context.Context) (aws.Credentials, error) {
			return aws.Credentials{
				AccessKeyID:     cfg.AccessKey,
				SecretAccessKey: cfg.SecretKey,
			}, nil
		})),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS config: %w", err)
	}

	// create s3 client
	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true // use path style for s3, default is virtual hosted-style
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return newClient(s3Client, cfg), nil
}

func newClient(getter objectGetter, cfg types.Config) *Client {
	return &Client{
		s3Client: getter,
		bucket:   string(cfg.Bucket),
		prefix:   cfg.Prefix,
	}
}

func (c *Client) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	key := types.ObjectKey(c.prefix, name)

	result, err := c.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logc.Errorf(ctx, "Download stream error: %v, key: %s", err, key)
		return nil, xerror.WrapProviderError(provider, fmt.Errorf("failed to download from S3: %w", err))
	}

	return result.Body, nil
}
