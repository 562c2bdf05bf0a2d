package types

import (
	"fmt"
	"strings"
)

type StorageProvider string

const (
	StorageProviderLocal StorageProvider = "local"
	StorageProviderS3    StorageProvider = "s3"
	StorageProviderOBS   StorageProvider = "obs"
	StorageProviderOSS   StorageProvider = "oss"
	StorageProviderHTTP  StorageProvider = "http"
)

type Config struct {
	Provider  string `json:",default=local,options=local|s3|obs|oss|http"`
	Root      string `json:",optional"` // local provider base directory
	Endpoint  string `json:",optional"`
	Region    string `json:",optional"`
	AccessKey string `json:",optional"`
	SecretKey string `json:",optional"`
	Bucket    Bucket `json:",optional"`
	Prefix    string `json:",optional"` // object key prefix for remote providers
}

type Bucket string

// ObjectKey joins prefix and name without producing double slashes.
func ObjectKey(prefix, name string) string {
	name = strings.TrimPrefix(name, "/")
	prefix = strings.TrimSuffix(prefix, "/")
	if prefix == "" {
		return name
	}
	return fmt.Sprintf("%s/%s", prefix, name)
}
