package storage

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

// OSSStorage aliyun OSS storage
type OSSStorage struct {
	client *oss.Client
	bucket *oss.Bucket
	domain string
}

// NewOSSStorage create OSS storage instance
func NewOSSStorage(endpoint, accessKeyID, accessKeySecret, bucketName, domain string) (*OSSStorage, error) {
	if endpoint == "" || accessKeyID == "" || accessKeySecret == "" || bucketName == "" {
		return nil, ErrInvalid
	}

	client, err := oss.New(endpoint, accessKeyID, accessKeySecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create oss client: %w", err)
	}

	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to get oss bucket: %w", err)
	}

	return &OSSStorage{
		client: client,
		bucket: bucket,
		domain: strings.TrimRight(domain, "/"),
	}, nil
}

// Save save file to OSS
func (o *OSSStorage) Save(key string, data []byte) error {
	err := o.bucket.PutObject(key, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to upload to oss: %w", err)
	}
	return nil
}

// Get get file from OSS
func (o *OSSStorage) Get(key string) ([]byte, error) {
	body, err := o.bucket.GetObject(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get from oss: %w", err)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read oss object: %w", err)
	}

	return data, nil
}

// Delete delete file from OSS
func (o *OSSStorage) Delete(key string) error {
	err := o.bucket.DeleteObject(key)
	if err != nil {
		return fmt.Errorf("failed to delete from oss: %w", err)
	}
	return nil
}

// Exists check if file exists in OSS
func (o *OSSStorage) Exists(key string) bool {
	exists, err := o.bucket.IsObjectExist(key)
	if err != nil {
		return false
	}
	return exists
}

// PublicURL public download URL via the configured CDN domain
func (o *OSSStorage) PublicURL(key string) string {
	return o.domain + "/" + key
}
