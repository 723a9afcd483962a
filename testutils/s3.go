package testutils

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/testcontainers/testcontainers-go"
	tcminio "github.com/testcontainers/testcontainers-go/modules/minio"

	"github.com/Clarilab/s3-upload"
)

const (
	user     = "admin"
	passwd   = "password"
	imageTag = "minio/minio:RELEASE.2024-01-16T16-07-38Z"
	region   = "us-east-1"
)

// StopFunc is a function to stop the created container.
type StopFunc func() error

// Env is a running MinIO instance with a bucket, an upload client pointed at
// it and a plain MinIO client to inspect what was uploaded.
type Env struct {
	Client      s3.Client
	MinioClient *minio.Client
	Host        string
	AccessKey   string
	SecretKey   string
}

// NewClient starts a container with a running MinIO instance, creates
// bucketName and returns an Env, a function to stop the container on purpose
// and an error.
//
// Notes:
// Only meant to be used for testing purposes.
// Host MUST have a docker engine running.
func NewClient(ctx context.Context, bucketName string, options ...s3.ClientOption) (*Env, StopFunc, error) {
	const errMessage = "failed to create new client: %w"

	container, err := tcminio.Run(ctx, imageTag,
		tcminio.WithUsername(user),
		tcminio.WithPassword(passwd),
	)
	if err != nil {
		return nil, nil, fmt.Errorf(errMessage, err)
	}

	stop := func() error { return testcontainers.TerminateContainer(container) }

	host, err := container.ConnectionString(ctx)
	if err != nil {
		_ = stop()

		return nil, nil, fmt.Errorf(errMessage, err)
	}

	minioClient, err := minio.New(host, &minio.Options{
		Secure: false,
		Creds:  credentials.NewStaticV4(user, passwd, ""),
		Region: region,
	})
	if err != nil {
		_ = stop()

		return nil, nil, fmt.Errorf(errMessage, err)
	}

	if err = minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: region}); err != nil {
		_ = stop()

		return nil, nil, fmt.Errorf(errMessage, err)
	}

	conn, err := s3.NewClient(
		&s3.ClientDetails{
			Host:         host,
			AccessKey:    user,
			AccessSecret: passwd,
			Region:       region,
			Secure:       false,
		},
		options...,
	)
	if err != nil {
		_ = stop()

		return nil, nil, fmt.Errorf(errMessage, err)
	}

	return &Env{
		Client:      conn,
		MinioClient: minioClient,
		Host:        host,
		AccessKey:   user,
		SecretKey:   passwd,
	}, stop, nil
}
