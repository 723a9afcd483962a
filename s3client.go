package s3

import "context"

// Client holds all callable methods.
type Client interface {
	// Endpoint returns the scheme and host uploads are sent to.
	Endpoint() string

	// Upload uploads the file at sourcePath to destPath ("bucket/key").
	Upload(ctx context.Context, sourcePath, destPath string) (*UploadInfo, error)

	// UploadFile uploads a prepared upload request with a single signed PUT.
	UploadFile(ctx context.Context, upload *UploadRequest) (*UploadInfo, error)
}
