package s3

import (
	"fmt"
	"os"

	"github.com/minio/minio-go/v7/pkg/s3utils"
)

// UploadRequest describes one object upload. It is immutable once built by
// NewUploadRequest; the source file must not change until the upload is done.
type UploadRequest struct {
	SourcePath    string
	Bucket        string
	Key           string
	ContentType   string
	ContentLength int64
	Integrity
}

// NewUploadRequest stats and hashes sourcePath. Size and hash are taken from
// the same, unmodified file.
func NewUploadRequest(sourcePath, bucket, key string) (*UploadRequest, error) {
	const errMessage = "failed to prepare upload: %w"

	stat, err := os.Stat(sourcePath)
	if err != nil {
		return nil, fmt.Errorf(errMessage, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf(errMessage, fmt.Errorf("%s is a directory", sourcePath))
	}

	sum, err := HashFile(sourcePath)
	if err != nil {
		return nil, fmt.Errorf(errMessage, err)
	}

	return &UploadRequest{
		SourcePath:    sourcePath,
		Bucket:        bucket,
		Key:           key,
		ContentType:   ContentTypeFor(sourcePath),
		ContentLength: stat.Size(),
		Integrity:     Integrity{ChecksumSHA256: sum},
	}, nil
}

// ObjectPath returns the unescaped path "/bucket/key".
func (u *UploadRequest) ObjectPath() string {
	return "/" + u.Bucket + "/" + u.Key
}

// URI returns the request path exactly as it is sent and signed. Characters
// outside A-Z a-z 0-9 - _ . ~ / are percent-encoded, so a key with spaces or
// "+" is signed in its escaped wire form. Ordinary keys are left as they are.
func (u *UploadRequest) URI() string {
	return s3utils.EncodePath(u.ObjectPath())
}

// Destination returns "bucket/key".
func (u *UploadRequest) Destination() string {
	return u.Bucket + "/" + u.Key
}

// UploadInfo contains information about a finished upload.
type UploadInfo struct {
	Bucket      string
	Key         string
	Size        int64
	ContentType string
	StatusCode  int
	Status      string
	ETag        string
	Integrity
}
