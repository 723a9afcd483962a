package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/minio/minio-go/v7/pkg/s3utils"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Clarilab/s3-upload/sigv4"
)

// ParseDestination splits "bucket/key" at the first slash and returns bucket
// and key.
func ParseDestination(destPath string) (string, string, error) {
	bucket, key, found := strings.Cut(destPath, "/")
	if !found || bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidDestination, destPath)
	}

	if err := s3utils.CheckValidObjectName(key); err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrInvalidDestination, err)
	}

	return bucket, key, nil
}

func (c *client) Upload(ctx context.Context, sourcePath, destPath string) (*UploadInfo, error) {
	const errMessage = "failed to upload file: %w"

	bucket, key, err := ParseDestination(destPath)
	if err != nil {
		return nil, fmt.Errorf(errMessage, err)
	}

	upload, err := NewUploadRequest(sourcePath, bucket, key)
	if err != nil {
		return nil, fmt.Errorf(errMessage, err)
	}

	return c.UploadFile(ctx, upload)
}

func (c *client) UploadFile(ctx context.Context, upload *UploadRequest) (*UploadInfo, error) {
	const errMessage = "failed to upload file: %w"

	if upload == nil {
		return nil, fmt.Errorf(errMessage, errors.New("upload request must not be nil"))
	}

	start := c.clock()

	ctx, span := c.tracer.Start(ctx, "s3.PutObject",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("s3.bucket", upload.Bucket),
			attribute.String("s3.key", upload.Key),
			attribute.Int64("s3.content_length", upload.ContentLength),
		),
	)
	defer span.End()

	fields := logrus.Fields{
		"bucket": upload.Bucket,
		"key":    upload.Key,
		"size":   humanize.Bytes(uint64(upload.ContentLength)), //nolint:gosec // sizes are never negative
	}

	info, err := c.put(ctx, upload)

	var failed *UploadFailedError

	switch {
	case errors.As(err, &failed):
		c.metrics.observe(resultRejected, upload.ContentLength, c.clock().Sub(start))
		span.SetAttributes(attribute.Int("http.response.status_code", failed.StatusCode))
	case err != nil:
		c.metrics.observe(resultError, upload.ContentLength, c.clock().Sub(start))
	default:
		c.metrics.observe(resultSuccess, upload.ContentLength, c.clock().Sub(start))
		span.SetAttributes(attribute.Int("http.response.status_code", info.StatusCode))
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		fields["error"] = err
		c.logger.WithFields(fields).Error("s3: Upload failed")

		return nil, fmt.Errorf(errMessage, err)
	}

	fields["status"] = info.StatusCode
	c.logger.WithFields(fields).Debug("s3: Upload finished")

	return info, nil
}

func (c *client) put(ctx context.Context, upload *UploadRequest) (*UploadInfo, error) {
	reader, err := NewProgressReader(upload.SourcePath, c.observer, c.clock)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	if reader.Len() != upload.ContentLength {
		return nil, fmt.Errorf("%w: hashed %d bytes, found %d", ErrSourceChanged, upload.ContentLength, reader.Len())
	}

	signReq := sigv4.Request{
		Method:        http.MethodPut,
		Host:          c.host,
		URI:           upload.URI(),
		ContentType:   upload.ContentType,
		ContentLength: upload.ContentLength,
		PayloadHash:   upload.ChecksumSHA256,
	}

	signed, err := sigv4.Sign(signReq, sigv4.Context{
		Credentials: c.credentials,
		Region:      c.region,
		Service:     sigv4.ServiceName,
		Time:        sigv4.NewSigningTime(c.clock()),
	})
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, upload, signReq, signed, reader)
	if err != nil {
		return nil, err
	}

	c.logger.WithFields(logrus.Fields{
		"endpoint":     c.Endpoint(),
		"uri":          signReq.URI,
		"content_type": signReq.ContentType,
		"payload_hash": signReq.PayloadHash,
		"amz_date":     signed.AmzDate,
	}).Debug("s3: Uploading object")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &UploadFailedError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       body,
		}
	}

	return &UploadInfo{
		Bucket:      upload.Bucket,
		Key:         upload.Key,
		Size:        upload.ContentLength,
		ContentType: upload.ContentType,
		StatusCode:  resp.StatusCode,
		Status:      resp.Status,
		ETag:        strings.Trim(resp.Header.Get("ETag"), `"`),
		Integrity:   upload.Integrity,
	}, nil
}

func (c *client) newRequest(
	ctx context.Context,
	upload *UploadRequest,
	signReq sigv4.Request,
	signed sigv4.Result,
	reader *ProgressReader,
) (*http.Request, error) {
	const errMessage = "failed to build request: %w"

	u := &url.URL{
		Scheme:  c.scheme,
		Host:    signReq.Host,
		Path:    upload.ObjectPath(),
		RawPath: signReq.URI,
	}

	// A zero ContentLength with a non-nil body would be sent chunked.
	var body io.Reader = reader
	if signReq.ContentLength == 0 {
		body = http.NoBody
	}

	req, err := http.NewRequestWithContext(ctx, signReq.Method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf(errMessage, err)
	}

	req.Host = signReq.Host
	req.ContentLength = signReq.ContentLength
	req.Header.Set(sigv4.HeaderContentType, signReq.ContentType)
	req.Header.Set(sigv4.HeaderAmzDate, signed.AmzDate)
	req.Header.Set(sigv4.HeaderContentSHA256, signReq.PayloadHash)
	req.Header.Set(sigv4.HeaderAuthorization, signed.Authorization)

	return req, nil
}
