// Package handlers implements the business logic of the s3upload commands.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/Clarilab/s3-upload"
)

// Factory variables, replaced in tests.
var (
	lookupEnv     s3.LookupEnvFunc = os.LookupEnv
	newHTTPClient                  = s3.NewHTTPClient
	isInteractive                  = isInteractiveTTY
)

// UploadOptions are the flags of the upload command.
type UploadOptions struct {
	// Endpoint replaces {account}.r2.cloudflarestorage.com (host or host:port).
	Endpoint string
	// Insecure sends the request over plain HTTP.
	Insecure bool
	Verbose  bool
	// MetricsTextfile is written in the Prometheus text format after the upload.
	MetricsTextfile string
}

// Upload handles the root command: it uploads sourcePath to destPath
// ("bucket/key") with credentials taken from the environment.
//
// The response status is written to stdout, the body of a rejected upload to
// stderr.
func Upload(ctx context.Context, sourcePath, destPath string, opts UploadOptions, stdout, stderr io.Writer) error {
	if _, _, err := s3.ParseDestination(destPath); err != nil {
		return err
	}

	details, err := s3.DetailsFromEnv(lookupEnv, opts.Endpoint)
	if err != nil {
		return err
	}

	if opts.Insecure {
		details.Secure = false
	}

	logger := newLogger(stderr, opts.Verbose)

	observer := newConsoleObserver(stdout, isInteractive())
	registry := prometheus.NewRegistry()

	client, err := s3.NewClient(details,
		s3.WithHTTPClient(newHTTPClient()),
		s3.WithObserver(observer),
		s3.WithLogger(clientLogger(logger, opts.Verbose)),
		s3.WithMetrics(registry),
	)
	if err != nil {
		return err
	}

	info, uploadErr := client.Upload(ctx, sourcePath, destPath)

	observer.Finish()

	if opts.MetricsTextfile != "" {
		if err := prometheus.WriteToTextfile(opts.MetricsTextfile, registry); err != nil {
			logger.WithError(err).Warn("s3: Failed to write metrics")
		}
	}

	var failed *s3.UploadFailedError

	switch {
	case errors.As(uploadErr, &failed):
		fmt.Fprintf(stdout, "Status: %s\n", failed.Status)
		fmt.Fprintln(stderr, string(failed.Body))

		return uploadErr
	case uploadErr != nil:
		return uploadErr
	}

	fmt.Fprintf(stdout, "Status: %s\n", info.Status)
	fmt.Fprintf(stdout, "Upload successful %s\n", destPath)

	return nil
}

func newLogger(out io.Writer, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(logrus.WarnLevel)

	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	return logger
}

// clientLogger keeps the client quiet unless verbose is set. A rejected
// upload is reported through its status line and response body.
func clientLogger(logger *logrus.Logger, verbose bool) logrus.FieldLogger {
	if verbose {
		return logger
	}

	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	return quiet
}
