package s3

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

// ClientOption is an option for the s3 client.
type ClientOption func(*client) error

// WithHTTPClient sets the HTTP client requests are sent with. Its transport,
// timeout and cookie jar are used; redirects are never followed.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *client) error {
		if httpClient == nil {
			return errors.New("http client must not be nil")
		}

		hc := *httpClient
		hc.CheckRedirect = noRedirect

		c.httpClient = &hc

		return nil
	}
}

// WithObserver registers an observer for upload progress.
func WithObserver(observer Observer) ClientOption {
	return func(c *client) error {
		if observer == nil {
			observer = NopObserver{}
		}

		c.observer = observer

		return nil
	}
}

// WithClock replaces time.Now as the source of signing and progress time.
func WithClock(clock func() time.Time) ClientOption {
	return func(c *client) error {
		if clock == nil {
			return errors.New("clock must not be nil")
		}

		c.clock = clock

		return nil
	}
}

// WithLogger sets the logger. Defaults to logrus.StandardLogger().
func WithLogger(logger logrus.FieldLogger) ClientOption {
	return func(c *client) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}

		c.logger = logger

		return nil
	}
}

// WithMetrics registers upload metrics with the given registerer.
func WithMetrics(registerer prometheus.Registerer) ClientOption {
	const errMessage = "failed to enable metrics: %w"

	return func(c *client) (err error) { //nolint:nonamedreturns // intended
		c.metrics, err = NewMetrics(registerer)
		if err != nil {
			return fmt.Errorf(errMessage, err)
		}

		return nil
	}
}

// WithTracerProvider sets the provider upload spans are created with.
// Defaults to the global provider.
func WithTracerProvider(provider trace.TracerProvider) ClientOption {
	return func(c *client) error {
		if provider == nil {
			return errors.New("tracer provider must not be nil")
		}

		c.tracer = provider.Tracer(tracerName)

		return nil
	}
}
