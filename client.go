package s3

import (
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/Clarilab/s3-upload"

type client struct {
	credentials aws.Credentials
	region      string
	host        string
	scheme      string
	httpClient  *http.Client
	observer    Observer
	clock       func() time.Time
	logger      logrus.FieldLogger
	metrics     *Metrics
	tracer      trace.Tracer
}

// NewClient instantiates a client for the endpoint described by details.
// No request is sent before Upload is called.
func NewClient(details *ClientDetails, options ...ClientOption) (Client, error) {
	const errMessage = "failed to create s3 client: %w"

	if details == nil {
		return nil, fmt.Errorf(errMessage, &MissingConfigError{
			Missing: []string{EnvAccessKeyID, EnvSecretAccessKey, EnvAccountID},
		})
	}

	if err := details.validate(); err != nil {
		return nil, fmt.Errorf(errMessage, err)
	}

	c := &client{
		credentials: aws.Credentials{
			AccessKeyID:     details.AccessKey,
			SecretAccessKey: details.AccessSecret,
			Source:          "ClientDetails",
		},
		region:     details.region(),
		host:       details.host(),
		scheme:     details.scheme(),
		httpClient: NewHTTPClient(),
		observer:   NopObserver{},
		clock:      time.Now,
		logger:     logrus.StandardLogger(),
		tracer:     otel.Tracer(tracerName),
	}

	for i := range options {
		if err := options[i](c); err != nil {
			return nil, fmt.Errorf(errMessage, err)
		}
	}

	return c, nil
}

// NewHTTPClient returns an HTTP client that does not follow redirects, so
// the status of the PUT itself decides the outcome of an upload.
func NewHTTPClient() *http.Client {
	return &http.Client{CheckRedirect: noRedirect}
}

func noRedirect(*http.Request, []*http.Request) error {
	return http.ErrUseLastResponse
}

func (c *client) Endpoint() string {
	return c.scheme + "://" + c.host
}
