package sigv4

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
)

var (
	// ErrEmptyAccessKeyID occurs when the signing context has no access key id.
	ErrEmptyAccessKeyID = errors.New("access key id is required")
	// ErrEmptySecretAccessKey occurs when the signing context has no secret.
	ErrEmptySecretAccessKey = errors.New("secret access key is required")
	// ErrEmptyRegion occurs when the signing context has no region.
	ErrEmptyRegion = errors.New("region is required")
	// ErrEmptyPayloadHash occurs when the request carries no payload hash.
	ErrEmptyPayloadHash = errors.New("payload hash is required")
	// ErrInvalidRequest occurs when method, host or URI cannot be signed.
	ErrInvalidRequest = errors.New("request is not signable")
)

// Context is everything besides the request that goes into a signature.
// Build one per upload attempt.
type Context struct {
	Credentials aws.Credentials
	Region      string
	// Service defaults to "s3".
	Service string
	Time    SigningTime
}

func (c *Context) validate() error {
	switch {
	case c.Credentials.AccessKeyID == "":
		return ErrEmptyAccessKeyID
	case c.Credentials.SecretAccessKey == "":
		return ErrEmptySecretAccessKey
	case c.Region == "":
		return ErrEmptyRegion
	default:
		return nil
	}
}

func (c *Context) service() string {
	if c.Service == "" {
		return ServiceName
	}

	return c.Service
}

func validateRequest(req Request) error {
	switch {
	case req.PayloadHash == "":
		return ErrEmptyPayloadHash
	case req.Method == "":
		return fmt.Errorf("%w: empty method", ErrInvalidRequest)
	case req.Host == "":
		return fmt.Errorf("%w: empty host", ErrInvalidRequest)
	case !strings.HasPrefix(req.URI, "/"):
		return fmt.Errorf("%w: uri %q must start with '/'", ErrInvalidRequest, req.URI)
	default:
		return nil
	}
}

// Result carries the Authorization value together with the intermediate
// strings, which are handy when the remote side rejects a signature.
type Result struct {
	Authorization    string
	AmzDate          string
	CanonicalRequest string
	StringToSign     string
	SignedHeaders    string
	Signature        string
}

// Sign computes the SigV4 signature of req. It is a pure function of its
// arguments.
func Sign(req Request, sc Context) (Result, error) {
	const errMessage = "failed to sign request: %w"

	if err := sc.validate(); err != nil {
		return Result{}, fmt.Errorf(errMessage, err)
	}

	if err := validateRequest(req); err != nil {
		return Result{}, fmt.Errorf(errMessage, err)
	}

	service := sc.service()
	amzDate := sc.Time.TimeFormat()

	_, signedHeaders := CanonicalHeaders(req, amzDate)
	canonicalRequest := CanonicalRequest(req, amzDate)
	credentialScope := CredentialScope(sc.Time, sc.Region, service)
	stringToSign := StringToSign(amzDate, credentialScope, canonicalRequest)

	key := DeriveKey(sc.Credentials.SecretAccessKey, sc.Time.ShortTimeFormat(), sc.Region, service)
	signature := Signature(key, stringToSign)

	return Result{
		Authorization:    AuthorizationHeader(sc.Credentials.AccessKeyID, credentialScope, signedHeaders, signature),
		AmzDate:          amzDate,
		CanonicalRequest: canonicalRequest,
		StringToSign:     stringToSign,
		SignedHeaders:    signedHeaders,
		Signature:        signature,
	}, nil
}
