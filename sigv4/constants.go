// Package sigv4 implements the subset of AWS Signature Version 4 needed to sign
// a single-object PUT against an S3-compatible endpoint.
package sigv4

const (
	// SigningAlgorithm is the SigV4 algorithm identifier.
	SigningAlgorithm = "AWS4-HMAC-SHA256"

	// ServiceName is the only service this package signs for.
	ServiceName = "s3"

	// RequestType terminates every credential scope.
	RequestType = "aws4_request"

	// EmptyStringSHA256 is the hex encoded SHA-256 of an empty payload.
	EmptyStringSHA256 = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

	// TimeFormat is the layout of the X-Amz-Date header (YYYYMMDDTHHMMSSZ).
	TimeFormat = "20060102T150405Z"

	// ShortTimeFormat is the layout of the credential scope date (YYYYMMDD).
	ShortTimeFormat = "20060102"

	// keyPrefix is prepended to the secret for the first derivation stage.
	keyPrefix = "AWS4"
)

// Header names as they appear on the wire.
const (
	HeaderAuthorization = "Authorization"
	HeaderContentLength = "Content-Length"
	HeaderContentType   = "Content-Type"
	HeaderHost          = "Host"
	HeaderAmzDate       = "X-Amz-Date"
	HeaderContentSHA256 = "X-Amz-Content-Sha256"
)
