package sigv4

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
)

// Request holds every request attribute that is bound into the signature.
type Request struct {
	Method        string
	Host          string
	URI           string
	ContentType   string
	ContentLength int64
	PayloadHash   string
}

type header struct {
	name  string
	value string
}

// signedHeaderValues returns the signed headers of req, lower-cased and sorted
// by name. Values are used exactly as they are sent.
func signedHeaderValues(req Request, amzDate string) []header {
	headers := []header{
		{name: "x-amz-date", value: amzDate},
		{name: "host", value: req.Host},
		{name: "content-type", value: req.ContentType},
		{name: "x-amz-content-sha256", value: req.PayloadHash},
		{name: "content-length", value: strconv.FormatInt(req.ContentLength, 10)},
	}

	sort.Slice(headers, func(i, j int) bool {
		return headers[i].name < headers[j].name
	})

	return headers
}

// CanonicalHeaders returns the canonical header block (one "name:value\n" per
// header) and the ";"-joined signed header list.
func CanonicalHeaders(req Request, amzDate string) (canonical, signed string) {
	headers := signedHeaderValues(req, amzDate)

	var b strings.Builder

	names := make([]string, 0, len(headers))

	for _, h := range headers {
		b.WriteString(h.name)
		b.WriteByte(':')
		b.WriteString(h.value)
		b.WriteByte('\n')

		names = append(names, h.name)
	}

	return b.String(), strings.Join(names, ";")
}

// CanonicalRequest builds
//
//	METHOD\nURI\nQUERY\nCANONICAL_HEADERS\nSIGNED_HEADERS\nPAYLOAD_HASH
//
// with an empty query. The URI is used verbatim.
func CanonicalRequest(req Request, amzDate string) string {
	canonicalHeaders, signedHeaders := CanonicalHeaders(req, amzDate)

	return strings.Join([]string{
		req.Method,
		req.URI,
		"",
		canonicalHeaders,
		signedHeaders,
		req.PayloadHash,
	}, "\n")
}

// CredentialScope returns DATE/REGION/SERVICE/aws4_request.
func CredentialScope(t SigningTime, region, service string) string {
	return strings.Join([]string{
		t.ShortTimeFormat(),
		region,
		service,
		RequestType,
	}, "/")
}

// StringToSign returns ALGORITHM\nAMZDATE\nSCOPE\nhex(sha256(canonicalRequest)).
func StringToSign(amzDate, credentialScope, canonicalRequest string) string {
	return strings.Join([]string{
		SigningAlgorithm,
		amzDate,
		credentialScope,
		SHA256Hex([]byte(canonicalRequest)),
	}, "\n")
}

// Signature is the hex encoded HMAC-SHA256 of stringToSign under signingKey.
func Signature(signingKey []byte, stringToSign string) string {
	return hex.EncodeToString(HMACSHA256(signingKey, []byte(stringToSign)))
}

// AuthorizationHeader assembles the Authorization header value.
func AuthorizationHeader(accessKeyID, credentialScope, signedHeaders, signature string) string {
	const (
		credential    = "Credential="
		signedHdrs    = "SignedHeaders="
		signatureName = "Signature="
		commaSpace    = ", "
	)

	var b strings.Builder

	b.Grow(len(SigningAlgorithm) + 1 +
		len(credential) + len(accessKeyID) + 1 + len(credentialScope) + len(commaSpace) +
		len(signedHdrs) + len(signedHeaders) + len(commaSpace) +
		len(signatureName) + len(signature))

	b.WriteString(SigningAlgorithm)
	b.WriteByte(' ')
	b.WriteString(credential)
	b.WriteString(accessKeyID)
	b.WriteByte('/')
	b.WriteString(credentialScope)
	b.WriteString(commaSpace)
	b.WriteString(signedHdrs)
	b.WriteString(signedHeaders)
	b.WriteString(commaSpace)
	b.WriteString(signatureName)
	b.WriteString(signature)

	return b.String()
}

// SHA256Hex returns the lower-case hex SHA-256 of data.
func SHA256Hex(data []byte) string {
	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:])
}
