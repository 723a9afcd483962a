package sigv4

import (
	"crypto/hmac"
	"crypto/sha256"
)

// DateKey is the first derivation stage: HMAC("AWS4"+secret, dateStamp).
func DateKey(secret, dateStamp string) []byte {
	return HMACSHA256([]byte(keyPrefix+secret), []byte(dateStamp))
}

// RegionKey is the second derivation stage: HMAC(kDate, region).
func RegionKey(dateKey []byte, region string) []byte {
	return HMACSHA256(dateKey, []byte(region))
}

// ServiceKey is the third derivation stage: HMAC(kRegion, service).
func ServiceKey(regionKey []byte, service string) []byte {
	return HMACSHA256(regionKey, []byte(service))
}

// SigningKey is the last derivation stage: HMAC(kService, "aws4_request").
func SigningKey(serviceKey []byte) []byte {
	return HMACSHA256(serviceKey, []byte(RequestType))
}

// DeriveKey runs the four stages in order and returns the key that signs the
// string to sign. None of the intermediate keys outlive the call.
func DeriveKey(secret, dateStamp, region, service string) []byte {
	kDate := DateKey(secret, dateStamp)
	kRegion := RegionKey(kDate, region)
	kService := ServiceKey(kRegion, service)

	return SigningKey(kService)
}

// HMACSHA256 computes HMAC-SHA256 of data keyed with key.
func HMACSHA256(key, data []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(data)

	return h.Sum(nil)
}
