package s3

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
)

// hashChunkSize bounds the memory used while hashing.
const hashChunkSize = 8192

// Integrity contains checksums for file integrity.
type Integrity struct {
	ChecksumSHA256 string // hex encoded, as sent in X-Amz-Content-Sha256
}

// HashFile returns the lower-case hex SHA-256 of the file at path. The file is
// streamed in 8 KiB chunks.
func HashFile(path string) (string, error) {
	const errMessage = "failed to hash file: %w"

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf(errMessage, err)
	}
	defer f.Close()

	sum, err := HashReader(f)
	if err != nil {
		return "", fmt.Errorf(errMessage, err)
	}

	return sum, nil
}

// HashReader returns the lower-case hex SHA-256 of everything r yields.
func HashReader(r io.Reader) (string, error) {
	h := sha256.New()
	buf := make([]byte, hashChunkSize)

	for {
		n, err := r.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}

		if errors.Is(err, io.EOF) {
			return hex.EncodeToString(h.Sum(nil)), nil
		}

		if err != nil {
			return "", err
		}
	}
}
