// Package hashing computes SHA-256 digests and HMACs as lowercase hex strings,
// including streaming digests of readers and files in bounded memory.
package hashing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrExpectedFile is returned by FileSHA256 when the path names a directory.
var ErrExpectedFile = errors.New("expected file, got directory")

// SHA256Hex returns the hex SHA-256 digest of data.
func SHA256Hex(data string) string {
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}

// HMACSHA256Hex returns the hex HMAC-SHA256 of data keyed with key.
func HMACSHA256Hex(key, data string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}

// ReaderSHA256 hashes r until EOF. Read errors are returned unchanged.
func ReaderSHA256(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// FileSHA256 streams the file at path through SHA-256 and returns the hex
// digest. The file is never loaded into memory as a whole. Open and read
// failures wrap the underlying *fs.PathError, so errors.Is(err, fs.ErrNotExist)
// works for missing paths.
func FileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s: %w", path, ErrExpectedFile)
	}

	sum, err := ReaderSHA256(f)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return sum, nil
}
