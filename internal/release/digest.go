package release

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"path/filepath"
)

// Function variables for testability.
var openFileFn = os.Open

// Algorithm names the digest shown in the table.
type Algorithm string

const (
	// MD5 reproduces the historical download pages exactly.
	MD5    Algorithm = "md5"
	SHA1   Algorithm = "sha1"
	SHA256 Algorithm = "sha256"
)

// Algorithms returns the supported digest names.
func Algorithms() []Algorithm {
	return []Algorithm{MD5, SHA1, SHA256}
}

// ParseAlgorithm converts a configured digest name into an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range Algorithms() {
		if string(a) == name {
			return a, nil
		}
	}
	return "", fmt.Errorf("unsupported digest %q (valid: md5, sha1, sha256)", name)
}

func (a Algorithm) newHash() (hash.Hash, error) {
	switch a {
	case MD5, "":
		return md5.New(), nil
	case SHA1:
		return sha1.New(), nil
	case SHA256:
		return sha256.New(), nil
	default:
		return nil, fmt.Errorf("unsupported digest %q", string(a))
	}
}

// Label is the column heading for the digest. The zero value reads as md5.
func (a Algorithm) Label() string {
	if a == "" {
		return string(MD5)
	}
	return string(a)
}

// FileError reports a release file that could not be read.
type FileError struct {
	Name string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("reading release file %s: %v", e.Name, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Digest reads r to the end and returns the lowercase hex digest.
func Digest(r io.Reader, algo Algorithm) (string, error) {
	h, err := algo.newHash()
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashFile opens dir/name, reads it in full and returns its digest.
// Failures are returned as *FileError.
func HashFile(dir, name string, algo Algorithm) (string, error) {
	f, err := openFileFn(filepath.Join(dir, name))
	if err != nil {
		return "", &FileError{Name: name, Err: err}
	}
	defer f.Close()

	sum, err := Digest(f, algo)
	if err != nil {
		return "", &FileError{Name: name, Err: err}
	}
	return sum, nil
}
