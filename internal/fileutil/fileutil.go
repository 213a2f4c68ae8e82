// Package fileutil provides file and path utility functions.
package fileutil

import (
	"fmt"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ReadFileUTF8 reads a file as UTF-8 text. Byte sequences that do not
// decode are replaced with U+FFFD rather than failing, so arbitrary
// filings can always be read.
func ReadFileUTF8(path string) (string, error) {
	raw, err := os.ReadFile(path) // #nosec G304 -- path comes from the CLI user
	if err != nil {
		return "", err
	}

	decoded, _, err := transform.Bytes(unicode.UTF8.NewDecoder(), raw)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", path, err)
	}
	return string(decoded), nil
}
