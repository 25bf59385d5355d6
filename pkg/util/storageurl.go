package util

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Download URLs carry the object path percent-encoded between /o/ and an
// optional query, e.g.
// https://storage.example.com/v0/b/bucket/o/uploads%2Fcv.pdf?alt=media
var storagePathRegex = regexp.MustCompile(`/o/(.+?)(\?|$)`)

// StoragePathFromURL extracts the blob path from a stored download URL.
// Input:  https://storage.example.com/v0/b/bucket/o/uploads%2Fcv.pdf?alt=media
// Output: uploads/cv.pdf
// Paths that arrive double-encoded (%252F) are decoded a second time.
func StoragePathFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid storage url: %w", err)
	}

	// EscapedPath keeps the original percent-encoding; u.Path would already
	// have decoded the %2F separators away.
	match := storagePathRegex.FindStringSubmatch(u.EscapedPath())
	if match == nil || match[1] == "" {
		return "", fmt.Errorf("no object path in url %q", rawURL)
	}

	path, err := url.PathUnescape(match[1])
	if err != nil {
		return "", fmt.Errorf("undecodable object path %q: %w", match[1], err)
	}
	if strings.Contains(path, "%") {
		if decoded, err := url.PathUnescape(path); err == nil {
			path = decoded
		}
	}
	return path, nil
}
