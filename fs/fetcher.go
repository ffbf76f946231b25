// Package fs provides file-based loading and publishing of pages.
package fs

import (
	"context"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/pagecopy"
)

// Stdin is the target that reads the document from standard input.
const Stdin = "-"

// TargetToPath converts a local target to a file path.
// Example: file:///tmp/page.html → /tmp/page.html
// Plain paths are returned cleaned.
func TargetToPath(target string) (string, error) {
	if target == "" {
		return "", pagecopy.Errorf(pagecopy.EINVALID, "target required")
	}

	if !strings.HasPrefix(target, "file://") {
		return filepath.Clean(target), nil
	}

	u, err := url.Parse(target)
	if err != nil {
		return "", pagecopy.Errorf(pagecopy.EINVALID, "invalid file URL: %v", err)
	}
	if u.Host != "" && u.Host != "localhost" {
		return "", pagecopy.Errorf(pagecopy.EINVALID, "file URL with remote host %q", u.Host)
	}
	if u.Path == "" {
		return "", pagecopy.Errorf(pagecopy.EINVALID, "file URL without path")
	}

	return filepath.FromSlash(u.Path), nil
}

// Ensure Fetcher implements pagecopy.Fetcher at compile time.
var _ pagecopy.Fetcher = (*Fetcher)(nil)

// Fetcher reads documents from local files or standard input.
type Fetcher struct {
	stdin io.Reader
}

// NewFetcher creates a Fetcher that reads the Stdin target from stdin.
func NewFetcher(stdin io.Reader) *Fetcher {
	return &Fetcher{stdin: stdin}
}

// Fetch returns the contents of the file named by target.
func (f *Fetcher) Fetch(ctx context.Context, target string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if target == Stdin {
		if f.stdin == nil {
			return "", pagecopy.Errorf(pagecopy.EINVALID, "standard input not available")
		}
		b, err := io.ReadAll(f.stdin)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	path, err := TargetToPath(target)
	if err != nil {
		return "", err
	}

	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", pagecopy.Errorf(pagecopy.EINVALID, "file %q does not exist", path)
	} else if err != nil {
		return "", err
	}

	return string(b), nil
}

// Close is a no-op; files are closed after each read.
func (f *Fetcher) Close() error {
	return nil
}
