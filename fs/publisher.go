package fs

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/pagecopy"
)

// Ensure Publisher implements pagecopy.Clipboard at compile time.
var _ pagecopy.Clipboard = (*Publisher)(nil)

// Publisher writes payloads to a file instead of the clipboard.
// The payload is written to path.tmp and renamed into place, so readers
// never see a partially written file.
type Publisher struct {
	path string
}

// NewPublisher creates a Publisher writing to path.
func NewPublisher(path string) *Publisher {
	return &Publisher{path: path}
}

func (p *Publisher) tempPath() string {
	return p.path + ".tmp"
}

// Copy replaces the file's contents with text.
func (p *Publisher) Copy(text string) error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0755); err != nil {
		return pagecopy.Errorf(pagecopy.ECLIPBOARD, "%v", err)
	}

	if err := os.WriteFile(p.tempPath(), []byte(text), 0644); err != nil {
		return pagecopy.Errorf(pagecopy.ECLIPBOARD, "%v", err)
	}

	if err := os.Rename(p.tempPath(), p.path); err != nil {
		_ = os.Remove(p.tempPath())
		return pagecopy.Errorf(pagecopy.ECLIPBOARD, "%v", err)
	}

	return nil
}
