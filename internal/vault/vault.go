// Package vault persists round notes. It is the only part of the
// program that writes files; the note core hands it finished strings.
package vault

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeebo/blake3"
)

var (
	// ErrExists means the target file exists with different content.
	ErrExists = errors.New("note already exists")
	// ErrUnchanged means the target file exists with identical content,
	// so the write was a no-op rather than a collision.
	ErrUnchanged = errors.New("note already exists with identical content")
)

// forbidden characters in note file names, replaced with '-'.
var nameSanitizer = strings.NewReplacer(
	`\`, "-", "/", "-", ":", "-", "*", "-", "?", "-",
	`"`, "-", "<", "-", ">", "-", "|", "-",
)

// SanitizeName replaces filesystem-hostile characters with '-'.
func SanitizeName(s string) string {
	return nameSanitizer.Replace(s)
}

// NoteFileName builds the sanitized file name for a round note.
func NoteFileName(league string, round int) string {
	return SanitizeName(fmt.Sprintf("%s Round %d", league, round)) + ".md"
}

// Vault writes notes under a base directory.
type Vault struct {
	Dir string
}

func New(dir string) *Vault {
	return &Vault{Dir: dir}
}

// Create writes content to name under the vault directory, creating the
// directory as needed. It never overwrites: an existing target with the
// same content (compared by blake3 digest) reports ErrUnchanged, any
// other existing target reports ErrExists. The resolved path is
// returned even on those two errors so callers can mention it.
func (v *Vault) Create(name, content string) (string, error) {
	path := filepath.Join(v.Dir, SanitizeName(name))
	if err := os.MkdirAll(v.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create notes dir: %w", err)
	}
	if existing, err := os.ReadFile(path); err == nil {
		if blake3.Sum256(existing) == blake3.Sum256([]byte(content)) {
			return path, ErrUnchanged
		}
		return path, fmt.Errorf("%w: %s", ErrExists, path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("check %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
