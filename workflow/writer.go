package workflow

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
)

// Writer appends to the channel files described by a Files value.
// It keeps no state between calls.
type Writer struct {
	files     Files
	delimiter func() (string, error)
}

// New returns a Writer bound to files.
func New(files Files) *Writer {
	return &Writer{files: files, delimiter: randomDelimiter}
}

// Default returns a Writer over the GITHUB_* variables of the current process.
func Default() *Writer {
	return New(FilesFromEnv(DefaultPrefix))
}

// appendTo opens the channel file in append mode, writes payload with a
// single write and closes the file on every path.
func (w *Writer) appendTo(path string, ch Channel, payload string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open %s file: %w", ErrIO, ch, err)
	}

	_, err = f.WriteString(payload)
	if cerr := f.Close(); err == nil && cerr != nil {
		return fmt.Errorf("%w: close %s file: %w", ErrIO, ch, cerr)
	}
	if err != nil {
		return fmt.Errorf("%w: write %s file: %w", ErrIO, ch, err)
	}
	return nil
}

func randomDelimiter() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate delimiter: %w", err)
	}
	return "ghadelimiter_" + hex.EncodeToString(b), nil
}
