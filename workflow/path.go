package workflow

import (
	"fmt"
	"strings"
)

// AddPath appends path as one line to the path file. The path is written as
// given; it is not cleaned or made absolute.
func (w *Writer) AddPath(path string) error {
	file, err := w.files.Resolve(ChannelPath)
	if err != nil {
		return err
	}
	if err := ValidatePath(path); err != nil {
		return err
	}
	return w.appendTo(file, ChannelPath, path+"\n")
}

// ValidatePath rejects paths that cannot be represented as a single line.
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: empty path", ErrValidation)
	}
	if strings.ContainsRune(path, '\x00') {
		return fmt.Errorf("%w: path %q contains NUL", ErrValidation, path)
	}
	if strings.ContainsAny(path, "\r\n") {
		return fmt.Errorf("%w: path %q contains a line break", ErrValidation, path)
	}
	return nil
}
