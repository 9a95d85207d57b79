package workflow

import (
	"fmt"
	"strings"
)

// Set writes args to the output or env channel. All entries are validated
// before the file is opened and appended with a single write.
func (w *Writer) Set(ch Channel, args Args) error {
	if ch != ChannelOutput && ch != ChannelEnv {
		return fmt.Errorf("%w: %s channel does not take key/value entries", ErrArgument, ch)
	}
	path, err := w.files.Resolve(ch)
	if err != nil {
		return err
	}
	entries, err := args.resolve()
	if err != nil {
		return err
	}

	var b strings.Builder
	for _, e := range entries {
		line, err := w.formatEntry(e)
		if err != nil {
			return err
		}
		b.WriteString(line)
	}
	if b.Len() == 0 {
		return nil
	}
	return w.appendTo(path, ch, b.String())
}

// SetOutput appends "key=value" to the output file.
func (w *Writer) SetOutput(key string, value any) error {
	return w.Set(ChannelOutput, Pair(key, value))
}

// SetOutputMapping appends one line per entry of m to the output file.
func (w *Writer) SetOutputMapping(m Mapping) error {
	return w.Set(ChannelOutput, FromMapping(m))
}

// SetOutputNamed appends one line per named entry to the output file.
func (w *Writer) SetOutputNamed(entries ...Entry) error {
	return w.Set(ChannelOutput, Named(entries...))
}

// SetEnv appends "key=value" to the env file.
func (w *Writer) SetEnv(key string, value any) error {
	return w.Set(ChannelEnv, Pair(key, value))
}

// SetEnvMapping appends one line per entry of m to the env file.
func (w *Writer) SetEnvMapping(m Mapping) error {
	return w.Set(ChannelEnv, FromMapping(m))
}

// SetEnvNamed appends one line per named entry to the env file.
func (w *Writer) SetEnvNamed(entries ...Entry) error {
	return w.Set(ChannelEnv, Named(entries...))
}
