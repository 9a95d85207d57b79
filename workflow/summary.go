package workflow

import "fmt"

// Summary appends content to the step summary file verbatim. No newline is
// added. Numbers are written in base 10 without grouping. Empty content
// still opens the file, creating it if needed.
func (w *Writer) Summary(content any) error {
	file, err := w.files.Resolve(ChannelSummary)
	if err != nil {
		return err
	}
	text, err := summaryText(content)
	if err != nil {
		return err
	}
	return w.appendTo(file, ChannelSummary, text)
}

// SummaryLine appends content followed by a newline.
func (w *Writer) SummaryLine(content any) error {
	file, err := w.files.Resolve(ChannelSummary)
	if err != nil {
		return err
	}
	text, err := summaryText(content)
	if err != nil {
		return err
	}
	return w.appendTo(file, ChannelSummary, text+"\n")
}

func summaryText(content any) (string, error) {
	if isNilPointer(content) {
		return "", fmt.Errorf("%w: nil %T summary content", ErrValidation, content)
	}
	switch x := content.(type) {
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	case bool:
		return "", fmt.Errorf("%w: summary content must be text or a number, got bool", ErrValidation)
	case fmt.Stringer:
		return x.String(), nil
	}
	if s, ok, err := formatNumber(content); ok {
		return s, err
	}
	return "", fmt.Errorf("%w: summary content must be text or a number, got %T", ErrValidation, content)
}
