package notifier

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/omarshaarawi/sleeperbot/internal/metrics"
)

// Notifier delivers a finished report somewhere people will read it.
type Notifier interface {
	Name() string
	Send(ctx context.Context, text string) error
}

// Writer prints reports to an io.Writer, usually stdout.
type Writer struct {
	w       io.Writer
	metrics metrics.Metrics
}

var _ Notifier = (*Writer)(nil)

func NewWriter(w io.Writer, m metrics.Metrics) *Writer {
	return &Writer{w: w, metrics: m}
}

func (n *Writer) Name() string { return "stdout" }

func (n *Writer) Send(ctx context.Context, text string) error {
	if _, err := io.WriteString(n.w, text); err != nil {
		n.metrics.IncNotifFailed(n.Name())
		return fmt.Errorf("error writing report: %w", err)
	}
	n.metrics.IncNotifSent(n.Name())
	return nil
}

// Multi sends to every notifier and returns the first error.
type Multi []Notifier

var _ Notifier = Multi(nil)

func (m Multi) Name() string {
	names := make([]string, len(m))
	for i, n := range m {
		names[i] = n.Name()
	}
	return strings.Join(names, ",")
}

func (m Multi) Send(ctx context.Context, text string) error {
	var first error
	for _, n := range m {
		if err := n.Send(ctx, text); err != nil && first == nil {
			first = fmt.Errorf("%s: %w", n.Name(), err)
		}
	}
	return first
}

// chunk splits text into pieces of at most limit bytes, breaking on newlines
// where possible.
func chunk(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		for len(line) > limit {
			if current.Len() > 0 {
				chunks = append(chunks, current.String())
				current.Reset()
			}
			chunks = append(chunks, line[:limit])
			line = line[limit:]
		}
		if current.Len()+len(line) > limit {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		current.WriteString(line)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}
