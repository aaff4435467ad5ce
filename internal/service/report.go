package service

import (
	"fmt"
	"io"
)

// report writes human-readable output and remembers the first write error.
type report struct {
	w   io.Writer
	err error
}

func newReport(w io.Writer) *report {
	return &report{w: w}
}

func (r *report) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

func (r *report) println() {
	r.printf("\n")
}
