package utils

import (
	"fmt"
	"io"
	"strings"
)

// Printer writes console output and keeps the first write error, so callers check it once
type Printer struct {
	writer io.Writer
	err    error
}

func NewPrinter(writer io.Writer) *Printer {
	return &Printer{writer: writer}
}

func (p *Printer) Printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.writer, format, args...)
}

func (p *Printer) Println(args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.writer, args...)
}

// Separator prints a line of dashes
func (p *Printer) Separator(width int) {
	p.Println(strings.Repeat("-", width))
}

func (p *Printer) Err() error {
	return p.err
}
