package export

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"
	"unicode"
)

// DateLayout is the timestamp format of the header line
const DateLayout = "02/01/2006 15:04:05"

const extension = ".txt"

// Document is the content of an attendee export
type Document struct {
	Title       string
	At          time.Time
	Identifiers []string
}

// Write writes the header line, the event title and one identifier per line
func Write(w io.Writer, doc *Document) error {
	if doc == nil {
		return ErrNilDocument
	}

	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "Event attendees - %s\n", doc.At.Format(DateLayout)); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if _, err := fmt.Fprintln(bw, doc.Title); err != nil {
		return fmt.Errorf("failed to write title: %w", err)
	}

	for _, identifier := range doc.Identifiers {
		if _, err := fmt.Fprintln(bw, identifier); err != nil {
			return fmt.Errorf("failed to write identifier %s: %w", identifier, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush export: %w", err)
	}

	return nil
}

// FileName builds the file name of an export for an event title
func FileName(title string, at time.Time) string {
	name := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '-'
	}, strings.TrimSpace(title))
	name = strings.Trim(name, "-")
	if name == "" {
		name = "attendees"
	}

	return name + "-" + at.Format("20060102-150405") + extension
}

// Path joins dir and name, enforcing the .txt extension
func Path(dir, name string) string {
	if !strings.EqualFold(filepath.Ext(name), extension) {
		name += extension
	}

	return filepath.Join(dir, name)
}
