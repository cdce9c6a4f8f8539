package export

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	at := time.Date(2026, 5, 1, 9, 7, 3, 0, time.UTC)

	err := Write(&buf, &Document{
		Title:       "Careers Fair",
		At:          at,
		Identifiers: []string{"123456", "654321"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Event attendees - 01/05/2026 09:07:03\nCareers Fair\n123456\n654321\n", buf.String())
}

func TestWriteEmptyLedger(t *testing.T) {
	var buf bytes.Buffer

	err := Write(&buf, &Document{Title: "Drop in", At: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)})

	require.NoError(t, err)
	assert.Equal(t, "Event attendees - 02/01/2026 03:04:05\nDrop in\n", buf.String())
}

func TestWriteErrors(t *testing.T) {
	assert.ErrorIs(t, Write(&bytes.Buffer{}, nil), ErrNilDocument)

	err := Write(failingWriter{}, &Document{Title: "x", Identifiers: []string{"1"}})
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	at := time.Date(2026, 5, 1, 9, 7, 3, 0, time.UTC)

	assert.Equal(t, "Careers-Fair--Spring-20260501-090703.txt", FileName("Careers Fair: Spring", at))
	assert.Equal(t, "attendees-20260501-090703.txt", FileName("  ", at))
}

func TestPath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "list.txt"), Path("out", "list"))
	assert.Equal(t, filepath.Join("out", "list.TXT"), Path("out", "list.TXT"))
}
