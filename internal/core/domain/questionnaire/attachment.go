package questionnaire

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
)

// Attachment is a binary part of a questionnaire.
type Attachment struct {
	Filename string `form:"filename" validate:"required"`
	// ContentType is sniffed from the content when empty.
	ContentType string
	Content     io.Reader `form:"content" validate:"required"`
}

// NewAttachment wraps in-memory content.
func NewAttachment(filename string, data []byte) Attachment {
	return Attachment{Filename: filename, Content: bytes.NewReader(data)}
}

// Empty reports whether no content was supplied.
func (a Attachment) Empty() bool {
	return a.Content == nil
}

// FileAttachment refers to a file on disk. The file is opened on first read
// and closed when the encoder is done with it.
func FileAttachment(path string) Attachment {
	return Attachment{Filename: filepath.Base(path), Content: &lazyFile{path: path}}
}

type lazyFile struct {
	path string
	f    *os.File
}

func (l *lazyFile) Read(p []byte) (int, error) {
	if l.f == nil {
		f, err := os.Open(l.path)
		if err != nil {
			return 0, err
		}
		l.f = f
	}
	return l.f.Read(p)
}

func (l *lazyFile) Close() error {
	if l.f == nil {
		return nil
	}
	err := l.f.Close()
	l.f = nil
	return err
}
