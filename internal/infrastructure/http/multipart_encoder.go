package httpinfra

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"qform.io/cli/internal/core/domain/questionnaire"
)

// sniffLen matches mimetype's default read limit.
const sniffLen = 3072

// MultipartBody is an encoded multipart/form-data payload. It is held in
// memory so the request carries a Content-Length; servers that read the
// form by length reject chunked uploads.
type MultipartBody struct {
	data        []byte
	ContentType string
}

// EncodeMultipart writes every part into a single payload. Attachment read
// errors are returned here, before any request is made.
func EncodeMultipart(parts []questionnaire.Part) (*MultipartBody, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := WriteParts(mw, parts); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart body: %w", err)
	}
	return &MultipartBody{data: buf.Bytes(), ContentType: mw.FormDataContentType()}, nil
}

func (b *MultipartBody) Len() int {
	return len(b.data)
}

// Reader returns a fresh reader over the payload. net/http derives
// Content-Length and GetBody from a *bytes.Reader.
func (b *MultipartBody) Reader() *bytes.Reader {
	return bytes.NewReader(b.data)
}

// WriteParts writes every part to mw without closing it. Attachment readers
// that implement io.Closer are closed once written.
func WriteParts(mw *multipart.Writer, parts []questionnaire.Part) error {
	for _, p := range parts {
		switch p.Kind {
		case questionnaire.TextPart:
			if err := mw.WriteField(p.Key, p.Value); err != nil {
				return fmt.Errorf("failed to write field %s: %w", p.Key, err)
			}
		case questionnaire.FilePart:
			if err := writeFile(mw, p.Key, p.File); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeFile(mw *multipart.Writer, key string, a questionnaire.Attachment) error {
	if c, ok := a.Content.(io.Closer); ok {
		defer c.Close()
	}
	if a.Content == nil {
		return fmt.Errorf("attachment %s (%s) has no content", key, a.Filename)
	}

	content := a.Content
	contentType := a.ContentType
	if contentType == "" {
		br := bufio.NewReaderSize(a.Content, sniffLen)
		head, err := br.Peek(sniffLen)
		if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
			return fmt.Errorf("failed to read attachment %s (%s): %w", key, a.Filename, err)
		}
		contentType = mimetype.Detect(head).String()
		content = br
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, escapeQuotes(key), escapeQuotes(a.Filename)))
	h.Set("Content-Type", contentType)

	w, err := mw.CreatePart(h)
	if err != nil {
		return fmt.Errorf("failed to create part %s: %w", key, err)
	}
	if _, err := io.Copy(w, content); err != nil {
		return fmt.Errorf("failed to write attachment %s (%s): %w", key, a.Filename, err)
	}
	return nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
