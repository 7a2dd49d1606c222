package apiclient

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"

	"agrive-admin/internal/model"
)

// formPart is one field of a multipart body: either a value or a file.
type formPart struct {
	name  string
	value string
	file  *model.FileUpload
}

func field(name, value string) formPart {
	return formPart{name: name, value: value}
}

func filePart(name string, f model.FileUpload) formPart {
	return formPart{name: name, file: &f}
}

// multipartRequest encodes parts as multipart/form-data.
func multipartRequest(method, path string, auth authMode, parts ...formPart) (request, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, p := range parts {
		if p.file == nil {
			if err := w.WriteField(p.name, p.value); err != nil {
				return request{}, fmt.Errorf("failed to write form field %s: %w", p.name, err)
			}
			continue
		}

		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			escapeQuotes(p.name), escapeQuotes(p.file.FileName)))
		contentType := p.file.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		h.Set("Content-Type", contentType)

		pw, err := w.CreatePart(h)
		if err != nil {
			return request{}, fmt.Errorf("failed to create form file %s: %w", p.name, err)
		}
		if _, err := pw.Write(p.file.Data); err != nil {
			return request{}, fmt.Errorf("failed to write form file %s: %w", p.name, err)
		}
	}

	if err := w.Close(); err != nil {
		return request{}, fmt.Errorf("failed to close multipart body: %w", err)
	}

	return request{
		method:      method,
		path:        path,
		auth:        auth,
		body:        &buf,
		contentType: w.FormDataContentType(),
	}, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
