package media

import (
	"context"
	"encoding/base64"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Upload is a file handed over by a create/edit form.
type Upload struct {
	Name   string
	Reader io.Reader
}

// Decoder turns an uploaded file into an inline data URL so it can be
// stored next to plain image URLs in the same field.
type Decoder interface {
	DecodeDataURL(ctx context.Context, up Upload) (string, error)
}

type dataURLDecoder struct {
	log *logrus.Entry
}

func NewDecoder(log *logrus.Entry) Decoder {
	return &dataURLDecoder{
		log: log,
	}
}

func (d *dataURLDecoder) DecodeDataURL(ctx context.Context, up Upload) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := io.ReadAll(up.Reader)
	if err != nil {
		d.log.Debugf("DecodeDataURL: failed reading %s - %v", up.Name, err)
		return "", err
	}

	mimeType := mime.TypeByExtension(filepath.Ext(up.Name))
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	// strip any charset parameter, data URLs carry the bare type here
	if idx := strings.Index(mimeType, ";"); idx >= 0 {
		mimeType = mimeType[:idx]
	}

	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// IsDataURL reports whether a stored source is an inline payload
// rather than an external URL.
func IsDataURL(src string) bool {
	return strings.HasPrefix(src, "data:")
}
