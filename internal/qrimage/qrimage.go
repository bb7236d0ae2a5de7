package qrimage

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"qrlink/internal/pkg/errs"

	goqrcode "github.com/skip2/go-qrcode"
)

const pngSize = 256

// Generator produces the scannable image artifact for a code. It holds only
// the immutable base origin, so a single instance is safe for concurrent use.
type Generator struct {
	baseOrigin string
}

// New validates the configured public origin once at startup. A missing or
// unparseable origin is a configuration error, not a per-request one.
func New(baseOrigin string) (*Generator, error) {
	base, err := url.ParseRequestURI(baseOrigin)
	if err != nil {
		return nil, errs.Wrap(err, "invalid base origin for scan URLs")
	}
	return &Generator{baseOrigin: strings.TrimSuffix(base.String(), "/")}, nil
}

// ScanURL builds the fixed-shape URL embedded in every artifact:
// {baseOrigin}/codes/{id}/scan.
func (g *Generator) ScanURL(id int64) string {
	return fmt.Sprintf("%s/codes/%d/scan", g.baseOrigin, id)
}

// PNG encodes the scan URL for id into a QR image. Deterministic: the same id
// against the same base origin yields byte-identical output.
func (g *Generator) PNG(id int64) ([]byte, error) {
	png, err := goqrcode.Encode(g.ScanURL(id), goqrcode.Medium, pngSize)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to encode qr image"), errs.ErrImageEncodeFailed)
	}
	return png, nil
}

// DataURI returns the PNG artifact as a data URI suitable for an <img> src.
func (g *Generator) DataURI(id int64) (string, error) {
	png, err := g.PNG(id)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
