package document

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// BinaryFetcher retrieves the bytes behind a URL. Any error means the
// resource is unavailable.
type BinaryFetcher interface {
	FetchBinary(ctx context.Context, url string) ([]byte, error)
}

var logoTypes = []string{"image/jpeg", "image/png", "image/gif"}

// maxLogoSide bounds each dimension a logo may decode into.
const maxLogoSide = 4096

// Logo is a resolved tenant logo as baseline JPEG with its pixel size. The
// zero Logo means the fallback glyph is drawn instead.
type Logo struct {
	JPEG   []byte
	Width  int
	Height int
}

func (l Logo) Present() bool {
	return len(l.JPEG) > 0
}

// ResolveLogo is the first rendering phase. A missing URL, a fetch error, an
// unsupported type and an undecodable image all yield the zero Logo.
func ResolveLogo(ctx context.Context, fetcher BinaryFetcher, url string) Logo {
	url = strings.TrimSpace(url)
	if url == "" || fetcher == nil {
		return Logo{}
	}
	data, err := fetcher.FetchBinary(ctx, url)
	if err != nil || len(data) == 0 {
		return Logo{}
	}
	return decodeLogo(data)
}

func decodeLogo(data []byte) Logo {
	if !isLogoType(data) {
		return Logo{}
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width > maxLogoSide || cfg.Height > maxLogoSide {
		return Logo{}
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Logo{}
	}
	b := img.Bounds()
	if b.Empty() {
		return Logo{}
	}

	flat := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(flat, flat.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	draw.Draw(flat, flat.Bounds(), img, b.Min, draw.Over)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, flat, &jpeg.Options{Quality: 90}); err != nil {
		return Logo{}
	}
	return Logo{JPEG: buf.Bytes(), Width: b.Dx(), Height: b.Dy()}
}

func isLogoType(data []byte) bool {
	mt := mimetype.Detect(data)
	for _, t := range logoTypes {
		if mt.Is(t) {
			return true
		}
	}
	return false
}

// Fit scales the logo into a box of w by h keeping its aspect ratio. A logo
// without a known size fills the box.
func (l Logo) Fit(w, h float64) (float64, float64) {
	if l.Width <= 0 || l.Height <= 0 {
		return w, h
	}
	scale := w / float64(l.Width)
	if s := h / float64(l.Height); s < scale {
		scale = s
	}
	return float64(l.Width) * scale, float64(l.Height) * scale
}
