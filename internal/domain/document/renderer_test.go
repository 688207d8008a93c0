package document

import (
	"bytes"
	"context"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opticai/internal/domain/entities"
)

func pngLogo(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.NRGBA{R: 37, G: 99, B: 235, A: uint8(x * 30)})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestResolveLogo_ReencodesAsJPEG(t *testing.T) {
	logo := ResolveLogo(context.Background(), staticFetcher{data: pngLogo(t)}, "https://cdn.example.com/logo.png")
	require.True(t, logo.Present())
	assert.Equal(t, 8, logo.Width)
	assert.Equal(t, 8, logo.Height)

	_, format, err := image.Decode(bytes.NewReader(logo.JPEG))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
}

// oversizedPNG is a valid 1x1 gray PNG whose header claims width x height.
func oversizedPNG(t *testing.T, width, height uint32) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 1, 1))))
	data := buf.Bytes()
	require.Equal(t, "IHDR", string(data[12:16]))
	binary.BigEndian.PutUint32(data[16:20], width)
	binary.BigEndian.PutUint32(data[20:24], height)
	binary.BigEndian.PutUint32(data[29:33], crc32.ChecksumIEEE(data[12:29]))
	return data
}

func TestResolveLogo_RefusesOversizedImage(t *testing.T) {
	data := oversizedPNG(t, 20000, 20000)
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 20000, cfg.Width)

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	logo := ResolveLogo(context.Background(), staticFetcher{data: data}, "https://cdn.example.com/huge.png")
	runtime.ReadMemStats(&after)

	assert.False(t, logo.Present())
	assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(16<<20))
}

func TestLogo_Fit(t *testing.T) {
	w, h := Logo{Width: 400, Height: 100}.Fit(12, 12)
	assert.InDelta(t, 12, w, 1e-9)
	assert.InDelta(t, 3, h, 1e-9)

	w, h = Logo{}.Fit(12, 12)
	assert.Equal(t, 12.0, w)
	assert.Equal(t, 12.0, h)
}

func TestResolveLogo_NilFetcher(t *testing.T) {
	assert.False(t, ResolveLogo(context.Background(), nil, "https://cdn.example.com/logo.png").Present())
}

func TestRenderer_Render(t *testing.T) {
	ctx := context.Background()

	t.Run("lab with fallback logo", func(t *testing.T) {
		tenant := sampleTenant()
		tenant.LogoURL = "https://cdn.example.com/logo.png"
		r := NewRenderer(&failingFetcher{})

		doc, err := r.Render(ctx, KindLab, sampleOrder(), tenant)
		require.NoError(t, err)
		assert.Equal(t, "OS-42-Laboratorio.pdf", doc.Filename)
		assert.Equal(t, ContentTypePDF, doc.ContentType)
		assert.True(t, bytes.HasPrefix(doc.Data, []byte("%PDF")))
	})

	t.Run("sale with embedded logo", func(t *testing.T) {
		tenant := sampleTenant()
		tenant.LogoURL = "s3://logos/tenant-1.png"
		r := NewRenderer(staticFetcher{data: pngLogo(t)})

		o := sampleOrder()
		o.PaymentMethod = entities.PaymentMethodCredit
		o.Installments = 6
		o.ClientNote = "Cliente prefere retirar após as 18h"

		doc, err := r.Render(ctx, KindSale, o, tenant)
		require.NoError(t, err)
		assert.Equal(t, "OS-42-Venda.pdf", doc.Filename)
		assert.True(t, bytes.HasPrefix(doc.Data, []byte("%PDF")))
	})

	t.Run("unknown kind", func(t *testing.T) {
		doc, err := NewRenderer(nil).Render(ctx, Kind("x"), sampleOrder(), sampleTenant())
		assert.ErrorIs(t, err, ErrUnknownKind)
		assert.Empty(t, doc.Data)
	})
}
