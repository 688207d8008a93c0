package document

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"

	"github.com/go-pdf/fpdf"
)

const fontFamily = "Helvetica"

// pdfSurface draws on a go-pdf/fpdf page. Core fonts are cp1252, so every
// string goes through the unicode translator before it is measured or drawn.
type pdfSurface struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func newPDFSurface() *pdfSurface {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "L",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: PageHeight, Ht: PageWidth},
	})
	pdf.SetMargins(Margin, Margin, Margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("opticai", true)
	pdf.AddPage()
	return &pdfSurface{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

func (p *pdfSurface) SetFont(style FontStyle, size float64) {
	p.pdf.SetFont(fontFamily, string(style), size)
}

func (p *pdfSurface) SetTextColor(c Color)   { p.pdf.SetTextColor(c.R, c.G, c.B) }
func (p *pdfSurface) SetDrawColor(c Color)   { p.pdf.SetDrawColor(c.R, c.G, c.B) }
func (p *pdfSurface) SetFillColor(c Color)   { p.pdf.SetFillColor(c.R, c.G, c.B) }
func (p *pdfSurface) SetLineWidth(w float64) { p.pdf.SetLineWidth(w) }

func (p *pdfSurface) TextWidth(s string) float64 {
	return p.pdf.GetStringWidth(p.tr(s))
}

func (p *pdfSurface) Text(x, y float64, s string, align Align) {
	s = p.tr(s)
	switch align {
	case AlignCenter:
		x -= p.pdf.GetStringWidth(s) / 2
	case AlignRight:
		x -= p.pdf.GetStringWidth(s)
	}
	p.pdf.Text(x, y, s)
}

func (p *pdfSurface) Line(x1, y1, x2, y2 float64) { p.pdf.Line(x1, y1, x2, y2) }

func (p *pdfSurface) Rect(x, y, w, h float64, style DrawStyle) {
	p.pdf.Rect(x, y, w, h, string(style))
}

func (p *pdfSurface) Circle(x, y, r float64, style DrawStyle) {
	p.pdf.Circle(x, y, r, string(style))
}

func (p *pdfSurface) Image(logo Logo, x, y, w, h float64) {
	sum := sha1.Sum(logo.JPEG)
	name := "logo-" + hex.EncodeToString(sum[:8])
	opts := fpdf.ImageOptions{ImageType: "JPEG", ReadDpi: false}
	if p.pdf.GetImageInfo(name) == nil {
		p.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(logo.JPEG))
	}
	p.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
}

// output finishes the document. Any error recorded while drawing is returned
// here and no output is produced.
func (p *pdfSurface) output() ([]byte, error) {
	if err := p.pdf.Error(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := p.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var _ Surface = (*pdfSurface)(nil)
