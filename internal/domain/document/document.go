// Package document lays out the printable slips of a service order: the lab
// remittance and the sale remittance. Rendering runs in two phases. The
// tenant logo is resolved first (any failure becomes the fallback glyph),
// then the page is positioned synchronously on a Surface.
package document

import (
	"errors"
	"fmt"
	"strings"
)

// Kind selects the document variant.
type Kind string

const (
	KindLab  Kind = "lab"
	KindSale Kind = "sale"
)

const ContentTypePDF = "application/pdf"

var (
	ErrUnknownKind  = errors.New("unknown document kind")
	ErrRenderFailed = errors.New("document generation failed")
)

// ParseKind accepts the route names plus the shop's own wording.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lab", "laboratorio":
		return KindLab, nil
	case "sale", "venda":
		return KindSale, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) Valid() bool {
	return k == KindLab || k == KindSale
}

// Title is the heading printed at the top of the page.
func (k Kind) Title() string {
	if k == KindLab {
		return "REMESSA DO LABORATÓRIO"
	}
	return "REMESSA DE VENDA"
}

// Filename is the download name of a document, e.g. OS-12-Laboratorio.pdf.
func Filename(kind Kind, orderNumber int) string {
	suffix := "Venda"
	if kind == KindLab {
		suffix = "Laboratorio"
	}
	return fmt.Sprintf("OS-%d-%s.pdf", orderNumber, suffix)
}

// Document is a finished file. Data is never partial.
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}
