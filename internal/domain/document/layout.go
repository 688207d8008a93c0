package document

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"opticai/internal/domain/entities"
	"opticai/internal/domain/orderform"
)

const (
	logoSize        = 12.0
	osBoxWidth      = 20.0
	osBoxHeight     = 10.0
	tenantNameLimit = 25
	addressLimit    = 40
	labelGap        = 2.0
	minUnderline    = 25.0
	placeholder     = "-"
	ellipsis        = "..."
)

// Layout is the second rendering phase: it positions every element of kind
// on s. It does no I/O and never mutates its inputs.
func Layout(kind Kind, order entities.ServiceOrder, tenant entities.Tenant, logo Logo, s Surface) error {
	if !kind.Valid() {
		return ErrUnknownKind
	}
	s.SetTextColor(colorBlack)
	s.SetDrawColor(colorBlack)
	s.SetLineWidth(0.2)

	y := drawHeader(kind, order, tenant, logo, s)
	switch kind {
	case KindLab:
		drawLabBody(order, s, y)
	case KindSale:
		drawSaleBody(order, s, y)
	}
	return nil
}

// drawHeader draws the part shared by both kinds and returns the y where the
// body starts.
func drawHeader(kind Kind, order entities.ServiceOrder, tenant entities.Tenant, logo Logo, s Surface) float64 {
	y := Margin
	s.SetFont(Bold, 12)
	s.Text(PageWidth/2, y+3, kind.Title(), AlignCenter)
	y += 8

	if logo.Present() {
		w, h := logo.Fit(logoSize, logoSize)
		s.Image(logo, Margin+(logoSize-w)/2, y+(logoSize-h)/2, w, h)
	} else {
		drawFallbackLogo(tenant.Name, s, Margin, y)
	}

	infoX := Margin + logoSize + 4
	s.SetFont(Bold, 10)
	s.Text(infoX, y+3, truncate(tenant.Name, tenantNameLimit), AlignLeft)
	s.SetFont(Regular, 8)
	address := tenant.FullAddress()
	if address == "" {
		address = "Endereço não informado"
	}
	s.Text(infoX, y+6, truncate(address, addressLimit), AlignLeft)
	if phone := strings.TrimSpace(tenant.Phone); phone != "" {
		s.Text(infoX, y+9, "Tel: "+formatPhone(phone), AlignLeft)
	}

	boxX := PageWidth - Margin - osBoxWidth
	s.SetFont(Bold, 8)
	s.Text(boxX+osBoxWidth/2, y+2, "N° OS", AlignCenter)
	boxY := y + 3
	s.SetDrawColor(colorBorder)
	s.SetFillColor(colorHeaderFill)
	s.Rect(boxX, boxY, osBoxWidth, osBoxHeight, FillStroke)
	s.SetFont(Bold, 14)
	s.SetTextColor(colorInk)
	s.Text(boxX+osBoxWidth/2, boxY+6.5, fmt.Sprint(order.OrderNumber), AlignCenter)
	s.SetTextColor(colorBlack)
	s.SetDrawColor(colorBlack)
	y += 18

	drawUnderlinedField(s, Margin, y, "Data Venda:", formatDate(order.SaleDate), minUnderline)
	deliveryLabel := "Data Entrega:"
	deliveryValue := formatDate(order.DeliveryDate)
	w := underlinedFieldWidth(s, deliveryLabel, deliveryValue, minUnderline)
	drawUnderlinedField(s, PageWidth-Margin-w, y, deliveryLabel, deliveryValue, minUnderline)
	return y + 10
}

// drawFallbackLogo is the only substitute for a logo: an accent square with
// the tenant's initial.
func drawFallbackLogo(name string, s Surface, x, y float64) {
	s.SetFillColor(colorAccent)
	s.Rect(x, y, logoSize, logoSize, Fill)
	s.SetTextColor(colorWhite)
	s.SetFont(Bold, 10)
	s.Text(x+logoSize/2, y+logoSize/2+2, initial(name), AlignCenter)
	s.SetTextColor(colorBlack)
}

// drawUnderlinedField prints "label value" with the value in bold and a rule
// under the value only. It returns the total width used.
func drawUnderlinedField(s Surface, x, y float64, label, value string, minLine float64) float64 {
	s.SetFont(Regular, 10)
	labelW := s.TextWidth(label)
	s.Text(x, y, label, AlignLeft)

	valueX := x + labelW + labelGap
	s.SetFont(Bold, 11)
	lineW := max(s.TextWidth(value)+2, minLine)
	s.Text(valueX, y, value, AlignLeft)
	s.Line(valueX, y+1, valueX+lineW, y+1)
	return labelW + labelGap + lineW
}

func underlinedFieldWidth(s Surface, label, value string, minLine float64) float64 {
	s.SetFont(Regular, 10)
	labelW := s.TextWidth(label)
	s.SetFont(Bold, 11)
	return labelW + labelGap + max(s.TextWidth(value)+2, minLine)
}

func initial(name string) string {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(name))
	if r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}

// truncate keeps the first limit characters of s and appends an ellipsis when
// anything was cut.
func truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + ellipsis
}

// wrapText breaks text into lines no wider than width in the current font,
// keeping at most maxLines. Overflow is dropped.
func wrapText(s Surface, text string, width float64, maxLines int) []string {
	var lines []string
	for _, para := range strings.Split(strings.TrimSpace(text), "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if s.TextWidth(candidate) <= width {
				line = candidate
				continue
			}
			if line != "" {
				lines = append(lines, line)
			}
			line = word
			for s.TextWidth(line) > width {
				head, rest := splitToWidth(s, line, width)
				lines = append(lines, head)
				line = rest
			}
		}
		if line != "" {
			lines = append(lines, line)
		}
		if len(lines) >= maxLines {
			break
		}
	}
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}

// splitToWidth cuts a single word that does not fit on a line. At least one
// rune always goes to head.
func splitToWidth(s Surface, word string, width float64) (string, string) {
	r := []rune(word)
	n := 1
	for n < len(r) && s.TextWidth(string(r[:n+1])) <= width {
		n++
	}
	return string(r[:n]), string(r[n:])
}

// formatDate prints a stored date as DD/MM/YYYY; unparsable dates print as typed.
func formatDate(v string) string {
	t, ok := entities.ParseDate(v)
	if !ok {
		return strings.TrimSpace(v)
	}
	return t.Format("02/01/2006")
}

// formatPhone prints 11 and 10 digit numbers in the local mask.
func formatPhone(v string) string {
	d := orderform.Digits(v)
	switch len(d) {
	case 11:
		return "(" + d[:2] + ") " + d[2:3] + " " + d[3:7] + "-" + d[7:]
	case 10:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	}
	return strings.TrimSpace(v)
}

// opticalCell is the printed form of a prescription value: blank for empty
// or zero, sign-prefixed when signed and positive.
func opticalCell(v string, signed bool) string {
	v = strings.TrimSpace(v)
	n, ok := orderform.ParseOptical(v)
	if !ok {
		return v
	}
	if n == 0 {
		return ""
	}
	if signed && n > 0 && !strings.HasPrefix(v, "+") {
		return fmt.Sprintf("+%.2f", n)
	}
	return v
}
