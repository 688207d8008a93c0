package document

import (
	"strconv"
	"strings"

	"opticai/internal/domain/entities"
	"opticai/internal/domain/orderform"
)

const (
	saleBoxHeight  = 6.0
	saleRowSpacing = 11.0
	noteBoxWidth   = 66.0
	noteBoxHeight  = 11.0
	noteTextWidth  = 62.0
	noteMaxLines   = 2
	saleFieldLimit = 34
)

type saleCell struct {
	label string
	value string
	width float64
}

func drawSaleBody(o entities.ServiceOrder, s Surface, y float64) {
	rows := [][]saleCell{
		{
			{"Nome do Cliente", truncate(o.ClientName, saleFieldLimit), 60},
			{"Telefone", formatPhone(o.ClientPhone), 34},
			{"CPF", strings.TrimSpace(o.TaxID), 36},
		},
		{
			{"Data Nascimento", formatDate(o.BirthDate), 28},
			{"Endereço", truncate(o.Address, 60), 105},
		},
		{
			{"Valor Total", totalValueCell(o), 32},
			{"Forma Pagamento", o.PaymentMethod.Label(), 34},
			{"Parcelas", installmentsCell(o), 20},
			{"Status Pagamento", o.PaymentStatus.Label(), 41},
		},
	}
	for _, row := range rows {
		drawSaleRow(s, y, row)
		y += saleRowSpacing
	}

	drawNoteBox(s, Margin, y, "Descrição do Pedido", o.OrderDescription)
	drawNoteBox(s, PageWidth-Margin-noteBoxWidth, y, "Observação do Cliente", o.ClientNote)
}

// drawSaleRow lays cells left to right; the remaining gap is spread evenly.
func drawSaleRow(s Surface, y float64, cells []saleCell) {
	used := 0.0
	for _, c := range cells {
		used += c.width
	}
	gap := 0.0
	if len(cells) > 1 {
		gap = (BodyWidth - used) / float64(len(cells)-1)
	}

	x := Margin
	for _, c := range cells {
		s.SetFont(Bold, 8)
		s.Text(x, y, c.label, AlignLeft)

		s.SetDrawColor(colorBorder)
		s.SetFillColor(colorWhite)
		s.Rect(x, y+1, c.width, saleBoxHeight, FillStroke)
		s.SetFont(Regular, 8)
		if c.value != "" {
			s.Text(x+c.width/2, y+1+saleBoxHeight/2+1.1, c.value, AlignCenter)
		}
		x += c.width + gap
	}
	s.SetDrawColor(colorBlack)
}

func drawNoteBox(s Surface, x, y float64, label, text string) {
	s.SetFont(Bold, 8)
	s.Text(x, y, label, AlignLeft)

	boxY := y + 1
	s.SetDrawColor(colorBorder)
	s.SetFillColor(colorWhite)
	s.Rect(x, boxY, noteBoxWidth, noteBoxHeight, FillStroke)
	s.SetDrawColor(colorBlack)

	s.SetFont(Regular, 8)
	for i, line := range wrapText(s, text, noteTextWidth, noteMaxLines) {
		s.Text(x+2, boxY+4+float64(i)*3.5, line, AlignLeft)
	}
}

func totalValueCell(o entities.ServiceOrder) string {
	if !o.TotalValue.Valid {
		return ""
	}
	return "R$ " + orderform.FormatCurrency(o.TotalValue.Decimal)
}

// installmentsCell is a dash unless the payment is on credit.
func installmentsCell(o entities.ServiceOrder) string {
	if o.PaymentMethod != entities.PaymentMethodCredit || o.Installments < 1 {
		return placeholder
	}
	return strconv.Itoa(o.Installments) + "x"
}
