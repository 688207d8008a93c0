package document

import (
	"strings"

	"opticai/internal/domain/entities"
)

const (
	clientNameLimit = 30
	phoneUnderline  = 30.0
	tableRowHeight  = 7.0
	tableHeadHeight = 6.0
)

var labColumns = []struct {
	title string
	width float64
}{
	{"", 14},
	{"Esférico", 22},
	{"Cilíndrico", 22},
	{"Eixo", 18},
	{"DNP", 18},
	{"Altura", 18},
	{"Adição", 24},
}

func drawLabBody(o entities.ServiceOrder, s Surface, y float64) {
	drawLabClientLine(o, s, y)
	y += 8
	y = drawPrescriptionTable(o, s, y) + 5
	y = drawLensType(o, s, y)
	drawNoteLine(o.GeneralNote, s, y)
}

func drawLabClientLine(o entities.ServiceOrder, s Surface, y float64) {
	label := "Nome:"
	s.SetFont(Regular, 10)
	labelW := s.TextWidth(label)
	s.Text(Margin, y, label, AlignLeft)

	name := truncate(o.ClientName, clientNameLimit)
	valueX := Margin + labelW + labelGap
	s.SetFont(Bold, 11)
	nameW := s.TextWidth(name)
	s.Text(valueX, y, name, AlignLeft)
	s.Line(valueX, y+1, valueX+max(nameW, BodyWidth*0.6-labelW-labelGap), y+1)

	phoneLabel := "Tel:"
	phone := formatPhone(o.ClientPhone)
	w := underlinedFieldWidth(s, phoneLabel, phone, phoneUnderline)
	drawUnderlinedField(s, PageWidth-Margin-w, y, phoneLabel, phone, phoneUnderline)
}

// drawPrescriptionTable draws the OD/OE grid and returns its bottom edge. The
// addition column spans both rows.
func drawPrescriptionTable(o entities.ServiceOrder, s Surface, y float64) float64 {
	s.SetLineWidth(0.3)
	s.SetDrawColor(colorBorder)

	x := Margin
	s.SetFillColor(colorHeaderFill)
	s.SetTextColor(colorHeaderText)
	s.SetFont(Bold, 9)
	for _, col := range labColumns {
		s.Rect(x, y, col.width, tableHeadHeight, FillStroke)
		if col.title != "" {
			s.Text(x+col.width/2, y+tableHeadHeight/2+1.2, col.title, AlignCenter)
		}
		x += col.width
	}

	rows := []struct {
		label string
		eye   entities.EyePrescription
	}{
		{"OD", o.RightEye},
		{"OE", o.LeftEye},
	}
	rowY := y + tableHeadHeight
	for i, row := range rows {
		cells := []string{
			opticalCell(row.eye.Sphere, true),
			opticalCell(row.eye.Cylinder, false),
			strings.TrimSpace(row.eye.Axis),
			strings.TrimSpace(row.eye.DNP),
			strings.TrimSpace(row.eye.Height),
		}
		cy := rowY + float64(i)*tableRowHeight
		baseline := cy + tableRowHeight/2 + 1.2

		x = Margin
		first := labColumns[0].width
		s.SetFillColor(colorHeaderFill)
		s.Rect(x, cy, first, tableRowHeight, FillStroke)
		s.SetTextColor(colorHeaderText)
		s.SetFont(Bold, 9)
		s.Text(x+first/2, baseline, row.label, AlignCenter)
		x += first

		s.SetTextColor(colorBlack)
		s.SetFont(Regular, 9)
		for j, cell := range cells {
			w := labColumns[j+1].width
			s.Rect(x, cy, w, tableRowHeight, Stroke)
			if cell != "" {
				s.Text(x+w/2, baseline, cell, AlignCenter)
			}
			x += w
		}
	}

	addW := labColumns[len(labColumns)-1].width
	addX := Margin + BodyWidth - addW
	spanH := float64(len(rows)) * tableRowHeight
	s.Rect(addX, rowY, addW, spanH, Stroke)
	if cell := additionCell(o); cell != "" {
		s.Text(addX+addW/2, rowY+spanH/2+1.2, cell, AlignCenter)
	}

	s.SetDrawColor(colorBlack)
	s.SetLineWidth(0.2)
	return rowY + spanH
}

// additionCell is the merged addition value: a dash unless the lens is
// multifocal.
func additionCell(o entities.ServiceOrder) string {
	if o.LensType != entities.LensTypeMultifocal {
		return placeholder
	}
	return opticalCell(o.Addition, true)
}

// drawLensType draws the two lens indicators and the centred description and
// returns the y of the next line.
func drawLensType(o entities.ServiceOrder, s Surface, y float64) float64 {
	s.SetFont(Bold, 9)
	s.Text(Margin, y, "Tipo de Lente", AlignLeft)
	y += 3

	options := []entities.LensType{entities.LensTypeSingleVision, entities.LensTypeMultifocal}
	s.SetDrawColor(colorAccent)
	s.SetFont(Regular, 8)
	for i, lens := range options {
		cy := y + 1 + float64(i)*3
		if o.LensType == lens {
			s.SetFillColor(colorAccent)
		} else {
			s.SetFillColor(colorWhite)
		}
		s.Circle(Margin+2, cy, 1.5, FillStroke)
		s.Text(Margin+6, cy+1, string(lens), AlignLeft)
	}
	s.SetDrawColor(colorBlack)

	descX := Margin + BodyWidth*0.3 + 5
	descW := BodyWidth * 0.6
	lineY := y + 4
	s.SetFont(Regular, 11)
	if desc := strings.TrimSpace(o.LensDescription); desc != "" {
		s.Text(descX+descW/2, lineY-1, desc, AlignCenter)
	}
	s.Line(descX, lineY, descX+descW, lineY)
	return y + 12
}

func drawNoteLine(note string, s Surface, y float64) {
	label := "Obs.:"
	s.SetFont(Bold, 9)
	labelW := s.TextWidth(label)
	s.Text(Margin, y, label, AlignLeft)
	s.SetFont(Regular, 9)
	if lines := wrapText(s, note, BodyWidth-labelW-labelGap, 1); len(lines) > 0 {
		s.Text(Margin+labelW+labelGap, y, lines[0], AlignLeft)
	}
	s.Line(Margin+labelW+labelGap, y+1, PageWidth-Margin, y+1)
}
