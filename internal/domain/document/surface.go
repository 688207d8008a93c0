package document

// Page geometry in millimetres (A6 landscape).
const (
	PageWidth  = 148.0
	PageHeight = 105.0
	Margin     = 6.0
	BodyWidth  = PageWidth - 2*Margin
)

type FontStyle string

const (
	Regular FontStyle = ""
	Bold    FontStyle = "B"
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// DrawStyle follows the PDF paint operators: F fills, D strokes, FD does both.
type DrawStyle string

const (
	Fill       DrawStyle = "F"
	Stroke     DrawStyle = "D"
	FillStroke DrawStyle = "FD"
)

type Color struct {
	R, G, B int
}

var (
	colorBlack      = Color{0, 0, 0}
	colorWhite      = Color{255, 255, 255}
	colorAccent     = Color{37, 99, 235}
	colorBorder     = Color{209, 213, 219}
	colorHeaderFill = Color{249, 250, 251}
	colorHeaderText = Color{55, 65, 81}
	colorInk        = Color{17, 24, 39}
)

// Surface is the drawing target of the layout. Coordinates are millimetres
// from the top-left corner; text y is the baseline.
type Surface interface {
	SetFont(style FontStyle, size float64)
	SetTextColor(c Color)
	SetDrawColor(c Color)
	SetFillColor(c Color)
	SetLineWidth(w float64)
	// TextWidth measures s in the current font.
	TextWidth(s string) float64
	Text(x, y float64, s string, align Align)
	Line(x1, y1, x2, y2 float64)
	Rect(x, y, w, h float64, style DrawStyle)
	Circle(x, y, r float64, style DrawStyle)
	Image(logo Logo, x, y, w, h float64)
}
