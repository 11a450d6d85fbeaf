package logo

import "github.com/benoitkugler/fenglogo/svgicon"

// Params holds every knob of the logo. It is passed by value
// and never modified once built.
type Params struct {
	// Overall geometry
	Height float64 // canvas height (px)
	Stroke float64 // stroke width (px)
	Margin float64 // outer padding (px)

	// Letter widths
	LetterWidth float64 // F, E, G width
	NRatio      float64 // N width = LetterWidth * NRatio

	// Spacing between letters, as a multiple of the stroke width
	GapRatio float64

	StrokeColor string
	Cap         svgicon.CapMode
	Join        svgicon.JoinMode

	// Vertical position of the bars, relative to the box height
	YTop, YMid, YBot float64

	// F bar lengths, relative to the letter width
	FTop, FMid, FBot float64

	// E bar lengths: top and bottom share EShort
	EShort, EMid float64

	// G construction
	GInset   float64 // left/right padding inside the box, relative to width
	GHook    float64 // hook length, relative to the usable width
	GCounter float64 // counter side, relative to the usable height
}

// DefaultParams returns the reference proportions of the logo.
func DefaultParams() Params {
	return Params{
		Height: 200,
		Stroke: 20,
		Margin: 28,

		LetterWidth: 280,
		NRatio:      0.5,
		GapRatio:    1.8,

		StrokeColor: "#000000",
		Cap:         svgicon.RoundCap,
		Join:        svgicon.Round,

		YTop: 0.20,
		YMid: 0.50,
		YBot: 0.80,

		FTop: 1.00,
		FMid: 0.88,
		FBot: 0.46,

		EShort: 0.38,
		EMid:   1.00,

		GInset:   0.10,
		GHook:    0.32,
		GCounter: 0.52,
	}
}

// Gap returns the horizontal space between two letters.
func (p Params) Gap() float64 { return p.GapRatio * p.Stroke }

// BoxHeight returns the letter box height, inside the margins.
func (p Params) BoxHeight() float64 { return p.Height - 2*p.Margin }
