// Package pdf renders label documents. Output is a single fixed-size
// page with one line of text, written to a caller-supplied writer so
// concurrent renders never share state.
package pdf

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// Default label geometry, in PDF points. Text coordinates follow the
// PDF convention (origin at the bottom-left corner of the page).
const (
	DefaultWidth  = 400
	DefaultHeight = 200
	DefaultText   = "Sample Label Text"
	DefaultTextX  = 20
	DefaultTextY  = 150
)

// Label describes a single-page label document.
type Label struct {
	Width  float64
	Height float64
	Text   string
	TextX  float64
	TextY  float64
}

// DefaultLabel returns the stock label every print request produces.
func DefaultLabel() Label {
	return Label{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Text:   DefaultText,
		TextX:  DefaultTextX,
		TextY:  DefaultTextY,
	}
}

// Write renders the label as a PDF to w. Compression is off so the
// output is small, deterministic, and inspectable.
func (l Label) Write(w io.Writer) error {
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: l.Width, Ht: l.Height},
	})
	doc.SetCompression(false)
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	doc.SetFont("Helvetica", "", 12)

	// fpdf measures y from the top edge; convert from PDF coordinates.
	doc.Text(l.TextX, l.Height-l.TextY, l.Text)

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("render label pdf: %w", err)
	}
	return nil
}
