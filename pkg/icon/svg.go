package icon

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
)

// svgFontFamily mirrors the raster fallback order.
const svgFontFamily = "DejaVu Sans,Helvetica,Arial,sans-serif"

// RenderSVG writes the icon as an SVG document. The glyph is centered by
// the viewer using the text anchor and baseline properties, so no font
// metrics are needed.
func RenderSVG(w io.Writer, req Request) error {
	if err := req.Validate(); err != nil {
		return err
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(req.Size, req.Size)
	if req.DisplayName != "" {
		canvas.Title(req.DisplayName)
	}
	canvas.Rect(0, 0, req.Size, req.Size, "fill:"+req.Background.String())
	canvas.Text(req.Size/2, req.Size/2, req.Glyph, fmt.Sprintf(
		"text-anchor:middle;dominant-baseline:central;font-family:%s;font-weight:bold;font-size:%dpx;fill:%s",
		svgFontFamily, int(fontSize(req.Size, FontScale)), req.Foreground,
	))
	canvas.End()
	return ew.err
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
