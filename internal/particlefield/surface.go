package particlefield

// Surface is the drawing area behind the page content.
type Surface interface {
	Clear()
	FillCircle(x, y, radius float64, tone Tone)
	StrokeLine(x1, y1, x2, y2, width float64, tone Tone)
}
