package display

import "image"

// Layout is the card rectangle and the viewport placed on it. The viewport
// is not clipped to the card.
type Layout struct {
	Card     image.Rectangle
	Viewport image.Rectangle
}

// Place sizes the card for a w x h viewport and aligns the viewport to the
// card's left edge, centred vertically, then shifts it by the style offset.
// Zero card dimensions in opts take the defaults.
func Place(w, h int, style Style, opts PanelOptions) Layout {
	cw, ch := opts.Width, opts.Height
	if cw <= 0 {
		cw = max(DefaultCardWidth, style.OffsetX+w)
	}
	if ch <= 0 {
		ch = max(DefaultCardHeight, h)
	}
	x := style.OffsetX
	y := (ch-h)/2 + style.OffsetY
	return Layout{
		Card:     image.Rect(0, 0, cw, ch),
		Viewport: image.Rect(x, y, x+w, y+h),
	}
}

// Add translates the whole layout by p.
func (l Layout) Add(p image.Point) Layout {
	return Layout{Card: l.Card.Add(p), Viewport: l.Viewport.Add(p)}
}

// LineStyle returns s with its offset replaced by the viewport's top-left
// corner, which is the translation a LineSet applies.
func (l Layout) LineStyle(s Style) Style {
	s.OffsetX, s.OffsetY = l.Viewport.Min.X, l.Viewport.Min.Y
	return s
}
