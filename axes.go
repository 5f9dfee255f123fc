package main

// Range is a closed world-space interval.
type Range struct {
	Min float64
	Max float64
}

func (r Range) Width() float64 { return r.Max - r.Min }

// Axes holds the visible coordinate ranges and the tick spacing derived from
// them. XRange/YRange are always symmetric about the origin: they are computed
// from BaseRange and the current zoom, never mutated piecemeal.
type Axes struct {
	XRange      Range
	YRange      Range
	BaseRangeX  float64
	BaseRangeY  float64
	TickSpacing float64
	XLabel      string
	YLabel      string
	ShowNumbers bool
	ShowArrows  bool
}

func NewAxes() *Axes {
	return &Axes{
		XRange:      Range{-DefaultBaseRangeX / 2, DefaultBaseRangeX / 2},
		YRange:      Range{-DefaultBaseRangeY / 2, DefaultBaseRangeY / 2},
		BaseRangeX:  DefaultBaseRangeX,
		BaseRangeY:  DefaultBaseRangeY,
		TickSpacing: BaseTickUnit,
		XLabel:      "x",
		YLabel:      "y",
		ShowNumbers: true,
		ShowArrows:  true,
	}
}

// TickSpacingForZoom picks the tick spacing from a fixed ladder keyed on the
// effective range (base range divided by zoom). Strict > comparisons: a range
// exactly on a threshold falls to the lower tier.
func (a *Axes) TickSpacingForZoom(zoom float64) float64 {
	effectiveRange := a.BaseRangeX / zoom
	switch {
	case effectiveRange > 100:
		return BaseTickUnit * 10
	case effectiveRange > 50:
		return BaseTickUnit * 5
	case effectiveRange > 20:
		return BaseTickUnit * 2
	case effectiveRange > 10:
		return BaseTickUnit
	case effectiveRange > 5:
		return BaseTickUnit * 0.5
	case effectiveRange > 2:
		return BaseTickUnit * 0.2
	default:
		return BaseTickUnit * 0.1
	}
}

// UpdateForZoom recomputes ranges and tick spacing together. Zooming in
// shrinks the visible range (standard magnify semantics).
func (a *Axes) UpdateForZoom(zoom float64) {
	halfWidth := a.BaseRangeX / (2 * zoom)
	halfHeight := a.BaseRangeY / (2 * zoom)
	a.XRange = Range{-halfWidth, halfWidth}
	a.YRange = Range{-halfHeight, halfHeight}
	a.TickSpacing = a.TickSpacingForZoom(zoom)
}

// Grid holds the major/minor line spacing. Its ladder is keyed on zoom
// directly rather than on the effective range, so grid density and tick
// density shift tiers at different moments on purpose.
type Grid struct {
	Spacing      float64
	MinorSpacing float64
	BaseSpacing  float64
	Opacity      float64
	ShowMinor    bool
}

func NewGrid() *Grid {
	return &Grid{
		Spacing:      DefaultGridStep,
		MinorSpacing: DefaultGridStep * MinorGridFactor,
		BaseSpacing:  DefaultGridStep,
		Opacity:      GridOpacity,
		ShowMinor:    true,
	}
}

// UpdateForZoom recomputes major spacing from the zoom ladder; minor spacing
// is always a fifth of major.
func (g *Grid) UpdateForZoom(zoom float64) {
	switch {
	case zoom > 5.0:
		g.Spacing = g.BaseSpacing * 0.2
	case zoom > 2.0:
		g.Spacing = g.BaseSpacing * 0.5
	case zoom > 0.5:
		g.Spacing = g.BaseSpacing
	case zoom > 0.2:
		g.Spacing = g.BaseSpacing * 2.0
	default:
		g.Spacing = g.BaseSpacing * 5.0
	}
	g.MinorSpacing = g.Spacing * MinorGridFactor
}
