package ui

import "testing"

func TestButtonContains(t *testing.T) {
	b := &Button{X: 10, Y: 20, W: 100, H: 30}
	cases := []struct {
		mx, my int
		want   bool
	}{
		{10, 20, true},   // top-left corner inclusive
		{110, 50, true},  // bottom-right corner inclusive
		{60, 35, true},   // interior
		{9, 35, false},   // left of
		{111, 35, false}, // right of
		{60, 19, false},  // above
		{60, 51, false},  // below
	}
	for _, tc := range cases {
		if got := b.Contains(tc.mx, tc.my); got != tc.want {
			t.Errorf("Contains(%d, %d): expected %v, got %v", tc.mx, tc.my, tc.want, got)
		}
	}
}

func TestButtonLabelFnOverridesLabel(t *testing.T) {
	b := &Button{Label: "static"}
	if b.label() != "static" {
		t.Errorf("expected static label, got %q", b.label())
	}
	b.LabelFn = func() string { return "dynamic" }
	if b.label() != "dynamic" {
		t.Errorf("LabelFn must win, got %q", b.label())
	}
}

func TestPanelLayoutStacksButtons(t *testing.T) {
	p := NewPanel(230, nil, func() (int, int) { return 800, 600 }, nil, nil)
	p.ButtonW = 200
	p.ButtonH = 28

	first := &Button{}
	second := &Button{}
	p.AddButton(first)
	p.AddButton(second)
	p.layout()

	if first.W != 200 || first.H != 28 {
		t.Errorf("AddButton did not size the button: %vx%v", first.W, first.H)
	}
	if first.X != p.Margin || first.Y != p.Margin {
		t.Errorf("first button misplaced: (%v, %v)", first.X, first.Y)
	}
	wantY := p.Margin + 28 + 6
	if second.Y != wantY {
		t.Errorf("second button at y=%v, expected %v", second.Y, wantY)
	}
}

func TestPanelLayoutPlacesChecksAboveButtons(t *testing.T) {
	p := NewPanel(230, nil, func() (int, int) { return 800, 600 }, nil, nil)
	p.ButtonW = 200
	p.ButtonH = 28

	c := &Checkbox{Label: "toggle"}
	b := &Button{}
	p.AddCheckbox(c)
	p.AddButton(b)
	p.layout()

	if c.Size != 16 {
		t.Errorf("AddCheckbox must default the size, got %v", c.Size)
	}
	if c.Width != 200 {
		t.Errorf("checkbox click target must span the button width, got %v", c.Width)
	}
	if c.Y != p.Margin {
		t.Errorf("checkbox misplaced: y=%v", c.Y)
	}
	if b.Y <= c.Y+c.Size {
		t.Errorf("button at y=%v must sit below the checkbox row ending at %v", b.Y, c.Y+c.Size)
	}
}

func TestCheckboxContains(t *testing.T) {
	c := &Checkbox{X: 12, Y: 12, Size: 16, Width: 200}
	if !c.Contains(12, 12) || !c.Contains(212, 28) {
		t.Error("corners of the click target must count")
	}
	if !c.Contains(100, 20) {
		t.Error("label area must count so clicking the text toggles")
	}
	if c.Contains(213, 20) || c.Contains(100, 29) {
		t.Error("outside the target must not count")
	}
}

func TestPanelIsMouseOver(t *testing.T) {
	p := NewPanel(230, nil, func() (int, int) { return 800, 600 }, nil, nil)
	if !p.IsMouseOver(10, 300) {
		t.Error("cursor inside the strip must count as over")
	}
	if !p.IsMouseOver(230, 0) {
		t.Error("strip edge is inclusive")
	}
	if p.IsMouseOver(231, 300) {
		t.Error("cursor right of the strip is not over")
	}
	if p.IsMouseOver(-1, 300) || p.IsMouseOver(10, 601) {
		t.Error("cursor outside the window is not over")
	}
}
