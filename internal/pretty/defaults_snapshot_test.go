package pretty

import "testing"

func TestDefaultOptions_Stable(t *testing.T) {
	d := DefaultOptions
	if d.CaretGlyph == "" || d.Separator == "" {
		t.Fatalf("glyphs must be non-empty")
	}
	// Spot checks of current defaults (don’t lock everything, just the external look)
	if d.CaretGlyph != "^" || d.Separator != " " || !d.ShowCaret || d.MaxUnits != 30 {
		t.Fatalf("DefaultOptions visual defaults changed")
	}
}
