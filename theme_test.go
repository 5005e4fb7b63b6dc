package reverie

import "testing"

func TestParseColorHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ff0000", Color{1, 0, 0, 1}},
		{"#00ff00", Color{0, 1, 0, 1}},
		{"#000000", Color{0, 0, 0, 1}},
		{"white", Color{1, 1, 1, 1}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q) error: %v", tt.in, err)
			continue
		}
		if !colorsClose(got, tt.want, 1e-9) {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "not a color", "#zzz"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) succeeded, want error", in)
		}
	}
}

func TestThemeFromStrings(t *testing.T) {
	th, err := ThemeFromStrings("#d98c33", "#338099", "gold", "#ffd999")
	if err != nil {
		t.Fatalf("ThemeFromStrings error: %v", err)
	}
	if !almostEqual(th.IrisA.R, 0xd9/255.0, 1e-9) {
		t.Errorf("IrisA.R = %v, want %v", th.IrisA.R, 0xd9/255.0)
	}
	// Untouched slots keep their defaults.
	def := DefaultTheme()
	if th.Pupil != def.Pupil || th.Sclera != def.Sclera {
		t.Errorf("pupil/sclera changed: %+v", th)
	}
}

func TestThemeFromStringsPropagatesError(t *testing.T) {
	if _, err := ThemeFromStrings("#d98c33", "bogus", "gold", "#ffd999"); err == nil {
		t.Error("invalid iris color accepted")
	}
	if _, err := ThemeFromStrings("#d98c33", "#338099", "gold", "bogus"); err == nil {
		t.Error("invalid warm color accepted")
	}
}

func TestDefaultThemeOpaque(t *testing.T) {
	th := DefaultTheme()
	for name, c := range map[string]Color{
		"IrisA": th.IrisA, "IrisB": th.IrisB, "Pupil": th.Pupil,
		"Sclera": th.Sclera, "Accent": th.Accent, "Warm": th.Warm,
	} {
		if c.A != 1 {
			t.Errorf("%s alpha = %v, want 1", name, c.A)
		}
	}
}
