package scene

import "testing"

func TestParseFont(t *testing.T) {
	tests := []struct {
		desc string
		want FontSpec
	}{
		{"SansSerif-12", FontSpec{Family: "SansSerif", Size: 12}},
		{"Helvetica-Bold-14", FontSpec{Family: "Helvetica", Bold: true, Size: 14}},
		{"Serif-Italic-9", FontSpec{Family: "Serif", Italic: true, Size: 9}},
		{"Serif-BoldItalic-18", FontSpec{Family: "Serif", Bold: true, Italic: true, Size: 18}},
		{"Monospaced", FontSpec{Family: "Monospaced", Size: 12}},
		{"Courier-24", FontSpec{Family: "Courier", Size: 24}},
		{"Times-Plain-10", FontSpec{Family: "Times", Size: 10}},
		{"Sans-Serif-12", FontSpec{Family: "Sans-Serif", Size: 12}},
		{"", FontSpec{Family: "SansSerif", Size: 12}},
		{"Helvetica-10.5", FontSpec{Family: "Helvetica", Size: 10.5}},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := ParseFont(tt.desc); got != tt.want {
				t.Errorf("ParseFont(%q) = %+v, want %+v", tt.desc, got, tt.want)
			}
		})
	}
}

func TestFontSpecString(t *testing.T) {
	tests := []struct {
		spec FontSpec
		want string
	}{
		{FontSpec{Family: "SansSerif", Size: 12}, "SansSerif-12"},
		{FontSpec{Family: "Serif", Bold: true, Size: 14}, "Serif-Bold-14"},
		{FontSpec{Family: "Serif", Bold: true, Italic: true, Size: 9}, "Serif-BoldItalic-9"},
	}
	for _, tt := range tests {
		if got := tt.spec.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseFontRoundTrip(t *testing.T) {
	for _, desc := range []string{"SansSerif-12", "Serif-Bold-14", "Courier-Italic-10"} {
		spec := ParseFont(desc)
		if got := ParseFont(spec.String()); got != spec {
			t.Errorf("round trip of %q: %+v != %+v", desc, got, spec)
		}
	}
}
