package dragon

import "testing"

func TestColorLerp(t *testing.T) {
	start := RGB(0, 10, 255)
	end := RGB(255, 10, 0)

	diff(t, start, start.Lerp(end, 0), cmpColors()...)
	diff(t, end, start.Lerp(end, 1), cmpColors()...)
	diff(t, RGB(127.5, 10, 127.5), start.Lerp(end, 0.5), cmpColors()...)
	diff(t, RGB(63.75, 10, 191.25), start.Lerp(end, 0.25), cmpColors()...)
}

func TestColorHex(t *testing.T) {
	for _, tt := range []struct {
		in   Color
		want string
	}{
		{RGB(0, 0, 0), "#000000"},
		{RGB(255, 255, 255), "#ffffff"},
		{RGB(0x11, 0x22, 0x44), "#112244"},
		{RGB(127.6, 0, 0), "#800000"},
		{RGB(-10, 300, 128), "#00ff80"},
	} {
		if got := tt.in.Hex(); got != tt.want {
			t.Errorf("got %q, expected %q", got, tt.want)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#112244")
	if err != nil {
		t.Fatal(err)
	}
	diff(t, RGB(0x11, 0x22, 0x44), c, cmpColors()...)

	if got := c.Hex(); got != "#112244" {
		t.Errorf("got %q after round trip, expected %q", got, "#112244")
	}

	for _, in := range []string{"", "112244", "#11224", "#1122445", "#11224g"} {
		if _, err := ParseHexColor(in); err == nil {
			t.Errorf("ParseHexColor(%q): expected an error", in)
		}
	}
}
