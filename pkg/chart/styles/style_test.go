package styles

import (
	"bytes"
	"strings"
	"testing"

	"github.com/labelplot/labelplot/pkg/errors"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"", StyleDefault, false},
		{"default", StyleDefault, false},
		{"dark", StyleDark, false},
		{"neon", "", true},
	}

	for _, tt := range tests {
		s, err := Get(tt.name)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Get(%q): expected error", tt.name)
			} else if errors.GetCode(err) != errors.ErrCodeInvalidStyle {
				t.Errorf("Get(%q) code = %q", tt.name, errors.GetCode(err))
			}
			continue
		}
		if err != nil {
			t.Errorf("Get(%q): %v", tt.name, err)
			continue
		}
		if s.Name() != tt.want {
			t.Errorf("Get(%q).Name() = %q, want %q", tt.name, s.Name(), tt.want)
		}
	}
}

func TestNamesCoverRegistry(t *testing.T) {
	for _, name := range Names() {
		if _, err := Get(name); err != nil {
			t.Errorf("registered style %q not gettable: %v", name, err)
		}
	}
}

func TestRenderLabelEscapes(t *testing.T) {
	for _, s := range []Style{Default{}, Dark{}} {
		var buf bytes.Buffer
		s.RenderLabel(&buf, Label{X: 10, Y: 10, Width: 40, Height: 18, Text: `<b>&"x"`})
		out := buf.String()
		if strings.Contains(out, "<b>") {
			t.Errorf("%s: label text not escaped: %s", s.Name(), out)
		}
		if !strings.Contains(out, "&lt;b&gt;&amp;") {
			t.Errorf("%s: expected escaped entities in %s", s.Name(), out)
		}
	}
}

func TestRenderTitleRotation(t *testing.T) {
	var buf bytes.Buffer
	Default{}.RenderTitle(&buf, Title{X: 30, Y: 400, Text: "Quality Tier", Size: 14, Rotate: true})
	if !strings.Contains(buf.String(), "rotate(-90") {
		t.Error("rotated title missing transform")
	}

	buf.Reset()
	Default{}.RenderTitle(&buf, Title{X: 600, Y: 40, Text: "Speed", Size: 20})
	if strings.Contains(buf.String(), "rotate") {
		t.Error("horizontal title should not rotate")
	}
}
