package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadFontWithSize(t *testing.T) {
	if err := LoadFontWithSize(Trace, goregular.TTF, 14); err != nil {
		t.Fatalf("Expected Go font to load, got %v", err)
	}
	if Trace.Get() == nil {
		t.Error("Expected a face for the trace font")
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFont("broken", []byte("not a font")); err == nil {
		t.Error("Expected an error for invalid font data")
	}
}

func TestGetMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for an unloaded font")
		}
	}()
	FontName("missing").Get()
}
