package mathtables

import "testing"

func TestColorByNameKnown(t *testing.T) {
	c, ok := ColorByName("black")
	if !ok {
		t.Fatal("black not found")
	}
	if c != (RGBA{0, 0, 0, 0xff}) {
		t.Errorf("black = %+v", c)
	}
}

func TestColorByNameUnknown(t *testing.T) {
	if _, ok := ColorByName("notacolor"); ok {
		t.Error("expected unknown color to miss")
	}
}

func TestHasAlpha(t *testing.T) {
	if (RGBA{0, 0, 0, 0xff}).HasAlpha() {
		t.Error("opaque color reported HasAlpha")
	}
	if !(RGBA{0, 0, 0, 0x80}).HasAlpha() {
		t.Error("translucent color reported !HasAlpha")
	}
}
