package transitions

import (
	"bytes"
	"testing"

	"github.com/user/framefx/pkg/frame"
)

func solid(t *testing.T, w, h int, r, g, b, a uint8) *frame.Frame {
	t.Helper()
	f, err := frame.NewRGBA(w, h)
	if err != nil {
		t.Fatalf("NewRGBA: %v", err)
	}
	for i := 0; i < len(f.Data); i += 4 {
		f.Data[i] = r
		f.Data[i+1] = g
		f.Data[i+2] = b
		f.Data[i+3] = a
	}
	return f
}

func TestFadeEndpoints(t *testing.T) {
	a := solid(t, 8, 8, 10, 20, 30, 255)
	b := solid(t, 8, 8, 200, 100, 50, 255)
	out, _ := frame.NewRGBA(8, 8)

	if err := Fade(a, b, out, 0); err != nil {
		t.Fatalf("Fade(0): %v", err)
	}
	if !bytes.Equal(out.Data, a.Data) {
		t.Error("progress 0 should reproduce the first frame exactly")
	}

	if err := Fade(a, b, out, 1); err != nil {
		t.Fatalf("Fade(1): %v", err)
	}
	if !bytes.Equal(out.Data, b.Data) {
		t.Error("progress 1 should reproduce the second frame exactly")
	}
}

func TestFadeMidpoint(t *testing.T) {
	a := solid(t, 4, 4, 0, 0, 0, 255)
	b := solid(t, 4, 4, 200, 100, 50, 255)
	out, _ := frame.NewRGBA(4, 4)

	if err := Fade(a, b, out, 0.5); err != nil {
		t.Fatalf("Fade: %v", err)
	}
	if out.Data[0] != 100 || out.Data[1] != 50 || out.Data[2] != 25 {
		t.Errorf("midpoint pixel = [%d %d %d], want [100 50 25]",
			out.Data[0], out.Data[1], out.Data[2])
	}
}

func TestFadeClampsProgress(t *testing.T) {
	a := solid(t, 4, 4, 10, 10, 10, 255)
	b := solid(t, 4, 4, 240, 240, 240, 255)
	out, _ := frame.NewRGBA(4, 4)

	if err := Fade(a, b, out, -2); err != nil {
		t.Fatalf("Fade: %v", err)
	}
	if !bytes.Equal(out.Data, a.Data) {
		t.Error("negative progress should clamp to the first frame")
	}
	if err := Fade(a, b, out, 3); err != nil {
		t.Fatalf("Fade: %v", err)
	}
	if !bytes.Equal(out.Data, b.Data) {
		t.Error("progress above 1 should clamp to the second frame")
	}
}

func TestDissolveEndpointsAndDeterminism(t *testing.T) {
	a := solid(t, 16, 16, 10, 20, 30, 255)
	b := solid(t, 16, 16, 200, 100, 50, 255)
	out1, _ := frame.NewRGBA(16, 16)
	out2, _ := frame.NewRGBA(16, 16)

	if err := Dissolve(a, b, out1, 0); err != nil {
		t.Fatalf("Dissolve: %v", err)
	}
	if !bytes.Equal(out1.Data, a.Data) {
		t.Error("progress 0 should show only the first frame")
	}

	if err := Dissolve(a, b, out1, 1); err != nil {
		t.Fatalf("Dissolve: %v", err)
	}
	if !bytes.Equal(out1.Data, b.Data) {
		t.Error("progress 1 should show only the second frame")
	}

	if err := Dissolve(a, b, out1, 0.5); err != nil {
		t.Fatalf("Dissolve: %v", err)
	}
	if err := Dissolve(a, b, out2, 0.5); err != nil {
		t.Fatalf("Dissolve: %v", err)
	}
	if !bytes.Equal(out1.Data, out2.Data) {
		t.Error("dissolve must be deterministic for a given progress")
	}
}

func TestDissolveThreshold(t *testing.T) {
	a := solid(t, 4, 4, 1, 1, 1, 255)
	b := solid(t, 4, 4, 2, 2, 2, 255)
	out, _ := frame.NewRGBA(4, 4)

	if err := Dissolve(a, b, out, 0.5); err != nil {
		t.Fatalf("Dissolve: %v", err)
	}
	// Pixel (0,0) has threshold 0, so any positive progress switches it.
	if out.Data[0] != 2 {
		t.Errorf("pixel (0,0) = %d, want second frame", out.Data[0])
	}
	// Pixel (2,0) has threshold 0.62 > 0.5, so it stays on the first frame.
	idx := 2 * 4
	if out.Data[idx] != 1 {
		t.Errorf("pixel (2,0) = %d, want first frame", out.Data[idx])
	}
}

func TestWipeLeft(t *testing.T) {
	a := solid(t, 100, 10, 1, 1, 1, 255)
	b := solid(t, 100, 10, 2, 2, 2, 255)
	out, _ := frame.NewRGBA(100, 10)

	if err := WipeLeft(a, b, out, 0.5); err != nil {
		t.Fatalf("WipeLeft: %v", err)
	}
	for x := 0; x < 100; x++ {
		want := uint8(1)
		if x < 50 {
			want = 2
		}
		if got := out.Data[x*4]; got != want {
			t.Fatalf("column %d = %d, want %d", x, got, want)
		}
	}
}

func TestWipeRight(t *testing.T) {
	a := solid(t, 100, 10, 1, 1, 1, 255)
	b := solid(t, 100, 10, 2, 2, 2, 255)
	out, _ := frame.NewRGBA(100, 10)

	if err := WipeRight(a, b, out, 0.25); err != nil {
		t.Fatalf("WipeRight: %v", err)
	}
	for x := 0; x < 100; x++ {
		want := uint8(1)
		if x >= 75 {
			want = 2
		}
		if got := out.Data[x*4]; got != want {
			t.Fatalf("column %d = %d, want %d", x, got, want)
		}
	}
}

func TestWipeUpDown(t *testing.T) {
	a := solid(t, 10, 100, 1, 1, 1, 255)
	b := solid(t, 10, 100, 2, 2, 2, 255)
	out, _ := frame.NewRGBA(10, 100)

	if err := WipeUp(a, b, out, 0.3); err != nil {
		t.Fatalf("WipeUp: %v", err)
	}
	for y := 0; y < 100; y++ {
		want := uint8(1)
		if y >= 70 {
			want = 2
		}
		if got := out.Data[y*10*4]; got != want {
			t.Fatalf("row %d = %d, want %d", y, got, want)
		}
	}

	if err := WipeDown(a, b, out, 0.3); err != nil {
		t.Fatalf("WipeDown: %v", err)
	}
	for y := 0; y < 100; y++ {
		want := uint8(1)
		if y < 30 {
			want = 2
		}
		if got := out.Data[y*10*4]; got != want {
			t.Fatalf("row %d = %d, want %d", y, got, want)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	a := solid(t, 4, 4, 0, 0, 0, 255)
	b := solid(t, 8, 4, 0, 0, 0, 255)
	out, _ := frame.NewRGBA(4, 4)

	if err := Fade(a, b, out, 0.5); err == nil {
		t.Error("expected dimension mismatch error")
	}
	if err := Fade(nil, a, out, 0.5); err == nil {
		t.Error("expected invalid frame error for nil input")
	}
	if err := Apply(Kind(99), a, a, out, 0.5); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestParseKind(t *testing.T) {
	for k := KindFade; k <= KindWipeDown; k++ {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseKind("crossfade"); ok {
		t.Error("ParseKind should reject unknown names")
	}
}
