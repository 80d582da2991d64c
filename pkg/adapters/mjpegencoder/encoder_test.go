package mjpegencoder

import (
	"bytes"
	"testing"

	"github.com/user/framefx/pkg/frame"
)

func testFrame(t *testing.T, w, h int, v uint8) *frame.Frame {
	t.Helper()
	f, err := frame.NewRGBA(w, h)
	if err != nil {
		t.Fatalf("NewRGBA: %v", err)
	}
	for i := 0; i < len(f.Data); i += 4 {
		f.Data[i] = v
		f.Data[i+1] = v / 2
		f.Data[i+2] = 255 - v
		f.Data[i+3] = 255
	}
	return f
}

func TestEncoderLifecycle(t *testing.T) {
	e := New(80)

	if err := e.AddFrame(testFrame(t, 64, 48, 100)); err == nil {
		t.Error("AddFrame before Start should fail")
	}

	if err := e.Start(64, 48, 30); err != nil {
		t.Fatalf("Start: %v", err)
	}
	for i := 0; i < 5; i++ {
		if err := e.AddFrame(testFrame(t, 64, 48, uint8(i*40))); err != nil {
			t.Fatalf("AddFrame %d: %v", i, err)
		}
	}

	data, err := e.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty MP4 data")
	}
	// The container starts with an ftyp box.
	if !bytes.Equal(data[4:8], []byte("ftyp")) {
		t.Errorf("expected ftyp box at start, got %q", data[4:8])
	}
	// JPEG SOI markers should appear in the mdat payload.
	if !bytes.Contains(data, []byte{0xFF, 0xD8, 0xFF}) {
		t.Error("expected JPEG data inside the container")
	}
}

func TestEncoderValidation(t *testing.T) {
	e := New(0) // out of range, falls back to default
	if e.quality != DefaultQuality {
		t.Errorf("quality = %d, want %d", e.quality, DefaultQuality)
	}

	if err := e.Start(0, 48, 30); err == nil {
		t.Error("Start with zero width should fail")
	}
	if err := e.Start(64, 48, 0); err == nil {
		t.Error("Start with zero fps should fail")
	}

	if err := e.Start(64, 48, 30); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := e.AddFrame(testFrame(t, 32, 32, 0)); err == nil {
		t.Error("AddFrame with mismatched dimensions should fail")
	}
	if _, err := e.Finish(); err == nil {
		t.Error("Finish with no frames should fail")
	}
}

func TestEncoderCancel(t *testing.T) {
	e := New(80)
	if err := e.Start(64, 48, 30); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := e.AddFrame(testFrame(t, 64, 48, 10)); err != nil {
		t.Fatalf("AddFrame: %v", err)
	}
	e.Cancel()

	if _, err := e.Finish(); err == nil {
		t.Error("Finish after Cancel should fail")
	}
}
