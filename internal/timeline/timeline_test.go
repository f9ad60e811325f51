package timeline

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"toonscroll/internal/input"
)

const script = `<?xml version="1.0"?>
<Timeline FPS="30" Duration="4">
  <Scroll At="2" Y="800"/>
  <Resize At="0" Width="1280" Height="800" PixelRatio="2"/>
  <Move At="2" X="10" Y="20"/>
  <Scroll At="0.5" Y="100"/>
</Timeline>`

func TestDecodeSortsStable(t *testing.T) {
	tl, err := Decode([]byte(script))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if tl.FPS != 30 || tl.Duration != 4 {
		t.Fatalf("FPS = %d Duration = %v", tl.FPS, tl.Duration)
	}
	want := []string{"resize 1280x800@2", "scroll 100", "scroll 800", "mousemove 10,20"}
	if len(tl.Cues) != len(want) {
		t.Fatalf("Cues = %d, want %d", len(tl.Cues), len(want))
	}
	for i, c := range tl.Cues {
		if c.Event.String() != want[i] {
			t.Fatalf("cue %d = %s, want %s", i, c.Event, want[i])
		}
	}
	if tl.Frames() != 121 {
		t.Fatalf("Frames() = %d, want 121", tl.Frames())
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name, xml, want string
	}{
		{"unknown element", `<Timeline><Zoom At="1"/></Timeline>`, "unknown element"},
		{"missing At", `<Timeline><Scroll Y="1"/></Timeline>`, "missing At"},
		{"bad number", `<Timeline><Move At="1" X="left" Y="2"/></Timeline>`, "X=\"left\""},
		{"bad fps", `<Timeline FPS="fast"/>`, "bad FPS"},
		{"wrong root", `<ItemList/>`, "Timeline"},
	}
	for _, tt := range tests {
		_, err := Decode([]byte(tt.xml))
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Fatalf("%s: Decode() error = %v, want %q", tt.name, err, tt.want)
		}
	}
}

func TestDefaultDurationAndPixelRatio(t *testing.T) {
	tl, err := Decode([]byte(`<Timeline><Resize At="1" Width="10" Height="5"/></Timeline>`))
	if err != nil {
		t.Fatal(err)
	}
	if tl.FPS != 60 || tl.Duration != 2.5 {
		t.Fatalf("FPS = %d Duration = %v, want 60 / 2.5", tl.FPS, tl.Duration)
	}
	if ev := tl.Cues[0].Event; ev.PixelRatio != 1 {
		t.Fatalf("PixelRatio = %v, want 1", ev.PixelRatio)
	}
}

func TestWriteParseRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.xml")
	src := Demo(24, 640, 400, 3, 6)
	if err := Write(path, src); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	got, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got.FPS != 24 || got.Duration != 6 || len(got.Cues) != len(src.Cues) {
		t.Fatalf("Parse() = %d fps %v s %d cues, want 24 / 6 / %d", got.FPS, got.Duration, len(got.Cues), len(src.Cues))
	}
	for i := range src.Cues {
		if got.Cues[i] != src.Cues[i] {
			t.Fatalf("cue %d = %+v, want %+v", i, got.Cues[i], src.Cues[i])
		}
	}

	if _, err := Parse(filepath.Join(t.TempDir(), "nope.xml")); err == nil || !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Parse(missing) error = %v", err)
	}
}

func TestDemoScrollsEverySection(t *testing.T) {
	tl := Demo(60, 1000, 800, 3, 8)
	if tl.Cues[0].Event.Kind != input.KindResize || tl.Cues[0].At != 0 {
		t.Fatalf("first cue = %+v, want resize at 0", tl.Cues[0])
	}
	last := -1.0
	maxScroll := 0.0
	for _, c := range tl.Cues {
		if c.At < last {
			t.Fatalf("cues not sorted at %v", c.At)
		}
		last = c.At
		if c.Event.Kind == input.KindScroll && c.Event.ScrollY > maxScroll {
			maxScroll = c.Event.ScrollY
		}
	}
	if maxScroll != 1600 {
		t.Fatalf("max scroll = %v, want 1600", maxScroll)
	}
}

func TestPlayer(t *testing.T) {
	tl, err := Decode([]byte(script))
	if err != nil {
		t.Fatal(err)
	}
	p := NewPlayer(tl)
	if got := p.Until(0); len(got) != 1 || got[0].Kind != input.KindResize {
		t.Fatalf("Until(0) = %v", got)
	}
	if got := p.Until(1); len(got) != 1 {
		t.Fatalf("Until(1) = %v", got)
	}
	if got := p.Until(1.5); len(got) != 0 {
		t.Fatalf("Until(1.5) = %v, want none", got)
	}
	if got := p.Until(10); len(got) != 2 || !p.Done() {
		t.Fatalf("Until(10) = %v Done() = %v", got, p.Done())
	}
}
