package effects

import (
	"math"
	"reflect"
	"testing"

	"github.com/john-paul-ruf/my-nft-mystic-effects-plugin-pack-sub001/pkg/render"
)

const testFrames = 120

func TestTreeOfLife_DefaultConfigResolves(t *testing.T) {
	e, err := NewTreeOfLife(nil, 42)
	if err != nil {
		t.Fatalf("NewTreeOfLife: %v", err)
	}
	if e.Name() != "tree_of_life" {
		t.Errorf("Name() = %q, want tree_of_life", e.Name())
	}
	if !e.glowEnabled {
		t.Errorf("default config should enable the glow engine")
	}
}

func TestTreeOfLife_AllFramesDraw(t *testing.T) {
	e, err := NewTreeOfLife(nil, 42)
	if err != nil {
		t.Fatalf("NewTreeOfLife: %v", err)
	}
	for frame := 0; frame < testFrames; frame++ {
		r := render.NewRecorder(512, 512)
		if err := e.Invoke(r, frame, testFrames); err != nil {
			t.Fatalf("Invoke(frame %d): %v", frame, err)
		}
	}

	// Mid-animation the full tree is visible: all 10 nodes and 22 paths.
	r := render.NewRecorder(512, 512)
	if err := e.Invoke(r, testFrames/2, testFrames); err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	fills := 0
	for _, c := range r.Calls {
		if c.Op == "fillCircle" {
			fills++
		}
	}
	if fills != len(sephirot) {
		t.Errorf("mid-animation fillCircle count = %d, want %d", fills, len(sephirot))
	}
}

func TestTreeOfLife_InvokeIsPure(t *testing.T) {
	e, err := NewTreeOfLife(nil, 7)
	if err != nil {
		t.Fatalf("NewTreeOfLife: %v", err)
	}
	for _, frame := range []int{0, 17, testFrames / 2, testFrames - 1} {
		a := render.NewRecorder(512, 512)
		b := render.NewRecorder(512, 512)
		if err := e.Invoke(a, frame, testFrames); err != nil {
			t.Fatalf("Invoke(frame %d): %v", frame, err)
		}
		if err := e.Invoke(b, frame, testFrames); err != nil {
			t.Fatalf("Invoke(frame %d): %v", frame, err)
		}
		if !reflect.DeepEqual(a.Calls, b.Calls) {
			t.Errorf("frame %d: repeated invocations diverged", frame)
		}
	}
}

func TestTreeOfLife_SameSeedSameFrames(t *testing.T) {
	// Reconstruction with the same seed must reproduce the animation
	// exactly, so workers can each build their own instance.
	e1, err := NewTreeOfLife(nil, 99)
	if err != nil {
		t.Fatalf("NewTreeOfLife: %v", err)
	}
	e2, err := NewTreeOfLife(nil, 99)
	if err != nil {
		t.Fatalf("NewTreeOfLife: %v", err)
	}
	for frame := 0; frame < testFrames; frame += 7 {
		a := render.NewRecorder(512, 512)
		b := render.NewRecorder(512, 512)
		e1.Invoke(a, frame, testFrames)
		e2.Invoke(b, frame, testFrames)
		if !reflect.DeepEqual(a.Calls, b.Calls) {
			t.Fatalf("frame %d: two instances with seed 99 diverged", frame)
		}
	}
}

func TestTreeOfLife_LoopCloses(t *testing.T) {
	e, err := NewTreeOfLife(nil, 42)
	if err != nil {
		t.Fatalf("NewTreeOfLife: %v", err)
	}

	// Every synthesized parameter must land on its frame-0 value at the
	// final frame, or the host's loop seams.
	_, _, first := frameState(e.resolved, 0, testFrames)
	_, _, last := frameState(e.resolved, testFrames-1, testFrames)
	for name, v0 := range first.Values {
		v1, ok := last.Values[name]
		if !ok {
			t.Errorf("param %q present at frame 0 but not at the last frame", name)
			continue
		}
		if math.Abs(v1-v0) > 1e-9 {
			t.Errorf("param %q: frame 0 value %v, last frame value %v", name, v0, v1)
		}
	}

	a := render.NewRecorder(512, 512)
	b := render.NewRecorder(512, 512)
	e.Invoke(a, 0, testFrames)
	e.Invoke(b, testFrames-1, testFrames)
	if !callsClose(a.Calls, b.Calls, 1e-6) {
		t.Errorf("frame 0 and final frame draw calls differ; loop does not close")
	}
}

func TestTreeOfLife_GlowDisabledWithoutColors(t *testing.T) {
	raw := DefaultTreeOfLifeConfig()
	delete(raw, "glowColor")
	delete(raw, "accentColor")

	e, err := NewTreeOfLife(raw, 42)
	if err != nil {
		t.Fatalf("NewTreeOfLife: %v", err)
	}
	if e.glowEnabled {
		t.Fatalf("glow should be disabled when no glow or accent color resolves")
	}

	r := render.NewRecorder(512, 512)
	if err := e.Invoke(r, testFrames/2, testFrames); err != nil {
		t.Fatalf("Invoke without glow: %v", err)
	}
	for _, c := range r.Calls {
		if c.Op == "strokeCircle" && c.Color == "#fff4d6" {
			t.Fatalf("aura ring drawn with glow disabled")
		}
	}
}

func TestTreeOfLife_RevealLimitsDrawnNodes(t *testing.T) {
	e, err := NewTreeOfLife(nil, 42)
	if err != nil {
		t.Fatalf("NewTreeOfLife: %v", err)
	}

	// Early in the awakening phase only part of the tree is revealed.
	early := render.NewRecorder(512, 512)
	mid := render.NewRecorder(512, 512)
	e.Invoke(early, 6, testFrames)
	e.Invoke(mid, testFrames/2, testFrames)
	if len(early.Calls) >= len(mid.Calls) {
		t.Errorf("early frame drew %d calls, mid frame %d; reveal should stage the tree in",
			len(early.Calls), len(mid.Calls))
	}
}

func TestTreeOfLife_RejectsBrokenConfig(t *testing.T) {
	raw := DefaultTreeOfLifeConfig()
	raw["awakeningPulseSpeed_end"] = 2.5

	if _, err := NewTreeOfLife(raw, 42); err == nil {
		t.Fatalf("fractional speed endpoint accepted; want resolve error")
	}
}

// callsClose compares two draw call lists allowing small float drift in
// the arguments.
func callsClose(a, b []render.Call, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Op != b[i].Op || a[i].Color != b[i].Color {
			return false
		}
		if math.Abs(a[i].Alpha-b[i].Alpha) > tol {
			return false
		}
		if len(a[i].Args) != len(b[i].Args) {
			return false
		}
		for j := range a[i].Args {
			if math.Abs(a[i].Args[j]-b[i].Args[j]) > tol {
				return false
			}
		}
	}
	return true
}

func TestActivationRanks_CoverAllNodes(t *testing.T) {
	raw := DefaultTreeOfLifeConfig()
	for _, id := range sephirotIDs() {
		if _, ok := raw["awakening"+upperFirst(id)+"Rank"]; !ok {
			t.Errorf("awakening rank missing for %q", id)
		}
		if _, ok := raw["descent"+upperFirst(id)+"Rank"]; !ok {
			t.Errorf("descent rank missing for %q", id)
		}
	}
}
