package lighting

import (
	"testing"

	"github.com/Faultbox/poslight/pkg/math"
)

func TestAddAndClear(t *testing.T) {
	b := NewBuffer()
	for i := 0; i < MaxLights; i++ {
		if !b.Add(Light{}) {
			t.Fatalf("add %d should succeed", i)
		}
	}
	if b.Add(Light{}) {
		t.Error("add past MaxLights should fail")
	}
	if b.Count != MaxLights {
		t.Errorf("expected count %d, got %d", MaxLights, b.Count)
	}

	b.Clear()
	if b.Count != 0 || len(b.Lights) != 0 {
		t.Errorf("expected empty buffer after Clear, got count %d len %d", b.Count, len(b.Lights))
	}
}

func TestAddWorld(t *testing.T) {
	b := NewBuffer()
	view := math.LookAt(math.Vec3{Z: 4}, math.Vec3{}, math.Vec3{Y: 1})
	b.AddWorld(view, math.Vec3{Y: 1})

	got := b.Lights[0].Position
	want := math.Vec4{0, 1, -4, 1}
	for i := range want {
		if d := got[i] - want[i]; d > 1e-6 || d < -1e-6 {
			t.Fatalf("view-space light: got %v, want %v", got, want)
		}
	}
}

func TestPositions(t *testing.T) {
	b := NewBuffer()
	b.Add(Light{Position: math.Vec4{1, 2, 3, 1}})

	flat := b.Positions()
	if len(flat) != MaxLights*4 {
		t.Fatalf("expected %d floats, got %d", MaxLights*4, len(flat))
	}
	if flat[0] != 1 || flat[1] != 2 || flat[2] != 3 || flat[3] != 1 {
		t.Errorf("first light: got %v", flat[:4])
	}
	for _, f := range flat[4:] {
		if f != 0 {
			t.Fatal("unused slots should be zero")
		}
	}
}
