package physics

import (
	"testing"
)

func newTestWorld() *World {
	w := NewWorld(DefaultConfig())
	w.Reset(80, 20)
	return w
}

func TestAddBoxMovesWithVelocity(t *testing.T) {
	w := newTestWorld()
	id := w.AddBox(BoxSpec{X: 40, Y: 10, W: 6, H: 1, VX: 5, VY: 0})
	if id == 0 {
		t.Fatal("AddBox returned zero ID on a reset world")
	}

	before, _ := w.Body(id)
	for i := 0; i < 30; i++ {
		w.Step(1.0 / 60)
	}
	after, ok := w.Body(id)
	if !ok {
		t.Fatal("body disappeared")
	}
	if after.X <= before.X {
		t.Errorf("body should drift right, x went %.2f -> %.2f", before.X, after.X)
	}
}

func TestAddBoxBeforeResetIsRejected(t *testing.T) {
	w := NewWorld(DefaultConfig())
	if id := w.AddBox(BoxSpec{X: 1, Y: 1, W: 1, H: 1}); id != 0 {
		t.Errorf("AddBox without Reset should return 0, got %d", id)
	}
}

func TestRemove(t *testing.T) {
	w := newTestWorld()
	a := w.AddBox(BoxSpec{X: 10, Y: 5, W: 4, H: 1})
	b := w.AddBox(BoxSpec{X: 30, Y: 5, W: 4, H: 1})

	if !w.Remove(a) {
		t.Fatal("Remove should succeed for a live body")
	}
	if w.Remove(a) {
		t.Error("second Remove of the same body should report false")
	}
	if w.Count() != 1 {
		t.Errorf("Count() = %d, expected 1", w.Count())
	}
	if _, ok := w.Body(b); !ok {
		t.Error("removing one body must not affect another")
	}
}

func TestStopIsIdempotentAndFreezes(t *testing.T) {
	w := newTestWorld()
	id := w.AddBox(BoxSpec{X: 40, Y: 10, W: 4, H: 1, VX: 8})

	if !w.Stop() {
		t.Fatal("first Stop should report true")
	}
	if w.Stop() {
		t.Error("second Stop should report false")
	}

	before, _ := w.Body(id)
	w.Step(1.0 / 60)
	after, _ := w.Body(id)
	if before != after {
		t.Error("Step after Stop must not move bodies")
	}
}

func TestBodiesStayInsideWalls(t *testing.T) {
	w := newTestWorld()
	ids := []BodyID{
		w.AddBox(BoxSpec{X: 5, Y: 5, W: 6, H: 1, VX: -20, VY: -15, AngularVelocity: 0.5}),
		w.AddBox(BoxSpec{X: 70, Y: 15, W: 8, H: 1, VX: 25, VY: 18}),
	}

	for i := 0; i < 600; i++ {
		w.Step(1.0 / 60)
	}

	for _, id := range ids {
		s, _ := w.Body(id)
		if s.X < 0 || s.X > 80 || s.Y < 0 || s.Y > 20 {
			t.Errorf("body %d escaped the play field: (%.2f, %.2f)", id, s.X, s.Y)
		}
	}
}

func TestSetBoundsPullsBodiesInside(t *testing.T) {
	w := newTestWorld()
	id := w.AddBox(BoxSpec{X: 70, Y: 15, W: 6, H: 1})

	w.SetBounds(40, 10)

	s, _ := w.Body(id)
	if s.X > 40-3 || s.Y > 10-0.5 {
		t.Errorf("body should be inside the shrunken field, got (%.2f, %.2f)", s.X, s.Y)
	}
	if bw, bh := w.Bounds(); bw != 40 || bh != 10 {
		t.Errorf("Bounds() = %vx%v, expected 40x10", bw, bh)
	}
}

func TestResetClearsBodies(t *testing.T) {
	w := newTestWorld()
	w.AddBox(BoxSpec{X: 10, Y: 5, W: 4, H: 1})
	w.Stop()

	w.Reset(80, 20)

	if w.Count() != 0 {
		t.Errorf("Reset should clear bodies, Count() = %d", w.Count())
	}
	if !w.Running() {
		t.Error("Reset should restart the simulation")
	}
}
