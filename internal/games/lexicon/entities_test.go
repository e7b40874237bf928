package lexicon

import "testing"

func TestRegistryCapacity(t *testing.T) {
	reg := NewRegistry(2)

	if _, ok := reg.Add("go", 1); !ok {
		t.Fatal("first Add failed")
	}
	if reg.Full() {
		t.Error("registry should not be full with 1/2")
	}
	if _, ok := reg.Add("go", 2); !ok {
		t.Fatal("duplicate text should be accepted")
	}
	if !reg.Full() {
		t.Error("registry should be full with 2/2")
	}
	if _, ok := reg.Add("rust", 3); ok {
		t.Error("Add beyond capacity should fail")
	}
	if reg.Len() != 2 || reg.Cap() != 2 {
		t.Errorf("Len/Cap = %d/%d", reg.Len(), reg.Cap())
	}
}

func TestRegistryIDsAreMonotonic(t *testing.T) {
	reg := NewRegistry(5)

	a, _ := reg.Add("a", 0)
	b, _ := reg.Add("b", 0)
	reg.Remove(a.ID)
	reg.Clear()
	c, _ := reg.Add("c", 0)

	if !(a.ID < b.ID && b.ID < c.ID) {
		t.Errorf("IDs not increasing: %d %d %d", a.ID, b.ID, c.ID)
	}
}

func TestRegistryRemoveKeepsOrder(t *testing.T) {
	reg := NewRegistry(5)
	reg.Add("one", 0)
	two, _ := reg.Add("two", 0)
	reg.Add("three", 0)

	if _, ok := reg.Remove(two.ID); !ok {
		t.Fatal("Remove failed")
	}
	if _, ok := reg.Remove(two.ID); ok {
		t.Error("second Remove should report false")
	}

	got := reg.Entities()
	if len(got) != 2 || got[0].Text != "one" || got[1].Text != "three" {
		t.Errorf("order after remove: %v", got)
	}
	if _, ok := reg.Get(two.ID); ok {
		t.Error("removed entity should not be found")
	}
}

func TestEntityWidthAndRemaining(t *testing.T) {
	reg := NewRegistry(1)
	e, _ := reg.Add("kernel", 0)
	if e.Width != 8 {
		t.Errorf("Width = %d, expected 8 for [kernel]", e.Width)
	}
	e.Typed = 3
	if e.Remaining() != "nel" {
		t.Errorf("Remaining() = %q", e.Remaining())
	}
}
