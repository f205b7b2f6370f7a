package entity

import "testing"

func TestAppendAssignsMonotonicIDs(t *testing.T) {
	s := NewStore()
	a := s.Append(Entity{Kind: Ant})
	b := s.Append(Entity{Kind: Ant})
	if a.ID != 0 || b.ID != 1 {
		t.Fatalf("expected ids 0,1, got %d,%d", a.ID, b.ID)
	}
}

func TestByID(t *testing.T) {
	s := NewStore()
	e := s.Append(Entity{Kind: Queen})
	if got := s.ByID(e.ID); got != e {
		t.Fatalf("ByID returned %+v, want %+v", got, e)
	}
	if got := s.ByID(999); got != nil {
		t.Fatalf("expected nil for missing id, got %+v", got)
	}
}

func TestRemoveSetPreservesOrder(t *testing.T) {
	s := NewStore()
	ids := make([]int, 5)
	for i := range ids {
		ids[i] = s.Append(Entity{Kind: Ant}).ID
	}
	s.RemoveSet(map[int]bool{ids[1]: true, ids[3]: true})

	all := s.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 survivors, got %d", len(all))
	}
	want := []int{ids[0], ids[2], ids[4]}
	for i, e := range all {
		if e.ID != want[i] {
			t.Fatalf("survivor order broken: got %d, want %d at index %d", e.ID, want[i], i)
		}
	}
	for _, removed := range []int{ids[1], ids[3]} {
		if s.ByID(removed) != nil {
			t.Fatalf("expected id %d to be gone after RemoveSet", removed)
		}
	}
}

func TestIsMoving(t *testing.T) {
	e := Entity{X: 10, Y: 10, TargetX: 10, TargetY: 10}
	if e.IsMoving() {
		t.Fatal("entity at its target must not report IsMoving")
	}
	e.TargetX = 20
	if !e.IsMoving() {
		t.Fatal("entity away from its target must report IsMoving")
	}
}
