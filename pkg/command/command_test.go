package command

import "testing"

func TestNewSortsAndDedupsEntityIDs(t *testing.T) {
	c := New(Move, 0, 5, []int{3, 1, 3, 2}, 0, 0, None)
	want := []int{1, 2, 3}
	if len(c.EntityIDs) != len(want) {
		t.Fatalf("got %v, want %v", c.EntityIDs, want)
	}
	for i, id := range want {
		if c.EntityIDs[i] != id {
			t.Fatalf("got %v, want %v", c.EntityIDs, want)
		}
	}
}

func TestEqualIgnoresEntityIDOrderAtConstruction(t *testing.T) {
	a := New(Attack, 1, 2, []int{5, 4}, 10, 20, 99)
	b := New(Attack, 1, 2, []int{4, 5}, 10, 20, 99)
	if !a.Equal(b) {
		t.Fatalf("expected equal commands, got %+v vs %+v", a, b)
	}
}

func TestEqualDetectsDifference(t *testing.T) {
	a := New(Move, 0, 1, []int{1}, 0, 0, None)
	b := New(Move, 0, 2, []int{1}, 0, 0, None)
	if a.Equal(b) {
		t.Fatal("expected commands differing only by Tick to not be equal")
	}
}

func TestSortCanonicalOrdersByPlayerThenKindThenTick(t *testing.T) {
	cmds := []Command{
		New(Stop, 1, 0, nil, 0, 0, None),
		New(Move, 0, 5, nil, 0, 0, None),
		New(Move, 0, 1, nil, 0, 0, None),
		New(Attack, 0, 1, nil, 0, 0, None),
	}
	SortCanonical(cmds)

	for i := 1; i < len(cmds); i++ {
		if Less(cmds[i], cmds[i-1]) {
			t.Fatalf("canonical order violated at index %d: %+v before %+v", i, cmds[i-1], cmds[i])
		}
	}
	if cmds[0].Player != 0 || cmds[len(cmds)-1].Player != 1 {
		t.Fatalf("expected player 0's commands before player 1's: %+v", cmds)
	}
}
