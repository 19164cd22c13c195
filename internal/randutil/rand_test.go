package randutil

import "testing"

func TestNewIsDeterministic(t *testing.T) {
	t.Parallel()

	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Uint64(), b.Uint64(); x != y {
			t.Fatalf("draw %d differs: %d != %d", i, x, y)
		}
	}
}

func TestNeighbouringSeedsDiffer(t *testing.T) {
	t.Parallel()

	if New(1).Uint64() == New(2).Uint64() {
		t.Error("Expected seeds 1 and 2 to produce different streams")
	}
}

func TestForkIsIndependentAndReproducible(t *testing.T) {
	t.Parallel()

	parent1, parent2 := New(7), New(7)
	child1, child2 := Fork(parent1), Fork(parent2)
	if child1.Uint64() != child2.Uint64() {
		t.Error("Expected forks of equal parents to match")
	}
	if parent1.Uint64() == child1.Uint64() {
		t.Error("Expected fork to draw a different stream than its parent")
	}
}

func TestFreshSeedIsNonNegative(t *testing.T) {
	t.Parallel()

	for i := 0; i < 10; i++ {
		if s := FreshSeed(); s < 0 {
			t.Fatalf("FreshSeed() = %d, want non-negative", s)
		}
	}
}
