package randsrc

import "testing"

func TestSequenceReplaysAndWraps(t *testing.T) {
	s := &Sequence{Floats: []float64{0.1, 0.9}, Ints: []int{3, 7}}

	want := []float64{0.1, 0.9, 0.1}
	for i, w := range want {
		if got := s.Float64(); got != w {
			t.Errorf("Float64 #%d: expected %v, got %v", i, w, got)
		}
	}

	if got := s.Intn(5); got != 3 {
		t.Errorf("Expected 3, got %d", got)
	}
	if got := s.Intn(5); got != 2 {
		t.Errorf("Expected 7 clamped to 2, got %d", got)
	}
}

func TestEmptySequenceYieldsZero(t *testing.T) {
	s := &Sequence{}
	if s.Float64() != 0 || s.Intn(4) != 0 {
		t.Error("Expected zero values from an empty sequence")
	}
}

func TestNewIsDeterministicForSeed(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 5; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("Expected identical streams for identical seeds")
		}
	}
}
