package core

import "testing"

func TestSizeIndexRoundTrip(t *testing.T) {
	s := Size{W: 4, H: 3}
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			if p := s.Point(s.Index(x, y)); p != (Point{X: x, Y: y}) {
				t.Fatalf("round trip of (%d,%d) gave %v", x, y, p)
			}
		}
	}
}

func TestSizeIndexPanicsOutside(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Index(4,0) did not panic")
		}
	}()
	Size{W: 4, H: 3}.Index(4, 0)
}

func TestSizeClamp(t *testing.T) {
	if got := (Size{W: 0, H: -3}).Clamp(); got != (Size{W: 1, H: 1}) {
		t.Fatalf("Clamp gave %v", got)
	}
}
