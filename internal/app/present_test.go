package app

import "testing"

func TestNeedsPresent(t *testing.T) {
	cases := []struct {
		name          string
		dirty         int
		hud, hudShown bool
		want          bool
	}{
		{"idle", 0, false, false, false},
		{"dirty cells", 3, false, false, true},
		{"hud visible", 0, true, true, true},
		{"hud just shown", 0, true, false, true},
		{"hud just hidden", 0, false, true, true},
	}
	for _, tc := range cases {
		if got := needsPresent(tc.dirty, tc.hud, tc.hudShown); got != tc.want {
			t.Fatalf("%s: needsPresent = %v, want %v", tc.name, got, tc.want)
		}
	}
}
