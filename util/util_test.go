package util

import "testing"

func TestCoalesce(t *testing.T) {
	if got := Coalesce("", "fallback", "later"); got != "fallback" {
		t.Errorf("got %q", got)
	}
	if got := Coalesce(0, 0); got != 0 {
		t.Errorf("got %d", got)
	}
}

func TestContains(t *testing.T) {
	if !Contains([]int{1, 2, 3}, 2) {
		t.Error("expected true")
	}
	if Contains([]int{1, 2, 3}, 4) {
		t.Error("expected false")
	}
}

func TestMap(t *testing.T) {
	doubled := Map([]int{1, 2, 3}, func(n int) int { return n * 2 })
	if len(doubled) != 3 || doubled[2] != 6 {
		t.Errorf("got %v", doubled)
	}
}
