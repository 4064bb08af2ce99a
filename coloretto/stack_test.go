package coloretto

import (
	"sort"
	"testing"
)

func TestStackCapacity(t *testing.T) {
	stack := NewStack(2)

	if !stack.IsEmpty() {
		t.Error("New stack should be empty")
	}
	if stack.IsFull() {
		t.Error("New stack should not be full")
	}

	stack.Push(Red)
	if stack.IsEmpty() || stack.IsFull() {
		t.Error("Stack with 1 of 2 cards should be neither empty nor full")
	}

	stack.Push(Blue)
	if !stack.IsFull() {
		t.Error("Stack at capacity should be full")
	}
}

func TestStackHasGold(t *testing.T) {
	stack := NewStack(3)
	stack.Push(Red)
	if stack.HasGold() {
		t.Error("Stack without gold should not report gold")
	}

	stack.Push(Gold)
	stack.Push(Blue)
	if !stack.HasGold() {
		t.Error("Stack with gold anywhere in it should report gold")
	}
}

func TestStackClear(t *testing.T) {
	stack := NewStack(3)
	stack.Push(Gold)
	stack.Clear()

	if !stack.IsEmpty() {
		t.Error("Cleared stack should be empty")
	}
	if stack.HasGold() {
		t.Error("Cleared stack should not report gold")
	}
	if stack.Capacity != 3 {
		t.Errorf("Clear should keep capacity, got %d", stack.Capacity)
	}
}

// The canonical order must be stable and deterministic so round-end layouts
// are reproducible: cards lexicographically, then capacity.
func TestStackOrdering(t *testing.T) {
	a := NewStack(3)
	a.Push(Red)

	b := NewStack(3)
	b.Push(Blue)

	empty1 := NewStack(1)
	empty3 := NewStack(3)

	stacks := []Stack{b, empty3, a, empty1}
	sort.SliceStable(stacks, func(i, j int) bool {
		return stackLess(stacks[i], stacks[j])
	})

	if stacks[0].Capacity != 1 || len(stacks[0].Cards) != 0 {
		t.Errorf("Expected the empty capacity-1 stack first, got %+v", stacks[0])
	}
	if stacks[1].Capacity != 3 || len(stacks[1].Cards) != 0 {
		t.Errorf("Expected the empty capacity-3 stack second, got %+v", stacks[1])
	}
	if len(stacks[2].Cards) != 1 || stacks[2].Cards[0] != Red {
		t.Errorf("Expected the red stack third, got %+v", stacks[2])
	}
	if len(stacks[3].Cards) != 1 || stacks[3].Cards[0] != Blue {
		t.Errorf("Expected the blue stack last, got %+v", stacks[3])
	}
}
