package coloretto

// Stack is a bounded, ordered pile of cards in play. Capacity is fixed at
// construction; the engine, not the stack, rejects pushes past capacity.
type Stack struct {
	Cards    []Card `json:"cards"`
	Capacity int    `json:"capacity"`
}

func NewStack(capacity int) Stack {
	return Stack{
		Cards:    make([]Card, 0, capacity),
		Capacity: capacity,
	}
}

func (s *Stack) Push(card Card) {
	s.Cards = append(s.Cards, card)
}

func (s *Stack) Clear() {
	s.Cards = s.Cards[:0]
}

func (s *Stack) IsEmpty() bool {
	return len(s.Cards) == 0
}

func (s *Stack) IsFull() bool {
	return len(s.Cards) >= s.Capacity
}

func (s *Stack) HasGold() bool {
	for _, card := range s.Cards {
		if card == Gold {
			return true
		}
	}
	return false
}

// stackLess is the canonical total order used to sort stacks back into a
// deterministic layout after round end: lexicographic on cards, then capacity.
func stackLess(a, b Stack) bool {
	n := len(a.Cards)
	if len(b.Cards) < n {
		n = len(b.Cards)
	}
	for i := 0; i < n; i++ {
		if a.Cards[i] != b.Cards[i] {
			return a.Cards[i] < b.Cards[i]
		}
	}
	if len(a.Cards) != len(b.Cards) {
		return len(a.Cards) < len(b.Cards)
	}
	return a.Capacity < b.Capacity
}
