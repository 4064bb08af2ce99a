package coloretto

// Player holds a seat's permanent collection and, between a take and the next
// round-end, the single stack claimed this round.
type Player struct {
	Cards []Card `json:"cards"`
	Stack *Stack `json:"stack"`
}

func NewPlayer() Player {
	return Player{
		Cards: make([]Card, 0),
	}
}

func (p *Player) InsertStack(stack Stack) {
	p.Stack = &stack
}

// CollectStack merges the claimed stack's cards into the collection and
// returns the emptied stack shell for reuse in the next round.
func (p *Player) CollectStack() (Stack, error) {
	if p.Stack == nil {
		return Stack{}, ErrNoStack
	}
	p.Cards = append(p.Cards, p.Stack.Cards...)
	stack := *p.Stack
	stack.Clear()
	p.Stack = nil
	return stack, nil
}

func (p *Player) HasStack() bool {
	return p.Stack != nil
}
