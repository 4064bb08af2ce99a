package coloretto

import (
	"encoding/json"
	"fmt"
)

type ActionKind int

const (
	Flip ActionKind = iota
	Place
	Take
)

// Action is one player move. Place and Take carry a zero-based stack index.
// The wire form is a tagged value: "flip", {"place":i} or {"take":i}.
type Action struct {
	Kind  ActionKind
	Index int
}

func FlipAction() Action {
	return Action{Kind: Flip}
}

func PlaceAction(index int) Action {
	return Action{Kind: Place, Index: index}
}

func TakeAction(index int) Action {
	return Action{Kind: Take, Index: index}
}

func (a Action) String() string {
	switch a.Kind {
	case Flip:
		return "flip"
	case Place:
		return fmt.Sprintf("place %d", a.Index)
	case Take:
		return fmt.Sprintf("take %d", a.Index)
	}
	return fmt.Sprintf("action(%d)", int(a.Kind))
}

func (a Action) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case Flip:
		return json.Marshal("flip")
	case Place:
		return json.Marshal(map[string]int{"place": a.Index})
	case Take:
		return json.Marshal(map[string]int{"take": a.Index})
	}
	return nil, fmt.Errorf("unknown action kind: %d", int(a.Kind))
}

func (a *Action) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		if tag != "flip" {
			return fmt.Errorf("unknown action: %q", tag)
		}
		*a = FlipAction()
		return nil
	}

	var tagged map[string]int
	if err := json.Unmarshal(data, &tagged); err != nil {
		return err
	}
	if len(tagged) != 1 {
		return fmt.Errorf("malformed action: %s", data)
	}
	for tag, index := range tagged {
		switch tag {
		case "place":
			*a = PlaceAction(index)
		case "take":
			*a = TakeAction(index)
		default:
			return fmt.Errorf("unknown action: %q", tag)
		}
	}
	return nil
}
