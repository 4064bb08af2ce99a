package coloretto

import (
	"encoding/json"
	"fmt"
)

// Card is one of the fixed card kinds in the game. The seven colors are the
// collectible kinds; Rainbow, Gold and Points are the specials.
type Card int

const (
	Red Card = iota
	Orange
	Yellow
	Green
	Blue
	Purple
	Brown
	Rainbow
	Gold
	Points
)

var colors = [7]Card{Red, Orange, Yellow, Green, Blue, Purple, Brown}

var specials = [3]Card{Rainbow, Gold, Points}

var cardNames = map[Card]string{
	Red:     "red",
	Orange:  "orange",
	Yellow:  "yellow",
	Green:   "green",
	Blue:    "blue",
	Purple:  "purple",
	Brown:   "brown",
	Rainbow: "rainbow",
	Gold:    "gold",
	Points:  "points",
}

var cardValues = map[string]Card{
	"red":     Red,
	"orange":  Orange,
	"yellow":  Yellow,
	"green":   Green,
	"blue":    Blue,
	"purple":  Purple,
	"brown":   Brown,
	"rainbow": Rainbow,
	"gold":    Gold,
	"points":  Points,
}

// Amount is how many copies of the card a full deck contains.
func (c Card) Amount() int {
	switch c {
	case Rainbow:
		return 2
	case Gold:
		return 1
	case Points:
		return 10
	default:
		return 9
	}
}

func (c Card) String() string {
	if name, ok := cardNames[c]; ok {
		return name
	}
	return fmt.Sprintf("card(%d)", int(c))
}

func (c Card) MarshalJSON() ([]byte, error) {
	name, ok := cardNames[c]
	if !ok {
		return nil, fmt.Errorf("unknown card: %d", int(c))
	}
	return json.Marshal(name)
}

func (c *Card) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	card, ok := cardValues[name]
	if !ok {
		return fmt.Errorf("unknown card: %q", name)
	}
	*c = card
	return nil
}
