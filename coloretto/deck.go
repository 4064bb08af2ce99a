package coloretto

import (
	"math/rand"
)

// Deck is the draw pile. Draw takes from the end of the slice.
type Deck struct {
	Cards []Card `json:"cards"`
}

// SmallDeck builds the two player deck: two of the seven colors are dropped
// at random before the per-kind counts are multiplied out.
func SmallDeck() Deck {
	cards := shuffledColors()
	return generateWith(cards[2:])
}

// MediumDeck builds the three player deck, dropping one random color.
func MediumDeck() Deck {
	cards := shuffledColors()
	return generateWith(cards[1:])
}

// LargeDeck builds the full deck for four or five players.
func LargeDeck() Deck {
	return generateWith(colors[:])
}

func shuffledColors() []Card {
	cards := make([]Card, len(colors))
	copy(cards, colors[:])
	rand.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return cards
}

func generateWith(kept []Card) Deck {
	cards := make([]Card, 0, 120)
	for _, card := range kept {
		for i := 0; i < card.Amount(); i++ {
			cards = append(cards, card)
		}
	}
	for _, card := range specials {
		for i := 0; i < card.Amount(); i++ {
			cards = append(cards, card)
		}
	}
	rand.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return Deck{Cards: cards}
}

// Draw removes and returns the top card. The second return is false once the
// deck is exhausted, which a correctly bounded game never reaches.
func (d *Deck) Draw() (Card, bool) {
	if len(d.Cards) == 0 {
		return 0, false
	}
	card := d.Cards[len(d.Cards)-1]
	d.Cards = d.Cards[:len(d.Cards)-1]
	return card, true
}

// Len reports how many cards remain in the pile.
func (d *Deck) Len() int {
	return len(d.Cards)
}
