package entity

import (
	"fmt"
	"strings"
)

type Rank string

const (
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
	Ace   Rank = "A"
)

type Suit string

const (
	Hearts   Suit = "♥"
	Clubs    Suit = "♣"
	Spades   Suit = "♠"
	Diamonds Suit = "♦"
)

var (
	Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
	Suits = []Suit{Hearts, Clubs, Spades, Diamonds}

	rankValues = map[Rank][]int{
		Two:   {2},
		Three: {3},
		Four:  {4},
		Five:  {5},
		Six:   {6},
		Seven: {7},
		Eight: {8},
		Nine:  {9},
		Ten:   {10},
		Jack:  {10},
		Queen: {10},
		King:  {10},
		Ace:   {1, 11},
	}
)

// Card - rank and suit never change, only the face-down flag does.
type Card struct {
	rank     Rank
	suit     Suit
	faceDown bool
}

func NewCard(rank Rank, suit Suit) *Card {
	return &Card{
		rank:     rank,
		suit:     suit,
		faceDown: true,
	}
}

func (that *Card) Rank() Rank {
	return that.rank
}

func (that *Card) Suit() Suit {
	return that.suit
}

// Values - every value the card may count as.
func (that *Card) Values() []int {
	values := rankValues[that.rank]
	return append([]int(nil), values...)
}

func (that *Card) IsFaceDown() bool {
	return that.faceDown
}

func (that *Card) IsFaceUp() bool {
	return !that.faceDown
}

func (that *Card) TurnFaceUp() *Card {
	that.faceDown = false
	return that
}

func (that *Card) TurnFaceDown() *Card {
	that.faceDown = true
	return that
}

func (that *Card) String() string {
	if that.faceDown {
		return "[    ]"
	}

	return fmt.Sprintf("[%2s%s ]", that.rank, that.suit)
}

// FormatCards - renders cards side by side.
func FormatCards(cards []*Card) string {
	parts := make([]string, 0, len(cards))
	for _, card := range cards {
		parts = append(parts, card.String())
	}

	return strings.Join(parts, " ")
}
