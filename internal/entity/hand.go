package entity

import "github.com/rocketscienceinc/console-games/internal/apperror"

type Hand struct {
	cards []*Card
}

func NewHand() *Hand {
	return &Hand{}
}

func (that *Hand) Add(card *Card) {
	that.cards = append(that.cards, card)
}

// RemoveTop - removes the most recently added card.
func (that *Hand) RemoveTop() (*Card, error) {
	if len(that.cards) == 0 {
		return nil, apperror.ErrEmptyHand
	}

	top := that.cards[len(that.cards)-1]
	that.cards = that.cards[:len(that.cards)-1]

	return top, nil
}

func (that *Hand) Len() int {
	return len(that.cards)
}

func (that *Hand) Cards() []*Card {
	return append([]*Card(nil), that.cards...)
}

func (that *Hand) Reveal() {
	for _, card := range that.cards {
		card.TurnFaceUp()
	}
}

// Score - the best total not above target over every assignment of card values.
// When every assignment goes over, the bust sentinel target+1 is returned.
func (that *Hand) Score(target int) int {
	best := bestTotal(that.cards, 0, target)
	if best < 0 {
		return target + 1
	}

	return best
}

func (that *Hand) IsBust(target int) bool {
	return that.Score(target) > target
}

func (that *Hand) String() string {
	return FormatCards(that.cards)
}

// bestTotal walks the cartesian product of card values, -1 means no total fits.
// Hands stay small, so the search is not memoized.
func bestTotal(cards []*Card, sum, target int) int {
	if sum > target {
		return -1
	}

	if len(cards) == 0 {
		return sum
	}

	best := -1
	for _, value := range rankValues[cards[0].Rank()] {
		best = max(best, bestTotal(cards[1:], sum+value, target))
	}

	return best
}
