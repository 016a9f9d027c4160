package entity

import (
	"github.com/rocketscienceinc/console-games/internal/apperror"
	"github.com/rocketscienceinc/console-games/internal/pkg"
)

const cardsPerDeck = 52

type Deck struct {
	cards  []*Card
	random pkg.Random
}

// NewDeck - builds numberOfDecks standard 52-card decks, all face-down and unshuffled.
func NewDeck(numberOfDecks int, random pkg.Random) *Deck {
	cards := make([]*Card, 0, numberOfDecks*cardsPerDeck)
	for range numberOfDecks {
		for _, rank := range Ranks {
			for _, suit := range Suits {
				cards = append(cards, NewCard(rank, suit))
			}
		}
	}

	return &Deck{
		cards:  cards,
		random: random,
	}
}

// Shuffle - applies times rounds of Fisher–Yates.
func (that *Deck) Shuffle(times int) {
	for range times {
		for i := len(that.cards) - 1; i > 0; i-- {
			j := that.random.Intn(i + 1)
			that.cards[i], that.cards[j] = that.cards[j], that.cards[i]
		}
	}
}

// Draw - removes the top card and turns it the requested way.
func (that *Deck) Draw(faceDown bool) (*Card, error) {
	if len(that.cards) == 0 {
		return nil, apperror.ErrEmptyDeck
	}

	top := that.cards[len(that.cards)-1]
	that.cards = that.cards[:len(that.cards)-1]

	if faceDown {
		return top.TurnFaceDown(), nil
	}

	return top.TurnFaceUp(), nil
}

func (that *Deck) Return(card *Card) {
	that.cards = append(that.cards, card.TurnFaceDown())
}

func (that *Deck) Len() int {
	return len(that.cards)
}

// Cards - a copy of the deck order, top card last.
func (that *Deck) Cards() []*Card {
	return append([]*Card(nil), that.cards...)
}
