package entity

import (
	"testing"

	"github.com/rocketscienceinc/console-games/internal/apperror"
	"github.com/rocketscienceinc/console-games/internal/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRandom() pkg.Random {
	return pkg.NewSeededRandom(42)
}

func cardCounts(cards []*Card) map[string]int {
	counts := make(map[string]int)
	for _, card := range cards {
		counts[string(card.Rank())+string(card.Suit())]++
	}

	return counts
}

func TestNewDeck(t *testing.T) {
	// When: a deck of two decks is created
	deck := NewDeck(2, newTestRandom())

	// Then: it holds 104 face-down cards, every rank and suit twice
	require.Equal(t, 104, deck.Len())

	for _, card := range deck.Cards() {
		assert.True(t, card.IsFaceDown())
	}

	for key, count := range cardCounts(deck.Cards()) {
		assert.Equal(t, 2, count, key)
	}
}

func TestDeck_Shuffle(t *testing.T) {
	t.Run("Shuffle is a permutation for every deck size", func(t *testing.T) {
		for decks := 0; decks <= 8; decks++ {
			// Given: a deck and its card counts
			deck := NewDeck(decks, newTestRandom())
			before := cardCounts(deck.Cards())

			// When: it is shuffled seven times
			deck.Shuffle(7)

			// Then: the multiset of cards is unchanged
			assert.Equal(t, before, cardCounts(deck.Cards()))
			assert.Equal(t, decks*52, deck.Len())
		}
	})

	t.Run("Shuffle changes the order", func(t *testing.T) {
		deck := NewDeck(1, newTestRandom())
		before := deck.Cards()

		deck.Shuffle(1)

		assert.NotEqual(t, before, deck.Cards())
	})

	t.Run("Every position is reachable", func(t *testing.T) {
		// Given: the same small deck shuffled many times
		random := newTestRandom()
		seen := make(map[int]bool)

		for range 2000 {
			deck := &Deck{
				cards:  []*Card{NewCard(Ace, Spades), NewCard(Two, Spades), NewCard(Three, Spades), NewCard(Four, Spades)},
				random: random,
			}
			deck.Shuffle(1)

			for i, card := range deck.Cards() {
				if card.Rank() == Ace {
					seen[i] = true
				}
			}
		}

		// Then: the ace has landed on every index
		assert.Len(t, seen, 4)
	})
}

func TestDeck_Draw(t *testing.T) {
	t.Run("Draw takes the top card face-down", func(t *testing.T) {
		deck := NewDeck(1, newTestRandom())
		top := deck.Cards()[deck.Len()-1]

		card, err := deck.Draw(true)

		require.NoError(t, err)
		assert.Same(t, top, card)
		assert.True(t, card.IsFaceDown())
		assert.Equal(t, 51, deck.Len())
	})

	t.Run("Draw face-up", func(t *testing.T) {
		deck := NewDeck(1, newTestRandom())

		card, err := deck.Draw(false)

		require.NoError(t, err)
		assert.True(t, card.IsFaceUp())
	})

	t.Run("Empty deck fails loudly", func(t *testing.T) {
		// Given: an exhausted deck
		deck := NewDeck(1, newTestRandom())
		for range 52 {
			_, err := deck.Draw(true)
			require.NoError(t, err)
		}

		// When: another card is drawn
		card, err := deck.Draw(true)

		// Then: ErrEmptyDeck is returned
		require.ErrorIs(t, err, apperror.ErrEmptyDeck)
		assert.Nil(t, card)
	})

	t.Run("Returned cards go back face-down", func(t *testing.T) {
		deck := NewDeck(1, newTestRandom())
		card, err := deck.Draw(false)
		require.NoError(t, err)

		deck.Return(card)

		assert.Equal(t, 52, deck.Len())
		assert.True(t, card.IsFaceDown())
	})
}
