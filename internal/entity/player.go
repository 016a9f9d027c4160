package entity

type Purse struct {
	balance int
	broke   int
	rich    int
}

func NewPurse(balance, broke, rich int) *Purse {
	return &Purse{
		balance: balance,
		broke:   broke,
		rich:    rich,
	}
}

func (that *Purse) Add(amount int) {
	that.balance += amount
}

func (that *Purse) Subtract(amount int) {
	that.balance -= amount
}

func (that *Purse) Balance() int {
	return that.balance
}

func (that *Purse) IsBroke() bool {
	return that.balance <= that.broke
}

func (that *Purse) IsRich() bool {
	return that.balance >= that.rich
}

// Participant - anyone holding a hand at the card table.
type Participant struct {
	Name string
	hand *Hand
}

func NewParticipant(name string) *Participant {
	return &Participant{
		Name: name,
		hand: NewHand(),
	}
}

func (that *Participant) Hand() *Hand {
	return that.hand
}

// ReturnCards - drains the hand back into the deck.
func (that *Participant) ReturnCards(deck *Deck) error {
	for that.hand.Len() > 0 {
		card, err := that.hand.RemoveTop()
		if err != nil {
			return err
		}

		deck.Return(card)
	}

	return nil
}

// Gambler - a participant who bets from a purse.
type Gambler struct {
	*Participant
	Purse *Purse
}

func NewGambler(name string, purse *Purse) *Gambler {
	return &Gambler{
		Participant: NewParticipant(name),
		Purse:       purse,
	}
}
