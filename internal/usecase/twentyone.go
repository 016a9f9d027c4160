package usecase

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/console-games/internal/entity"
	"github.com/rocketscienceinc/console-games/internal/view"
)

const (
	dealerName = "Dealer"
	userName   = "User"
	stake      = 1
)

type hitDecider interface {
	WantsHit(ctx context.Context) (bool, error)
}

type dealerPolicy interface {
	WantsHit(hand *entity.Hand) bool
}

// TwentyOne - the user against the dealer over a shared multi-deck shoe.
type TwentyOne struct {
	console consoleDep
	user    hitDecider
	policy  dealerPolicy
	deck    *entity.Deck

	dealer  *entity.Participant
	gambler *entity.Gambler

	target   int
	shuffles int
	natural  bool
}

func NewTwentyOne(
	console consoleDep,
	user hitDecider,
	policy dealerPolicy,
	deck *entity.Deck,
	purse *entity.Purse,
	target, shuffles int,
) *TwentyOne {
	return &TwentyOne{
		console:  console,
		user:     user,
		policy:   policy,
		deck:     deck,
		dealer:   entity.NewParticipant(dealerName),
		gambler:  entity.NewGambler(userName, purse),
		target:   target,
		shuffles: shuffles,
	}
}

func (that *TwentyOne) Name() string {
	return entity.GameTwentyOne
}

func (that *TwentyOne) Welcome() []string {
	return view.Welcome(entity.GameTwentyOne, that.target)
}

func (that *TwentyOne) Goodbye() []string {
	purse := that.gambler.Purse

	lines := []string{fmt.Sprintf("You finished with $%d in your purse.", purse.Balance())}
	switch {
	case purse.IsBroke():
		lines = append(lines, "You're broke!")
	case purse.IsRich():
		lines = append(lines, "You're rich!")
	}

	return append(lines, view.Goodbye(entity.GameTwentyOne)...)
}

func (that *TwentyOne) Dealer() *entity.Participant {
	return that.dealer
}

func (that *TwentyOne) Gambler() *entity.Gambler {
	return that.gambler
}

// Setup - collects every card back into the deck, shuffles, and deals two cards each.
// The dealer's first card stays face-down until the round completes.
func (that *TwentyOne) Setup(_ context.Context) error {
	if err := that.dealer.ReturnCards(that.deck); err != nil {
		return fmt.Errorf("failed to collect dealer cards: %w", err)
	}

	if err := that.gambler.ReturnCards(that.deck); err != nil {
		return fmt.Errorf("failed to collect user cards: %w", err)
	}

	that.deck.Shuffle(that.shuffles)
	that.natural = false

	for i := range 2 {
		if err := that.deal(that.dealer, i == 0); err != nil {
			return err
		}

		if err := that.deal(that.gambler.Participant, false); err != nil {
			return err
		}
	}

	return nil
}

func (that *TwentyOne) PlayRound(ctx context.Context) error {
	that.console.Display(view.Table(that.dealer, that.gambler.Participant))

	if that.dealer.Hand().Score(that.target) == that.target {
		that.natural = true
		return nil
	}

	if err := that.userTurn(ctx); err != nil {
		return err
	}

	if that.gambler.Hand().IsBust(that.target) {
		return nil
	}

	for that.policy.WantsHit(that.dealer.Hand()) {
		if err := that.deal(that.dealer, false); err != nil {
			return err
		}
	}

	return nil
}

func (that *TwentyOne) CompleteRound(_ context.Context) (entity.RoundResult, error) {
	that.dealer.Hand().Reveal()

	outcome := entity.DetermineTwentyOneWinner(that.gambler.Hand(), that.dealer.Hand(), that.target)

	switch outcome {
	case entity.OutcomeHuman:
		that.gambler.Purse.Add(stake)
	case entity.OutcomeComputer:
		that.gambler.Purse.Subtract(stake)
	}

	summary := view.Table(that.dealer, that.gambler.Participant)
	if that.natural {
		summary = append(summary, fmt.Sprintf("Dealer has %d on the deal.", that.target))
	}
	summary = append(summary,
		fmt.Sprintf("%s has %d, %s has %d.",
			dealerName, that.dealer.Hand().Score(that.target),
			userName, that.gambler.Hand().Score(that.target)),
		view.Verdict(entity.GameTwentyOne, outcome),
		fmt.Sprintf("User has $%d in their purse.", that.gambler.Purse.Balance()),
		"",
	)
	that.console.Display(summary)

	return entity.RoundResult{
		Game:    entity.GameTwentyOne,
		Outcome: outcome,
		Summary: summary,
	}, nil
}

// CanContinue - the session ends once the user is broke or rich.
func (that *TwentyOne) CanContinue() bool {
	return !that.gambler.Purse.IsBroke() && !that.gambler.Purse.IsRich()
}

func (that *TwentyOne) userTurn(ctx context.Context) error {
	for !that.gambler.Hand().IsBust(that.target) {
		hit, err := that.user.WantsHit(ctx)
		if err != nil {
			return err
		}

		if !hit {
			return nil
		}

		if err = that.deal(that.gambler.Participant, false); err != nil {
			return err
		}

		that.console.Display(view.Table(that.dealer, that.gambler.Participant))
	}

	return nil
}

func (that *TwentyOne) deal(to *entity.Participant, faceDown bool) error {
	card, err := that.deck.Draw(faceDown)
	if err != nil {
		return fmt.Errorf("failed to deal to %s: %w", to.Name, err)
	}

	to.Hand().Add(card)

	return nil
}
