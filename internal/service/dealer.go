package service

import "github.com/rocketscienceinc/console-games/internal/entity"

// Dealer - the computer side of twenty-one, it hits below the stay limit.
type Dealer struct {
	stayLimit int
	target    int
}

func NewDealer(stayLimit, target int) *Dealer {
	return &Dealer{
		stayLimit: stayLimit,
		target:    target,
	}
}

func (that *Dealer) WantsHit(hand *entity.Hand) bool {
	return hand.Score(that.target) < that.stayLimit
}
