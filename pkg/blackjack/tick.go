package blackjack

import "time"

const (
	// dealerDrawDelay paces the dealer's draws so observers see the hand
	// grow one card at a time
	dealerDrawDelay = time.Second

	// roundAdvanceDelay is how long the round-end summary stays up before
	// the next betting phase or the final standings
	roundAdvanceDelay = 3 * time.Second
)

type tickAction int

const (
	tickDealerDraw tickAction = iota
	tickAdvanceRound
)

type pendingTick struct {
	action tickAction
	after  time.Time
}

func (g *Game) schedule(action tickAction, after time.Duration) {
	g.pending = &pendingTick{
		action: action,
		after:  g.clock.Now().Add(after),
	}
}

// armTurn starts a fresh per-turn deadline. The deadline is rewritten or
// cleared in the same run-loop step as every turn change, so a timeout can
// never fire for a turn that has already advanced.
func (g *Game) armTurn() {
	g.turnDeadline = g.clock.Now().Add(g.settings.turnTimeout())
}

func (g *Game) disarmTurn() {
	g.turnDeadline = time.Time{}
}

// Interval returns how often Tick() should be called
func (g *Game) Interval() time.Duration {
	return time.Second
}

// Tick drives the game's scheduled transitions: the per-turn timeout, the
// dealer's paced draws, and the delayed advance out of the round-end phase.
// Like every other method it must only be called from the owning run loop.
func (g *Game) Tick() ([]Event, error) {
	if g.Empty() {
		return nil, nil
	}

	now := g.clock.Now()

	if g.pending != nil && !now.Before(g.pending.after) {
		action := g.pending.action
		g.pending = nil

		switch action {
		case tickDealerDraw:
			return g.dealerDraw(), nil
		case tickAdvanceRound:
			return g.advanceRound(), nil
		}
	}

	if g.phase == PhasePlaying && !g.turnDeadline.IsZero() && !now.Before(g.turnDeadline) {
		g.turnDeadline = time.Time{}

		p := g.players[g.currentPlayerIndex]
		g.log.WithField("player", p.ID).Info("turn timed out, standing")

		return g.stand(p), nil
	}

	return nil, nil
}

// dealerDraw draws one card for the dealer, or settles the round once the
// dealer reaches 17. Each draw is broadcast before the next is scheduled.
func (g *Game) dealerDraw() []Event {
	if g.phase != PhaseDealerTurn {
		// the round was voided while a draw was pending
		return nil
	}

	if g.dealer.HandValue() >= 17 {
		return g.settleRound()
	}

	card, err := g.deck.Draw()
	if err != nil {
		return g.abortRound(err)
	}

	g.dealer.hand.AddCard(card)
	g.schedule(tickDealerDraw, dealerDrawDelay)

	return []Event{broadcast(eventDealerCardDrawn, dealerCardDrawnPayload{Card: card})}
}
