package blackjack

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"

	"blackjack-server/pkg/deck"
)

const (
	minSeats = 2
	maxSeats = 6

	minTurnTimeout = 5
	maxTurnTimeout = 300
)

// Settings configures a game of blackjack
type Settings struct {
	// Seats is the number of players the game waits for before starting
	Seats int `json:"playerCount"`

	// Rounds is the total number of rounds played before the game ends
	Rounds int `json:"rounds"`

	// TurnTimeout is the number of seconds a player has to act before the
	// server stands for them
	TurnTimeout int `json:"timeout"`

	// StartingCredits is the balance every player is seated with.
	// Zero means the default.
	StartingCredits int `json:"startingCredits"`
}

func (s Settings) validate() error {
	if s.Seats < minSeats || s.Seats > maxSeats {
		return fmt.Errorf("seats must be between %d and %d", minSeats, maxSeats)
	}

	if s.Rounds < 1 {
		return errors.New("there must be at least one round")
	}

	if s.TurnTimeout < minTurnTimeout || s.TurnTimeout > maxTurnTimeout {
		return fmt.Errorf("turn timeout must be between %d and %d seconds", minTurnTimeout, maxTurnTimeout)
	}

	if s.StartingCredits < 0 {
		return errors.New("starting credits cannot be negative")
	}

	return nil
}

func (s Settings) turnTimeout() time.Duration {
	return time.Duration(s.TurnTimeout) * time.Second
}

// Game is the authoritative state machine for one blackjack table.
//
// Game is not safe for concurrent use. The owning room must call every
// method, including Tick(), from a single run loop so each inbound event is
// handled to completion before the next.
type Game struct {
	roomID   string
	settings Settings
	log      logrus.FieldLogger
	clock    quartz.Clock

	players []*Player
	dealer  *Dealer
	deck    *deck.Deck

	phase              Phase
	paused             bool
	currentRound       int
	currentPlayerIndex int

	// turnDeadline is the current player's auto-stand deadline. Zero means
	// no turn is on the clock.
	turnDeadline time.Time

	pending *pendingTick

	// seed forces deterministic shuffles in tests. 0 means crypto-seeded.
	seed int64
}

// NewGame returns a new blackjack game in the waiting phase.
// Players are seated with AddPlayer; the first player seated is the host.
func NewGame(log logrus.FieldLogger, roomID string, settings Settings, clock quartz.Clock) (*Game, error) {
	if err := settings.validate(); err != nil {
		return nil, err
	}

	if log == nil {
		log = logrus.StandardLogger()
	}

	if clock == nil {
		clock = quartz.NewReal()
	}

	if settings.StartingCredits == 0 {
		settings.StartingCredits = StartingCredits
	}

	return &Game{
		roomID:   roomID,
		settings: settings,
		log:      log.WithField("room", roomID),
		clock:    clock,
		players:  make([]*Player, 0, settings.Seats),
		dealer:   newDealer(),
		deck:     deck.New(),
		phase:    PhaseWaiting,
	}, nil
}

// SetSeed forces a deterministic shuffle for every subsequent deal.
// This should only be used by tests.
func (g *Game) SetSeed(seed int64) {
	g.seed = seed
}

// RoomID returns the room code this game belongs to
func (g *Game) RoomID() string {
	return g.roomID
}

// Phase returns the current phase
func (g *Game) Phase() Phase {
	return g.phase
}

// Paused reports whether the game is paused following a disconnect
func (g *Game) Paused() bool {
	return g.paused
}

// CurrentRound returns the 1-based round counter
func (g *Game) CurrentRound() int {
	return g.currentRound
}

// CurrentPlayerIndex returns the seat index of the player to act
func (g *Game) CurrentPlayerIndex() int {
	return g.currentPlayerIndex
}

// Settings returns the game settings
func (g *Game) Settings() Settings {
	return g.settings
}

// Players returns the seated players in turn order
func (g *Game) Players() []*Player {
	players := make([]*Player, len(g.players))
	copy(players, g.players)

	return players
}

// Dealer returns the dealer
func (g *Game) Dealer() *Dealer {
	return g.dealer
}

// Empty returns true when no players remain seated
func (g *Game) Empty() bool {
	return len(g.players) == 0
}

func (g *Game) playerByID(id string) *Player {
	for _, p := range g.players {
		if p.ID == id {
			return p
		}
	}

	return nil
}

func (g *Game) playerViews() []*playerView {
	views := make([]*playerView, len(g.players))
	for i, p := range g.players {
		views[i] = p.view()
	}

	return views
}

// AddPlayer seats a new player. The first player seated becomes the host.
// Once the requested seat count is reached the game advances to the betting
// phase on its own.
func (g *Game) AddPlayer(id, name string) ([]Event, error) {
	if g.phase != PhaseWaiting {
		return nil, ErrGameInProgress
	}

	if len(g.players) >= g.settings.Seats {
		return nil, ErrRoomFull
	}

	p := newPlayer(id, name, g.settings.StartingCredits)
	if len(g.players) == 0 {
		p.isHost = true
	}

	g.players = append(g.players, p)
	g.log.WithFields(logrus.Fields{"player": id, "name": name}).Info("player joined")

	events := []Event{broadcast(eventPlayerJoined, playerJoinedPayload{Players: g.playerViews()})}
	if len(g.players) == g.settings.Seats {
		events = append(events, g.beginGame()...)
	}

	return events, nil
}

// Start begins the game before every seat is filled. Only the host may
// start, and at least two players must be seated.
func (g *Game) Start(playerID string) ([]Event, error) {
	if g.phase != PhaseWaiting {
		return nil, ErrGameInProgress
	}

	p := g.playerByID(playerID)
	if p == nil {
		return nil, ErrPlayerNotFound
	}

	if !p.isHost {
		return nil, ErrNotHost
	}

	if len(g.players) < minSeats {
		return nil, ErrNotEnoughPlayers
	}

	return g.beginGame(), nil
}

// beginGame performs the waiting -> betting transition
func (g *Game) beginGame() []Event {
	g.phase = PhaseBetting
	g.currentRound = 1
	g.currentPlayerIndex = 0

	for _, p := range g.players {
		p.newRound()
	}
	g.dealer.newRound()

	g.log.WithField("players", len(g.players)).Info("game started")

	return []Event{
		broadcast(eventGameStarted, gameStartedPayload{
			Settings:           g.settings,
			Players:            g.playerViews(),
			Dealer:             g.dealer.view(),
			CurrentPlayerIndex: g.currentPlayerIndex,
			CurrentRound:       g.currentRound,
			TotalRounds:        g.settings.Rounds,
			RoomID:             g.roomID,
		}),
		g.bettingPhaseEvent(),
	}
}

func (g *Game) bettingPhaseEvent() Event {
	return broadcast(eventBettingPhase, bettingPhasePayload{
		Players:      g.playerViews(),
		CurrentRound: g.currentRound,
		TotalRounds:  g.settings.Rounds,
	})
}

// PlaceBet records the player's bet for the round. A bet must be a positive
// multiple of 10 no greater than the player's credits, and each player bets
// exactly once per round. When the last bet arrives the cards are dealt.
func (g *Game) PlaceBet(playerID string, bet int) ([]Event, error) {
	if g.phase != PhaseBetting {
		return nil, ErrInvalidAction
	}

	p := g.playerByID(playerID)
	if p == nil {
		return nil, ErrPlayerNotFound
	}

	if p.bet > 0 {
		return nil, ErrInvalidAction
	}

	if bet <= 0 || bet%10 != 0 || bet > p.credits {
		return nil, ErrInvalidBet
	}

	p.bet = bet
	g.log.WithFields(logrus.Fields{"player": p.ID, "bet": bet}).Debug("bet placed")

	events := []Event{broadcast(eventBetPlaced, betPlacedPayload{
		PlayerID:   p.ID,
		PlayerName: p.Name,
		Bet:        bet,
	})}

	if g.allBetsIn() {
		events = append(events, g.deal()...)
	}

	return events, nil
}

func (g *Game) allBetsIn() bool {
	for _, p := range g.players {
		if p.bet == 0 {
			return false
		}
	}

	return len(g.players) > 0
}

// deal performs the betting -> playing transition: debit every bet, rebuild
// and shuffle the deck, then deal two cards to each player and two to the
// dealer. The dealer's second card stays hidden until the dealer's turn.
func (g *Game) deal() []Event {
	g.phase = PhasePlaying

	for _, p := range g.players {
		p.credits -= p.bet
		p.hand.Clear()
		p.acted = false
	}
	g.dealer.newRound()

	g.deck.Shuffle(g.seed)

	for i := 0; i < 2; i++ {
		for _, p := range g.players {
			card, err := g.deck.Draw()
			if err != nil {
				return g.abortRound(err)
			}

			p.hand.AddCard(card)
		}

		card, err := g.deck.Draw()
		if err != nil {
			return g.abortRound(err)
		}

		g.dealer.hand.AddCard(card)
	}

	g.currentPlayerIndex = 0
	g.armTurn()

	current := g.players[0]

	return []Event{
		broadcast(eventCardsDealt, cardsDealtPayload{
			Players:            g.playerViews(),
			Dealer:             g.dealer.view(),
			CurrentPlayerIndex: g.currentPlayerIndex,
		}),
		broadcast(eventNextPlayer, nextPlayerPayload{
			CurrentPlayerIndex: g.currentPlayerIndex,
			PlayerID:           current.ID,
			Timeout:            g.settings.TurnTimeout,
		}),
	}
}

// PlayerAction performs a hit, stand, or double for the current player.
// Actions from any other player are rejected with ErrNotYourTurn and have
// no side effects.
func (g *Game) PlayerAction(playerID string, action Action) ([]Event, error) {
	if g.phase != PhasePlaying {
		return nil, ErrInvalidAction
	}

	p := g.playerByID(playerID)
	if p == nil {
		return nil, ErrPlayerNotFound
	}

	if g.players[g.currentPlayerIndex] != p {
		return nil, ErrNotYourTurn
	}

	switch action {
	case ActionHit:
		return g.hit(p)
	case ActionStand:
		return g.stand(p), nil
	case ActionDouble:
		return g.double(p)
	}

	return nil, ErrInvalidAction
}

func (g *Game) hit(p *Player) ([]Event, error) {
	card, err := g.deck.Draw()
	if err != nil {
		return g.abortRound(err), nil
	}

	p.hand.AddCard(card)

	events := []Event{
		broadcast(eventGameAction, gameActionPayload{PlayerID: p.ID, Action: ActionHit}),
		broadcast(eventCardDrawn, cardDrawnPayload{PlayerID: p.ID, Card: card}),
	}

	if p.hand.Busted() {
		return append(events, g.endTurn(p)...), nil
	}

	// the turn continues with a fresh deadline
	g.armTurn()
	return events, nil
}

func (g *Game) stand(p *Player) []Event {
	events := []Event{
		broadcast(eventGameAction, gameActionPayload{PlayerID: p.ID, Action: ActionStand}),
	}

	return append(events, g.endTurn(p)...)
}

func (g *Game) double(p *Player) ([]Event, error) {
	if len(p.hand) != 2 || p.credits < p.bet {
		return nil, ErrInvalidAction
	}

	card, err := g.deck.Draw()
	if err != nil {
		return g.abortRound(err), nil
	}

	p.credits -= p.bet
	p.bet *= 2
	p.hand.AddCard(card)

	events := []Event{
		broadcast(eventGameAction, gameActionPayload{PlayerID: p.ID, Action: ActionDouble}),
		broadcast(eventCardDrawn, cardDrawnPayload{PlayerID: p.ID, Card: card}),
	}

	return append(events, g.endTurn(p)...), nil
}

// endTurn marks the player as acted and advances to the next player who has
// not acted, in seating order, wrapping once. When none remain the dealer's
// turn begins.
func (g *Game) endTurn(p *Player) []Event {
	p.acted = true

	n := len(g.players)
	for i := 1; i <= n; i++ {
		index := (g.currentPlayerIndex + i) % n
		if !g.players[index].acted {
			g.currentPlayerIndex = index
			g.armTurn()

			return []Event{broadcast(eventNextPlayer, nextPlayerPayload{
				CurrentPlayerIndex: index,
				PlayerID:           g.players[index].ID,
				Timeout:            g.settings.TurnTimeout,
			})}
		}
	}

	return g.startDealerTurn()
}

// startDealerTurn performs the playing -> dealer-turn transition: reveal the
// hole card and schedule the first paced draw. The draw sequence runs to
// completion on the tick loop and cannot be cancelled by a client.
func (g *Game) startDealerTurn() []Event {
	g.phase = PhaseDealerTurn
	g.disarmTurn()
	g.dealer.revealed = true

	g.schedule(tickDealerDraw, dealerDrawDelay)

	return []Event{broadcast(eventRevealDealerCard, revealDealerCardPayload{
		Card: g.dealer.holeCard(),
	})}
}

// settleRound performs the dealer-turn -> round-end transition and pays out
// every player per the settlement table.
func (g *Game) settleRound() []Event {
	g.phase = PhaseRoundEnd

	dealerValue := g.dealer.HandValue()
	results := make([]*roundResultView, len(g.players))
	for i, p := range g.players {
		p.result = settleHand(p.HandValue(), dealerValue)
		p.winnings = payout(p.result, p.bet)
		p.credits += p.winnings
		if p.result == ResultWin {
			p.roundsWon++
		}

		results[i] = &roundResultView{
			ID:       p.ID,
			Name:     p.Name,
			Hand:     p.Hand(),
			Value:    p.HandValue(),
			Result:   p.result,
			Bet:      p.bet,
			Winnings: p.winnings,
			Credits:  p.credits,
		}
	}

	g.log.WithFields(logrus.Fields{
		"round":  g.currentRound,
		"dealer": dealerValue,
	}).Info("round settled")

	g.schedule(tickAdvanceRound, roundAdvanceDelay)

	return []Event{broadcast(eventRoundEnd, roundEndPayload{
		Dealer:       g.dealer.view(),
		Players:      results,
		CurrentRound: g.currentRound,
		TotalRounds:  g.settings.Rounds,
	})}
}

// advanceRound performs the round-end -> betting|game-end transition
func (g *Game) advanceRound() []Event {
	g.paused = false

	if g.currentRound >= g.settings.Rounds {
		return g.endGame()
	}

	g.currentRound++
	return g.beginBetting()
}

func (g *Game) beginBetting() []Event {
	g.phase = PhaseBetting

	for _, p := range g.players {
		p.newRound()
	}
	g.dealer.newRound()

	return []Event{g.bettingPhaseEvent()}
}

func (g *Game) endGame() []Event {
	g.phase = PhaseGameEnd
	g.disarmTurn()
	g.pending = nil

	standings := make([]*standingView, len(g.players))
	for i, p := range g.players {
		standings[i] = &standingView{
			ID:        p.ID,
			Name:      p.Name,
			Credits:   p.credits,
			RoundsWon: p.roundsWon,
		}
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Credits != standings[j].Credits {
			return standings[i].Credits > standings[j].Credits
		}

		return standings[i].RoundsWon > standings[j].RoundsWon
	})

	g.log.Info("game over")

	return []Event{broadcast(eventGameEnd, gameEndPayload{Players: standings})}
}

// RemovePlayer unseats a disconnected player. Once cards are in play the
// room pauses and the in-flight round is voided: every remaining player's
// bet is refunded and the same round restarts from the betting phase, so the
// game always makes forward progress even when the current player vanishes.
// A departure during betting just unblocks the remaining bets.
func (g *Game) RemovePlayer(playerID string) ([]Event, error) {
	index := -1
	for i, p := range g.players {
		if p.ID == playerID {
			index = i
			break
		}
	}

	if index == -1 {
		return nil, ErrPlayerNotFound
	}

	removed := g.players[index]
	g.players = append(g.players[:index], g.players[index+1:]...)

	if removed.isHost && len(g.players) > 0 {
		g.players[0].isHost = true
	}

	g.log.WithField("player", playerID).Info("player left")

	events := []Event{broadcast(eventPlayerLeft, playerLeftPayload{
		PlayerID: playerID,
		Players:  g.playerViews(),
	})}

	if g.Empty() {
		// the registry will destroy the room; nothing scheduled may be
		// left to fire before it does
		g.disarmTurn()
		g.pending = nil
		g.paused = false
		return events, nil
	}

	if g.phase == PhaseWaiting || g.phase == PhaseGameEnd {
		return events, nil
	}

	pauseNotice := broadcast(eventGamePaused, gamePausedPayload{
		Message: fmt.Sprintf("%s disconnected", removed.Name),
	})

	switch g.phase {
	case PhaseBetting:
		// no credits have moved yet
		if g.allBetsIn() {
			// the departure unblocked the deal, so the round never
			// actually pauses
			events = append(events, g.deal()...)
		} else {
			events = append(events, pauseNotice)
		}
	case PhasePlaying, PhaseDealerTurn:
		g.paused = true
		events = append(events, pauseNotice)
		events = append(events, g.voidRound()...)
	case PhaseRoundEnd:
		g.paused = true
		events = append(events, pauseNotice)
		// settlement is already done; the scheduled round advance
		// will clear the pause
	}

	return events, nil
}

// voidRound refunds every remaining player's bet, clears all hands, and
// restarts the current round from the betting phase.
func (g *Game) voidRound() []Event {
	for _, p := range g.players {
		p.credits += p.bet
	}

	g.disarmTurn()
	g.pending = nil
	g.paused = false

	return g.beginBetting()
}

// abortRound handles a drained deck mid-round. It should be unreachable in
// a legal round; treat it as a bug in this package, not a player error.
func (g *Game) abortRound(err error) []Event {
	g.log.WithError(err).Error("aborting round")

	events := []Event{broadcast(eventGamePaused, gamePausedPayload{
		Message: "the round was aborted",
	})}

	return append(events, g.voidRound()...)
}
