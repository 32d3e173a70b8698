package blackjack

// Result is a player's outcome for a single round
type Result string

// round outcomes
const (
	ResultPending Result = ""
	ResultBust    Result = "bust"
	ResultWin     Result = "win"
	ResultLose    Result = "lose"
	ResultPush    Result = "push"
)

// settleHand determines a player's outcome from the final hand values.
// A busted player always loses, even if the dealer busts too.
func settleHand(playerValue, dealerValue int) Result {
	switch {
	case playerValue > 21:
		return ResultBust
	case dealerValue > 21:
		return ResultWin
	case playerValue > dealerValue:
		return ResultWin
	case playerValue < dealerValue:
		return ResultLose
	}

	return ResultPush
}

// payout returns the amount credited back to the player. The bet itself was
// debited when the cards were dealt, so a win pays 2x the bet, a push refunds
// the bet, and a loss or bust pays nothing.
func payout(result Result, bet int) int {
	switch result {
	case ResultWin:
		return 2 * bet
	case ResultPush:
		return bet
	}

	return 0
}
