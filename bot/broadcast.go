package bot

import "github.com/gpng/quip-bot/models"

// suppressProbability applies to every chat that is not private
const suppressProbability = 0.6

// SendDecision of the broadcast policy
type SendDecision int

// decisions
const (
	DecisionSend SendDecision = iota
	DecisionSuppress
)

// Decide whether to answer a non command message. Private chats always get
// an answer; group chats draw once.
func Decide(msg *models.Message, r Rand) SendDecision {
	if msg.IsPrivate() {
		return DecisionSend
	}
	if r.Float64() < suppressProbability {
		return DecisionSuppress
	}
	return DecisionSend
}

// PickQuip selects one quip uniformly at random
func PickQuip(quips []models.Quip, r Rand) (models.Quip, bool) {
	if len(quips) == 0 {
		return models.Quip{}, false
	}
	return quips[r.Intn(len(quips))], true
}

func (d *Dispatcher) broadcast(inv *invocation, msg *models.Message) Result {
	if Decide(msg, d.rnd) == DecisionSuppress {
		inv.logger.Debug("broadcast suppressed")
		return ResultSuppressed
	}

	quips, err := d.store.Scan(inv.ctx)
	if err != nil {
		inv.fail(stageStoreScan, err, "error fetching quips")
		return ResultAborted
	}

	// unlike /list, an empty store is never announced
	quip, ok := PickQuip(quips, d.rnd)
	if !ok {
		return ResultNothingToSend
	}

	inv.send(quip.Text, "")

	return ResultBroadcast
}
