package bots

import (
	"github.com/notnil/chess"
	"golang.org/x/exp/rand"
)

// RandomBot plays a uniformly random legal move.
type RandomBot struct {
	rng *rand.Rand
}

func NewRandomBot(rng *rand.Rand) *RandomBot {
	return &RandomBot{rng: rng}
}

func (b *RandomBot) BestMove(game *chess.Game) (*chess.Move, error) {
	if game == nil {
		return nil, ErrNoLegalMoves
	}
	moves := game.ValidMoves()
	if len(moves) == 0 {
		return nil, ErrNoLegalMoves
	}
	return moves[b.rng.Intn(len(moves))], nil
}

func (b *RandomBot) Name() string {
	return "Random Bot"
}
