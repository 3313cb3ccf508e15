package bots

import (
	"fmt"
	"math"

	"greedychess/config"
	"greedychess/rules"

	"github.com/notnil/chess"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// GreedyBot picks the move whose resulting position evaluates best, looking
// exactly one ply ahead. It does not search the opponent's
// replies: SearchSize trades strength for speed by evaluating only the first
// candidates after capture ordering.
//
// A GreedyBot owns its random source and must not be shared between
// goroutines.
type GreedyBot struct {
	Evaluator  PositionEvaluator
	Material   config.Material
	Randomness float64
	SearchSize int

	rng *rand.Rand
}

func NewGreedyBot(cfg *config.Config, rng *rand.Rand) *GreedyBot {
	return &GreedyBot{
		Evaluator:  NewEvaluator(cfg),
		Material:   cfg.Material,
		Randomness: cfg.Selector.Randomness,
		SearchSize: cfg.Selector.SearchSize,
		rng:        rng,
	}
}

func (b *GreedyBot) Name() string {
	return fmt.Sprintf("Greedy Bot (search %d, random %.2f)", b.SearchSize, b.Randomness)
}

func (b *GreedyBot) BestMove(game *chess.Game) (*chess.Move, error) {
	if game == nil {
		return nil, ErrNoLegalMoves
	}
	return b.SelectMove(rules.FromPosition(game.Position()))
}

// SelectMove returns the move to play on board. The board is left exactly as
// it was found.
func (b *GreedyBot) SelectMove(board SearchBoard) (*chess.Move, error) {
	legal := board.LegalMoves()
	if len(legal) == 0 {
		return nil, ErrNoLegalMoves
	}

	// Сначала выгодные взятия
	ordered := OrderMoves(board, legal, b.Material)
	candidates := ordered
	if n := max(b.SearchSize, 0); n < len(candidates) {
		candidates = candidates[:n]
	}

	if b.rng.Float64() < b.Randomness {
		return b.randomMove(ordered), nil
	}

	maximizing := board.Turn() == chess.White
	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}
	var bestMove *chess.Move

	for _, m := range candidates {
		score, err := b.scoreMove(board, m)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("move", m.String()).Float64("score", score).Msg("candidate")

		if (maximizing && score > best) || (!maximizing && score < best) {
			best, bestMove = score, m
		}
	}

	if bestMove == nil {
		return b.randomMove(ordered), nil
	}
	return bestMove, nil
}

// scoreMove evaluates the position after m and takes m back on every path.
func (b *GreedyBot) scoreMove(board SearchBoard, m *chess.Move) (float64, error) {
	undo := board.Apply(m)
	defer undo()
	return b.Evaluator.Evaluate(board)
}

func (b *GreedyBot) randomMove(moves []*chess.Move) *chess.Move {
	return moves[b.rng.Intn(len(moves))]
}
