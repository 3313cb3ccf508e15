package bots

import (
	"sort"

	"greedychess/config"

	"github.com/notnil/chess"
)

type scoredMove struct {
	move *chess.Move
	key  int
}

// MVVLVA ranks a capture by victim value minus attacker value. Quiet moves
// rank 0. En passant captures are resolved through the board.
func MVVLVA(board SearchBoard, m *chess.Move, values config.Material) int {
	victim := board.CapturedPiece(m)
	attacker := board.MovingPiece(m)
	if victim == chess.NoPiece || attacker == chess.NoPiece {
		return 0
	}
	return values.Value(victim.Type()) - values.Value(attacker.Type())
}

// OrderMoves returns a copy of moves sorted by descending MVV-LVA key.
// Moves with equal keys keep their generation order.
func OrderMoves(board SearchBoard, moves []*chess.Move, values config.Material) []*chess.Move {
	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		scored[i] = scoredMove{move: m, key: MVVLVA(board, m, values)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].key > scored[j].key
	})

	ordered := make([]*chess.Move, len(scored))
	for i, sm := range scored {
		ordered[i] = sm.move
	}
	return ordered
}
