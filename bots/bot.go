// bot.go
package bots

import (
	"errors"

	"github.com/notnil/chess"
)

// ErrNoLegalMoves is returned when a bot is asked to move in a finished game.
var ErrNoLegalMoves = errors.New("bots: no legal moves")

// ChessBot интерфейс для всех ботов
type ChessBot interface {
	BestMove(game *chess.Game) (*chess.Move, error)
	Name() string
}

// Position is the read-only view of a board the evaluator consumes.
// *rules.Board implements it.
type Position interface {
	Turn() chess.Color
	PieceAt(sq chess.Square) chess.Piece
	PieceCount() int
	King(c chess.Color) (chess.Square, error)
	Attackers(c chess.Color, sq chess.Square) []chess.Square
	IsAttackedBy(c chess.Color, sq chess.Square) bool
	InCheck() bool
	HasCastlingRights(c chess.Color) bool
	PawnAttacks(c chess.Color, sq chess.Square) []chess.Square
}

// SearchBoard is a Position that can list its legal moves and play them
// speculatively. Every Apply must be paired with a call to the returned undo.
type SearchBoard interface {
	Position
	LegalMoves() []*chess.Move
	Apply(m *chess.Move) (undo func())
	MovingPiece(m *chess.Move) chess.Piece
	CapturedPiece(m *chess.Move) chess.Piece
}

// PositionEvaluator defines the interface for position evaluation.
// Positive scores favour White.
type PositionEvaluator interface {
	Evaluate(pos Position) (float64, error)
}

// MoveOnClone asks bot for a move on a private copy of game, so game stays
// readable (and drawable) while the bot thinks. The move still has to be
// played on game by the caller.
func MoveOnClone(bot ChessBot, game *chess.Game) (*chess.Move, error) {
	if game == nil {
		return nil, ErrNoLegalMoves
	}
	return bot.BestMove(game.Clone())
}
