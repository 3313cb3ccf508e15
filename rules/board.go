// Package rules adapts github.com/notnil/chess to the queries the bots need:
// speculative apply/undo, attacker sets, king squares and castling state.
package rules

import (
	"errors"
	"fmt"

	"github.com/notnil/chess"
)

// ErrInvalidState is returned when a position is inconsistent with the rules,
// e.g. a side has no king or the FEN cannot be parsed.
var ErrInvalidState = errors.New("rules: invalid board state")

// Board is a position plus the stack of positions reached through Apply.
// notnil/chess positions are immutable, so undoing a move is just dropping
// the top of the stack.
type Board struct {
	stack []*chess.Position
}

// NewBoard returns a board in the standard starting position.
func NewBoard() *Board {
	return FromPosition(chess.NewGame().Position())
}

// FromPosition wraps an existing position.
func FromPosition(pos *chess.Position) *Board {
	return &Board{stack: []*chess.Position{pos}}
}

// FromFEN parses fen into a board.
func FromFEN(fen string) (*Board, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	return FromPosition(chess.NewGame(opt).Position()), nil
}

// Position returns the current position.
func (b *Board) Position() *chess.Position {
	return b.stack[len(b.stack)-1]
}

// Depth is the number of moves currently applied on top of the root position.
// Callers use it to check that every Apply was undone.
func (b *Board) Depth() int {
	return len(b.stack) - 1
}

func (b *Board) Turn() chess.Color {
	return b.Position().Turn()
}

func (b *Board) FEN() string {
	return b.Position().String()
}

// LegalMoves lists the legal moves in the current position.
func (b *Board) LegalMoves() []*chess.Move {
	return b.Position().ValidMoves()
}

// Apply plays m on top of the current position. The returned function
// restores the board to exactly the state it had before the call. m must be
// one of LegalMoves; it is not validated here.
func (b *Board) Apply(m *chess.Move) (undo func()) {
	depth := len(b.stack)
	b.stack = append(b.stack, b.Position().Update(m))
	return func() {
		b.stack = b.stack[:depth]
	}
}

func (b *Board) PieceAt(sq chess.Square) chess.Piece {
	return b.Position().Board().Piece(sq)
}

// PieceCount is the number of pieces on the board, kings included.
func (b *Board) PieceCount() int {
	board := b.Position().Board()
	n := 0
	for sq := chess.A1; sq <= chess.H8; sq++ {
		if board.Piece(sq) != chess.NoPiece {
			n++
		}
	}
	return n
}

// King returns the square of the king of colour c.
func (b *Board) King(c chess.Color) (chess.Square, error) {
	board := b.Position().Board()
	for sq := chess.A1; sq <= chess.H8; sq++ {
		p := board.Piece(sq)
		if p.Type() == chess.King && p.Color() == c {
			return sq, nil
		}
	}
	return chess.NoSquare, fmt.Errorf("%w: no %s king", ErrInvalidState, colorName(c))
}

// InCheck reports whether the side to move is in check. A board without a
// king for the side to move is never in check.
func (b *Board) InCheck() bool {
	turn := b.Turn()
	king, err := b.King(turn)
	if err != nil {
		return false
	}
	return b.IsAttackedBy(turn.Other(), king)
}

// HasCastlingRights reports whether c may still castle on either wing.
func (b *Board) HasCastlingRights(c chess.Color) bool {
	cr := b.Position().CastleRights()
	return cr.CanCastle(c, chess.KingSide) || cr.CanCastle(c, chess.QueenSide)
}

// MovingPiece is the piece standing on the origin square of m.
func (b *Board) MovingPiece(m *chess.Move) chess.Piece {
	return b.PieceAt(m.S1())
}

// CapturedPiece is the piece removed by m, or chess.NoPiece for quiet moves.
// For en passant the victim stands on the destination file and origin rank.
func (b *Board) CapturedPiece(m *chess.Move) chess.Piece {
	if m.HasTag(chess.EnPassant) {
		return b.PieceAt(chess.NewSquare(m.S2().File(), m.S1().Rank()))
	}
	return b.PieceAt(m.S2())
}

func colorName(c chess.Color) string {
	switch c {
	case chess.White:
		return "white"
	case chess.Black:
		return "black"
	}
	return "unknown"
}
