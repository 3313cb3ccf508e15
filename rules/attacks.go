package rules

import (
	"sort"

	"github.com/notnil/chess"
)

type offset struct{ df, dr int }

var (
	knightOffsets = []offset{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	kingOffsets = []offset{
		{0, 1}, {1, 1}, {1, 0}, {1, -1},
		{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
	}
	orthogonal = []offset{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	diagonal   = []offset{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
)

func squareAt(file, rank int) (chess.Square, bool) {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return chess.NoSquare, false
	}
	return chess.Square(rank*8 + file), true
}

func forward(c chess.Color) int {
	if c == chess.Black {
		return -1
	}
	return 1
}

// PawnAttacks returns the squares a pawn of colour c standing on sq attacks.
func PawnAttacks(c chess.Color, sq chess.Square) []chess.Square {
	f, r := int(sq.File()), int(sq.Rank())
	var out []chess.Square
	for _, df := range []int{-1, 1} {
		if to, ok := squareAt(f+df, r+forward(c)); ok {
			out = append(out, to)
		}
	}
	return out
}

// PawnAttacks is the board-bound form of the package function.
func (b *Board) PawnAttacks(c chess.Color, sq chess.Square) []chess.Square {
	return PawnAttacks(c, sq)
}

// Distance is the number of king moves between a and b.
func Distance(a, b chess.Square) int {
	df := abs(int(a.File()) - int(b.File()))
	dr := abs(int(a.Rank()) - int(b.Rank()))
	if df > dr {
		return df
	}
	return dr
}

// Attackers returns the squares of every piece of colour c that attacks sq,
// in ascending square order. Pins are ignored, and the piece on sq (if any)
// does not need to be of the opposite colour, so the same call yields
// defenders.
func (b *Board) Attackers(c chess.Color, sq chess.Square) []chess.Square {
	board := b.Position().Board()
	f, r := int(sq.File()), int(sq.Rank())
	var out []chess.Square

	is := func(s chess.Square, types ...chess.PieceType) bool {
		p := board.Piece(s)
		if p == chess.NoPiece || p.Color() != c {
			return false
		}
		for _, t := range types {
			if p.Type() == t {
				return true
			}
		}
		return false
	}

	// a pawn of colour c attacks sq from one rank behind it
	for _, df := range []int{-1, 1} {
		if from, ok := squareAt(f+df, r-forward(c)); ok && is(from, chess.Pawn) {
			out = append(out, from)
		}
	}
	for _, o := range knightOffsets {
		if from, ok := squareAt(f+o.df, r+o.dr); ok && is(from, chess.Knight) {
			out = append(out, from)
		}
	}
	for _, o := range kingOffsets {
		if from, ok := squareAt(f+o.df, r+o.dr); ok && is(from, chess.King) {
			out = append(out, from)
		}
	}
	slide := func(dirs []offset, types ...chess.PieceType) {
		for _, o := range dirs {
			for step := 1; ; step++ {
				from, ok := squareAt(f+o.df*step, r+o.dr*step)
				if !ok {
					break
				}
				if board.Piece(from) == chess.NoPiece {
					continue
				}
				if is(from, types...) {
					out = append(out, from)
				}
				break
			}
		}
	}
	slide(orthogonal, chess.Rook, chess.Queen)
	slide(diagonal, chess.Bishop, chess.Queen)

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsAttackedBy reports whether any piece of colour c attacks sq.
func (b *Board) IsAttackedBy(c chess.Color, sq chess.Square) bool {
	return len(b.Attackers(c, sq)) > 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
