// Package game drives bot-versus-bot games and records how they ended.
package game

import (
	"context"
	"fmt"
	"time"

	"greedychess/bots"

	"github.com/notnil/chess"
)

// MethodMaxPlies marks a game cut off by the ply limit rather than the rules.
const MethodMaxPlies = "MaxPlies"

const (
	WinnerWhite = "White"
	WinnerBlack = "Black"
	WinnerDraw  = "Draw"
)

// Record is a finished game.
type Record struct {
	ID            uint64    `json:"id"`
	White         string    `json:"white"`
	Black         string    `json:"black"`
	Winner        string    `json:"winner"`
	Result        string    `json:"result"`
	Method        string    `json:"method"`
	MoveCount     int       `json:"move_count"`
	Moves         []string  `json:"moves"`
	FinalPosition string    `json:"final_position"`
	PlayedAt      time.Time `json:"played_at"`
}

// Decisive reports whether one side won.
func (r Record) Decisive() bool {
	return r.Winner == WinnerWhite || r.Winner == WinnerBlack
}

// Play runs a single game from the starting position until the rules end it
// or maxPlies half-moves have been played (0 means no limit). MoveCount
// counts plies and Moves holds them in SAN.
func Play(ctx context.Context, white, black bots.ChessBot, maxPlies int) (Record, error) {
	g := chess.NewGame()
	var moves []string

	for g.Outcome() == chess.NoOutcome {
		if err := ctx.Err(); err != nil {
			return Record{}, err
		}
		if maxPlies > 0 && len(moves) >= maxPlies {
			break
		}

		bot := white
		if g.Position().Turn() == chess.Black {
			bot = black
		}
		move, err := bot.BestMove(g)
		if err != nil {
			return Record{}, fmt.Errorf("game: %s at ply %d: %w", bot.Name(), len(moves)+1, err)
		}
		san := chess.AlgebraicNotation{}.Encode(g.Position(), move)
		if err := g.Move(move); err != nil {
			return Record{}, fmt.Errorf("game: %s played %s at ply %d: %w", bot.Name(), move, len(moves)+1, err)
		}
		moves = append(moves, san)
	}

	r := Record{
		White:         white.Name(),
		Black:         black.Name(),
		Result:        g.Outcome().String(),
		Method:        fmt.Sprint(g.Method()),
		MoveCount:     len(moves),
		Moves:         moves,
		FinalPosition: g.Position().String(),
		PlayedAt:      time.Now().UTC(),
	}
	switch g.Outcome() {
	case chess.WhiteWon:
		r.Winner = WinnerWhite
	case chess.BlackWon:
		r.Winner = WinnerBlack
	case chess.NoOutcome:
		r.Winner = WinnerDraw
		r.Method = MethodMaxPlies
	default:
		r.Winner = WinnerDraw
	}
	return r, nil
}
