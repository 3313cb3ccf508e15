package bots

import (
	"fmt"
	"testing"

	"greedychess/config"
	"greedychess/rules"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/require"
)

func board(t *testing.T, fen string) *rules.Board {
	t.Helper()
	b, err := rules.FromFEN(fen)
	require.NoError(t, err)
	return b
}

func explain(t *testing.T, cfg *config.Config, fen string) Breakdown {
	t.Helper()
	br, err := NewEvaluator(cfg).Explain(board(t, fen))
	require.NoError(t, err)
	return br
}

type kinglessBoard struct {
	*rules.Board
}

func (kinglessBoard) King(c chess.Color) (chess.Square, error) {
	return chess.NoSquare, fmt.Errorf("%w: no king", rules.ErrInvalidState)
}

func TestEvaluateStartingPosition(t *testing.T) {
	br := explain(t, config.Default(), "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")

	// only the centre and castling terms may contribute, and both balance out
	require.InDelta(t, 0, br.Total-br.Center-br.CastlingRights, 1e-9)
	require.InDelta(t, 0, br.Total, 1e-9)
	require.InDelta(t, 0, br.Material, 1e-9)
	require.Zero(t, br.Hanging)
	require.Zero(t, br.Trades)
	require.Zero(t, br.Check)
	require.Zero(t, br.KingDistance)
}

func TestEvaluatePure(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4",
		"4k3/5p2/4p3/3Q4/8/8/8/4K3 w - - 0 1",
	}
	ev := NewEvaluator(config.Default())
	for _, fen := range fens {
		b := board(t, fen)
		first, err := ev.Evaluate(b)
		require.NoError(t, err)
		second, err := ev.Evaluate(b)
		require.NoError(t, err)

		require.Equal(t, first, second, "scores must be bit-identical")
		require.Equal(t, fen, b.FEN())
		require.Equal(t, 0, b.Depth())
	}
}

func TestEvaluateHangingQueen(t *testing.T) {
	cfg := config.Default()

	// the d5 queen is attacked by the e6 pawn and nothing defends it
	hanging := explain(t, cfg, "4k3/5p2/4p3/3Q4/8/8/8/4K3 w - - 0 1")
	require.Equal(t, -cfg.Weights.HangingPiece*9, hanging.Hanging)

	// same position with the queen guarded from c4
	guarded := explain(t, cfg, "4k3/5p2/4p3/3Q4/2P5/8/8/4K3 w - - 0 1")
	require.Zero(t, guarded.Hanging)
}

func TestEvaluateCheck(t *testing.T) {
	cfg := config.Default()

	whiteChecked := explain(t, cfg, "4k3/8/8/8/8/8/8/r3K3 w - - 0 1")
	require.Equal(t, -cfg.Weights.Check, whiteChecked.Check)

	quiet := explain(t, cfg, "4k3/8/8/8/8/8/r7/4K3 w - - 0 1")
	require.Zero(t, quiet.Check)

	blackChecked := explain(t, cfg, "R3k3/8/8/8/8/8/8/4K3 b - - 0 1")
	require.Equal(t, cfg.Weights.Check, blackChecked.Check)
}

func TestEvaluateTerms(t *testing.T) {
	cfg := config.Default()

	t.Run("centre control", func(t *testing.T) {
		// the d1 queen covers d4 and d5
		br := explain(t, cfg, "4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
		require.InDelta(t, 2*cfg.Weights.CenterControl, br.Center, 1e-9)
	})

	t.Run("king distance in the endgame", func(t *testing.T) {
		br := explain(t, cfg, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
		require.InDelta(t, 7*cfg.Weights.KingDistance, br.KingDistance, 1e-9)

		full := explain(t, cfg, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
		require.Zero(t, full.KingDistance)

		// ten pieces is still an endgame, eleven is not
		ten := explain(t, cfg, "4k3/pppp4/8/8/8/8/PPPP4/4K3 w - - 0 1")
		require.InDelta(t, 7*cfg.Weights.KingDistance, ten.KingDistance, 1e-9)

		eleven := explain(t, cfg, "4k3/ppppp3/8/8/8/8/PPPP4/4K3 w - - 0 1")
		require.Zero(t, eleven.KingDistance)
	})

	t.Run("passed pawns", func(t *testing.T) {
		free := explain(t, cfg, "4k3/8/8/8/4P3/8/8/4K3 w - - 0 1")
		require.InDelta(t, 3*cfg.Weights.PassedPawn, free.PassedPawns, 1e-9)

		// the black-pawn pattern from e4 covers d3, and the white-pawn
		// pattern from d3 covers e4, so neither pawn is passed
		blocked := explain(t, cfg, "4k3/8/8/8/4P3/3p4/8/4K3 w - - 0 1")
		require.Zero(t, blocked.PassedPawns)

		// e5 and d6 touch only through squares ahead of each pawn, which the
		// enemy pattern does not cover: both are passed
		// white e5: +2 ranks, black d6: -4 ranks
		facing := explain(t, cfg, "4k3/8/3p4/4P3/8/8/8/4K3 w - - 0 1")
		require.InDelta(t, -2*cfg.Weights.PassedPawn, facing.PassedPawns, 1e-9)
	})

	t.Run("favourable trade", func(t *testing.T) {
		// the d5 knight is guarded only by the queen and attacked by a pawn
		br := explain(t, cfg, "3qk3/8/8/3n4/4P3/8/8/4K3 w - - 0 1")
		require.InDelta(t, cfg.Weights.FavorableTrade*8, br.Trades, 1e-9)
		require.Zero(t, br.Hanging)
	})

	t.Run("castled king", func(t *testing.T) {
		br := explain(t, cfg, "4k3/8/8/8/8/8/8/6K1 w - - 0 1")
		require.Equal(t, cfg.Weights.Castled, br.Castled)

		both := explain(t, cfg, "2k5/8/8/8/8/8/8/6K1 w - - 0 1")
		require.Zero(t, both.Castled)
	})

	t.Run("castling rights", func(t *testing.T) {
		br := explain(t, cfg, "r3k3/8/8/8/8/8/8/4K2R w K - 0 1")
		require.Equal(t, cfg.Weights.CastlingRights, br.CastlingRights)

		br = explain(t, cfg, "r3k3/8/8/8/8/8/8/4K2R w - - 0 1")
		require.Zero(t, br.CastlingRights)

		br = explain(t, cfg, "r3k3/8/8/8/8/8/8/4K2R w q - 0 1")
		require.Equal(t, -cfg.Weights.CastlingRights, br.CastlingRights)
	})
}

func TestEvaluateDoubledPawns(t *testing.T) {
	const fen = "4k3/8/8/8/4P3/4P3/8/4K3 w - - 0 1"

	cfg := config.Default()
	off := explain(t, cfg, fen)
	require.Equal(t, -cfg.Weights.DoubledPawn, off.DoubledPawns)

	cfg.Weights.ApplyDoubledPawns = true
	on := explain(t, cfg, fen)
	require.Equal(t, off.DoubledPawns, on.DoubledPawns)
	require.InDelta(t, off.Total+off.DoubledPawns, on.Total, 1e-9)
}

func TestEvaluateInvalidState(t *testing.T) {
	ev := NewEvaluator(config.Default())
	_, err := ev.Evaluate(kinglessBoard{rules.NewBoard()})
	require.ErrorIs(t, err, rules.ErrInvalidState)
}

func TestEvaluateWithoutKingTable(t *testing.T) {
	cfg := config.Default()
	cfg.Tables.King = nil

	withTable := explain(t, config.Default(), "4k3/8/8/8/8/8/8/6K1 w - - 0 1")
	without := explain(t, cfg, "4k3/8/8/8/8/8/8/6K1 w - - 0 1")
	require.InDelta(t, 0.30, withTable.Material, 1e-9)
	require.Zero(t, without.Material)
}
