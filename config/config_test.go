package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "weights.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	require.Equal(t, 1, cfg.Material.Value(chess.Pawn))
	require.Equal(t, 3, cfg.Material.Value(chess.Knight))
	require.Equal(t, 3, cfg.Material.Value(chess.Bishop))
	require.Equal(t, 5, cfg.Material.Value(chess.Rook))
	require.Equal(t, 9, cfg.Material.Value(chess.Queen))
	require.Equal(t, 0, cfg.Material.Value(chess.King))
	require.Equal(t, 0, cfg.Material.Value(chess.NoPieceType))

	require.False(t, cfg.Weights.ApplyDoubledPawns)
	require.Equal(t, 0.1, cfg.Selector.Randomness)
	require.Equal(t, 100, cfg.Selector.SearchSize)
}

func TestTableMirroring(t *testing.T) {
	pawn := Default().Tables.Pawn

	// e2 for White and e7 for Black are the same table cell
	require.Equal(t, pawn.At(chess.White, chess.E2), pawn.At(chess.Black, chess.E7))
	require.Equal(t, -0.20, pawn.At(chess.White, chess.E2))
	require.Equal(t, 0.50, pawn.At(chess.White, chess.A7))
	require.Equal(t, 0.50, pawn.At(chess.Black, chess.A2))

	var none Table
	require.Zero(t, none.At(chess.White, chess.E4))
}

func TestLoad(t *testing.T) {
	t.Run("overrides only what the file names", func(t *testing.T) {
		path := writeFile(t, `
weights:
  center_control: 0.3
  apply_doubled_pawns: true
selector:
  search_size: 12
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, 0.3, cfg.Weights.CenterControl)
		require.True(t, cfg.Weights.ApplyDoubledPawns)
		require.Equal(t, 12, cfg.Selector.SearchSize)

		def := Default()
		require.Equal(t, def.Weights.HangingPiece, cfg.Weights.HangingPiece)
		require.Equal(t, def.Selector.Randomness, cfg.Selector.Randomness)
		require.Equal(t, def.Tables.Knight, cfg.Tables.Knight)
	})

	t.Run("rejects out of range randomness", func(t *testing.T) {
		path := writeFile(t, "selector:\n  randomness: 1.5\n")
		_, err := Load(path)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("rejects a short table", func(t *testing.T) {
		path := writeFile(t, "tables:\n  rook:\n    - [0, 0, 0, 0, 0, 0, 0, 0]\n")
		_, err := Load(path)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}

func TestValidateKingTableOptional(t *testing.T) {
	cfg := Default()
	cfg.Tables.King = nil
	require.NoError(t, cfg.Validate())

	cfg.Tables.Queen = nil
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}
