package bots

import (
	"testing"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestRandomBot(t *testing.T) {
	t.Run("plays legal moves", func(t *testing.T) {
		game := chess.NewGame()
		bot := NewRandomBot(rand.New(rand.NewSource(1)))
		for i := 0; i < 20 && game.Outcome() == chess.NoOutcome; i++ {
			m, err := bot.BestMove(game)
			require.NoError(t, err)
			require.NoError(t, game.Move(m))
		}
	})

	t.Run("finished game", func(t *testing.T) {
		opt, err := chess.FEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
		require.NoError(t, err)
		_, err = NewRandomBot(rand.New(rand.NewSource(1))).BestMove(chess.NewGame(opt))
		require.ErrorIs(t, err, ErrNoLegalMoves)
	})
}

// greedyPlayer plays its own choice on the game it is handed.
type greedyPlayer struct {
	ChessBot
}

func (p greedyPlayer) BestMove(game *chess.Game) (*chess.Move, error) {
	m, err := p.ChessBot.BestMove(game)
	if err != nil {
		return nil, err
	}
	return m, game.Move(m)
}

func TestMoveOnClone(t *testing.T) {
	game := chess.NewGame()
	require.NoError(t, game.MoveStr("e4"))
	before := game.Position().String()

	bot := greedyPlayer{NewRandomBot(rand.New(rand.NewSource(3)))}
	m, err := MoveOnClone(bot, game)
	require.NoError(t, err)

	require.Equal(t, before, game.Position().String())
	require.Len(t, game.Moves(), 1)
	require.NoError(t, game.Move(m))
	require.Len(t, game.Moves(), 2)

	_, err = MoveOnClone(bot, nil)
	require.ErrorIs(t, err, ErrNoLegalMoves)
}
