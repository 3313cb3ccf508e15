package game

import (
	"context"
	"runtime"
	"sync"

	"greedychess/bots"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Recorder persists finished games.
type Recorder interface {
	SaveGame(r Record) (uint64, error)
}

// BotFactory builds the two players for game number i. Bots are not shared
// between games, so each game can own its random source.
type BotFactory func(i int) (white, black bots.ChessBot)

// Runner plays a batch of self-play games concurrently.
type Runner struct {
	Games     int
	Workers   int
	MaxPlies  int
	KeepDraws bool
	NewBots   BotFactory
}

type Summary struct {
	Played    int
	WhiteWins int
	BlackWins int
	Draws     int
	Saved     int
}

func (s *Summary) add(r Record) {
	s.Played++
	switch r.Winner {
	case WinnerWhite:
		s.WhiteWins++
	case WinnerBlack:
		s.BlackWins++
	default:
		s.Draws++
	}
}

// Run plays r.Games games and hands every decisive game (and draws, when
// KeepDraws is set) to rec. The first failure cancels the remaining games.
func (r *Runner) Run(ctx context.Context, rec Recorder) (Summary, error) {
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	log.Info().Int("games", r.Games).Int("workers", workers).Msg("self-play started")

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var mu sync.Mutex
	var summary Summary

	for i := 0; i < r.Games; i++ {
		i := i
		g.Go(func() error {
			white, black := r.NewBots(i)
			record, err := Play(ctx, white, black, r.MaxPlies)
			if err != nil {
				return err
			}

			mu.Lock()
			summary.add(record)
			mu.Unlock()

			log.Info().
				Int("game", i+1).
				Str("result", record.Result).
				Str("method", record.Method).
				Int("plies", record.MoveCount).
				Msg("game over")

			if !record.Decisive() && !r.KeepDraws {
				return nil
			}
			id, err := rec.SaveGame(record)
			if err != nil {
				return err
			}
			log.Debug().Uint64("id", id).Msg("game saved")

			mu.Lock()
			summary.Saved++
			mu.Unlock()
			return nil
		})
	}

	err := g.Wait()
	log.Info().
		Int("played", summary.Played).
		Int("white_wins", summary.WhiteWins).
		Int("black_wins", summary.BlackWins).
		Int("draws", summary.Draws).
		Int("saved", summary.Saved).
		Msg("self-play finished")
	return summary, err
}
