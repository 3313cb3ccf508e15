package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"greedychess/bots"
	"greedychess/config"
	"greedychess/game"
	"greedychess/storage"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Options struct {
	Games      int
	Workers    int
	MaxPlies   int
	KeepDraws  bool
	ConfigPath string
	DBDir      string
	InMemory   bool
	CSVPath    string
	Seed       uint64
	Verbose    bool
}

var opts Options

func main() {
	flag.IntVar(&opts.Games, "games", 100, "Number of games to play")
	flag.IntVar(&opts.Workers, "workers", 0, "Games played in parallel (0 = number of CPUs)")
	flag.IntVar(&opts.MaxPlies, "max-plies", 500, "Stop a game as a draw after this many half-moves (0 = no limit)")
	flag.BoolVar(&opts.KeepDraws, "keep-draws", false, "Also store drawn games")
	flag.StringVar(&opts.ConfigPath, "config", "", "YAML file with evaluator weights and selector settings")
	flag.StringVar(&opts.DBDir, "db", "", "Game database directory (default: user data dir)")
	flag.BoolVar(&opts.InMemory, "mem", false, "Keep games in memory only")
	flag.StringVar(&opts.CSVPath, "csv", "", "Export every stored game to this CSV file")
	flag.Uint64Var(&opts.Seed, "seed", 0, "Random seed (0 = time based)")
	flag.BoolVar(&opts.Verbose, "v", false, "Verbose logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if opts.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("self-play failed")
	}
}

func run() error {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		var err error
		cfg, err = config.Load(opts.ConfigPath)
		if err != nil {
			return err
		}
	}

	dir := opts.DBDir
	if dir == "" && !opts.InMemory {
		var err error
		dir, err = storage.DefaultGamesDir()
		if err != nil {
			return err
		}
	}
	if opts.InMemory {
		dir = ""
	}
	store, err := storage.Open(dir)
	if err != nil {
		return err
	}
	defer store.Close()

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Info().Uint64("seed", seed).Str("db", dir).Msg("starting")

	runner := &game.Runner{
		Games:     opts.Games,
		Workers:   opts.Workers,
		MaxPlies:  opts.MaxPlies,
		KeepDraws: opts.KeepDraws,
		NewBots: func(i int) (bots.ChessBot, bots.ChessBot) {
			base := seed + 2*uint64(i)
			return bots.NewGreedyBot(cfg, rand.New(rand.NewSource(base))),
				bots.NewGreedyBot(cfg, rand.New(rand.NewSource(base+1)))
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if _, err := runner.Run(ctx, store); err != nil {
		return err
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	log.Info().
		Int("games", stats.Games).
		Int("white_wins", stats.WhiteWins).
		Int("black_wins", stats.BlackWins).
		Int("draws", stats.Draws).
		Float64("avg_plies", stats.AverageLength()).
		Msg("database totals")

	if opts.CSVPath == "" {
		return nil
	}
	f, err := os.Create(opts.CSVPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := store.ExportCSV(f); err != nil {
		return err
	}
	log.Info().Str("path", opts.CSVPath).Msg("games exported")
	return nil
}
