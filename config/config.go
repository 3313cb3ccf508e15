// Package config holds the tunable numbers behind the evaluator and the
// move selector. A Config is built once at start-up and never mutated.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/notnil/chess"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("config: invalid")

type Config struct {
	Weights  Weights  `yaml:"weights"`
	Material Material `yaml:"material"`
	Tables   Tables   `yaml:"tables"`
	Selector Selector `yaml:"selector"`
}

// Weights scale the individual evaluation terms. All values are in pawns.
type Weights struct {
	CenterControl  float64 `yaml:"center_control"`
	KingDistance   float64 `yaml:"king_distance"`
	EndgamePieces  int     `yaml:"endgame_pieces"`
	DoubledPawn    float64 `yaml:"doubled_pawn"`
	PassedPawn     float64 `yaml:"passed_pawn"`
	HangingPiece   float64 `yaml:"hanging_piece"`
	FavorableTrade float64 `yaml:"favorable_trade"`
	Check          float64 `yaml:"check"`
	CastlingRights float64 `yaml:"castling_rights"`
	Castled        float64 `yaml:"castled"`

	// ApplyDoubledPawns folds the doubled-pawn term into the score. The term
	// is always computed and reported either way.
	ApplyDoubledPawns bool `yaml:"apply_doubled_pawns"`
}

// Material is the value of each piece kind in pawns.
type Material struct {
	Pawn   int `yaml:"pawn"`
	Knight int `yaml:"knight"`
	Bishop int `yaml:"bishop"`
	Rook   int `yaml:"rook"`
	Queen  int `yaml:"queen"`
	King   int `yaml:"king"`
}

func (m Material) Value(t chess.PieceType) int {
	switch t {
	case chess.Pawn:
		return m.Pawn
	case chess.Knight:
		return m.Knight
	case chess.Bishop:
		return m.Bishop
	case chess.Rook:
		return m.Rook
	case chess.Queen:
		return m.Queen
	case chess.King:
		return m.King
	}
	return 0
}

// Table is an 8x8 piece-square table. Row 0 is the owner's back rank and
// column 0 the a-file; Black looks its tables up with the rows mirrored.
type Table [][]float64

// At returns the bonus for a piece of colour c on sq.
func (t Table) At(c chess.Color, sq chess.Square) float64 {
	if t == nil {
		return 0
	}
	row, col := int(sq.Rank()), int(sq.File())
	if c == chess.Black {
		row = 7 - row
	}
	return t[row][col]
}

// Tables holds one piece-square table per kind. A nil King table disables
// positional scoring of the king.
type Tables struct {
	Pawn   Table `yaml:"pawn"`
	Knight Table `yaml:"knight"`
	Bishop Table `yaml:"bishop"`
	Rook   Table `yaml:"rook"`
	Queen  Table `yaml:"queen"`
	King   Table `yaml:"king,omitempty"`
}

func (t Tables) For(pt chess.PieceType) Table {
	switch pt {
	case chess.Pawn:
		return t.Pawn
	case chess.Knight:
		return t.Knight
	case chess.Bishop:
		return t.Bishop
	case chess.Rook:
		return t.Rook
	case chess.Queen:
		return t.Queen
	case chess.King:
		return t.King
	}
	return nil
}

// Selector configures the one-ply move selector.
type Selector struct {
	// Randomness is the probability of playing a uniformly random legal move.
	Randomness float64 `yaml:"randomness"`
	// SearchSize caps how many ordered candidates get evaluated.
	SearchSize int `yaml:"search_size"`
}

// Default returns the canonical weight set.
func Default() *Config {
	return &Config{
		Weights: Weights{
			CenterControl:  0.5,
			KingDistance:   0.05,
			EndgamePieces:  10,
			DoubledPawn:    0.5,
			PassedPawn:     0.5,
			HangingPiece:   20,
			FavorableTrade: 3,
			Check:          2,
			CastlingRights: 0.5,
			Castled:        3,
		},
		Material: Material{
			Pawn:   1,
			Knight: 3,
			Bishop: 3,
			Rook:   5,
			Queen:  9,
			King:   0,
		},
		Tables: defaultTables(),
		Selector: Selector{
			Randomness: 0.1,
			SearchSize: 100,
		},
	}
}

// Load reads a YAML file on top of the defaults, so a file only needs to
// name the values it changes.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Selector.Randomness < 0 || c.Selector.Randomness > 1 {
		return fmt.Errorf("%w: randomness %v outside [0,1]", ErrInvalidConfig, c.Selector.Randomness)
	}
	if c.Selector.SearchSize < 0 {
		return fmt.Errorf("%w: negative search size %d", ErrInvalidConfig, c.Selector.SearchSize)
	}
	if c.Weights.EndgamePieces < 0 {
		return fmt.Errorf("%w: negative endgame piece count %d", ErrInvalidConfig, c.Weights.EndgamePieces)
	}
	for _, pt := range []chess.PieceType{chess.Pawn, chess.Knight, chess.Bishop, chess.Rook, chess.Queen, chess.King} {
		if c.Material.Value(pt) < 0 {
			return fmt.Errorf("%w: negative material value for %s", ErrInvalidConfig, pt)
		}
		t := c.Tables.For(pt)
		if t == nil && pt == chess.King {
			continue
		}
		if len(t) != 8 {
			return fmt.Errorf("%w: %s table has %d rows, want 8", ErrInvalidConfig, pt, len(t))
		}
		for i, row := range t {
			if len(row) != 8 {
				return fmt.Errorf("%w: %s table row %d has %d columns, want 8", ErrInvalidConfig, pt, i, len(row))
			}
		}
	}
	return nil
}
