package bots

import (
	"fmt"

	"greedychess/config"
	"greedychess/rules"

	"github.com/notnil/chess"
)

var centerSquares = [...]chess.Square{chess.D4, chess.E4, chess.D5, chess.E5}

// Evaluator scores a position as a sum of independent heuristic terms,
// from White's point of view. It never modifies the position.
type Evaluator struct {
	w        config.Weights
	material config.Material
	tables   config.Tables
}

func NewEvaluator(cfg *config.Config) *Evaluator {
	return &Evaluator{
		w:        cfg.Weights,
		material: cfg.Material,
		tables:   cfg.Tables,
	}
}

// Breakdown is the contribution of each term to a score.
type Breakdown struct {
	Center         float64
	KingDistance   float64
	DoubledPawns   float64
	PassedPawns    float64
	Material       float64 // material plus piece-square bonuses
	Hanging        float64
	Trades         float64
	Check          float64
	CastlingRights float64
	Castled        float64

	// Total is the score; it leaves DoubledPawns out unless configured.
	Total float64
}

func (e *Evaluator) Evaluate(pos Position) (float64, error) {
	br, err := e.Explain(pos)
	if err != nil {
		return 0, err
	}
	return br.Total, nil
}

// Explain evaluates pos and returns every term separately.
func (e *Evaluator) Explain(pos Position) (Breakdown, error) {
	whiteKing, err := pos.King(chess.White)
	if err != nil {
		return Breakdown{}, fmt.Errorf("evaluate: %w", err)
	}
	blackKing, err := pos.King(chess.Black)
	if err != nil {
		return Breakdown{}, fmt.Errorf("evaluate: %w", err)
	}

	var br Breakdown
	br.Center = e.centerControl(pos)
	br.KingDistance = e.kingDistance(pos, whiteKing, blackKing)
	br.DoubledPawns = e.doubledPawns(pos)
	br.PassedPawns = e.passedPawns(pos)
	br.Material, br.Hanging, br.Trades = e.pieces(pos)
	br.Check = e.check(pos)
	br.CastlingRights = e.castlingRights(pos)
	br.Castled = e.castled(whiteKing, blackKing)

	br.Total = br.Center + br.KingDistance + br.PassedPawns + br.Material +
		br.Hanging + br.Trades + br.Check + br.CastlingRights + br.Castled
	if e.w.ApplyDoubledPawns {
		br.Total += br.DoubledPawns
	}
	return br, nil
}

func sign(c chess.Color) float64 {
	if c == chess.White {
		return 1
	}
	return -1
}

func (e *Evaluator) value(t chess.PieceType) float64 {
	return float64(e.material.Value(t))
}

func (e *Evaluator) centerControl(pos Position) float64 {
	var score float64
	for _, sq := range centerSquares {
		if pos.IsAttackedBy(chess.White, sq) {
			score += e.w.CenterControl
		}
		if pos.IsAttackedBy(chess.Black, sq) {
			score -= e.w.CenterControl
		}
	}
	return score
}

// Сближение королей в эндшпиле
func (e *Evaluator) kingDistance(pos Position, whiteKing, blackKing chess.Square) float64 {
	if pos.PieceCount() > e.w.EndgamePieces {
		return 0
	}
	return e.w.KingDistance * float64(rules.Distance(whiteKing, blackKing))
}

func (e *Evaluator) doubledPawns(pos Position) float64 {
	var white, black [8]int
	for sq := chess.A1; sq <= chess.H8; sq++ {
		switch pos.PieceAt(sq) {
		case chess.WhitePawn:
			white[sq.File()]++
		case chess.BlackPawn:
			black[sq.File()]++
		}
	}

	var score float64
	for file := 0; file < 8; file++ {
		if white[file] > 1 {
			score -= e.w.DoubledPawn * float64(white[file]-1)
		}
		if black[file] > 1 {
			score += e.w.DoubledPawn * float64(black[file]-1)
		}
	}
	return score
}

// A pawn counts as passed when the enemy pawn-attack pattern taken from its
// square holds no enemy pawn. The bonus grows with the number of ranks left
// between the pawn and its promotion rank.
func (e *Evaluator) passedPawns(pos Position) float64 {
	var score float64
	for sq := chess.A1; sq <= chess.H8; sq++ {
		p := pos.PieceAt(sq)
		if p.Type() != chess.Pawn {
			continue
		}
		c := p.Color()
		enemy := chess.BlackPawn
		if c == chess.Black {
			enemy = chess.WhitePawn
		}

		passed := true
		for _, from := range pos.PawnAttacks(c.Other(), sq) {
			if pos.PieceAt(from) == enemy {
				passed = false
				break
			}
		}
		if passed {
			score += sign(c) * e.w.PassedPawn * float64(ranksFromPromotion(c, sq))
		}
	}
	return score
}

func ranksFromPromotion(c chess.Color, sq chess.Square) int {
	if c == chess.White {
		return 6 - int(sq.Rank())
	}
	return int(sq.Rank()) - 1
}

// pieces walks the occupied squares once and returns the material,
// hanging-piece and favourable-trade terms.
func (e *Evaluator) pieces(pos Position) (material, hanging, trades float64) {
	for sq := chess.A1; sq <= chess.H8; sq++ {
		p := pos.PieceAt(sq)
		if p == chess.NoPiece {
			continue
		}
		c := p.Color()

		value := e.value(p.Type()) + e.tables.For(p.Type()).At(c, sq)
		material += sign(c) * value

		defenders := pos.Attackers(c, sq)
		attackers := pos.Attackers(c.Other(), sq)
		if len(attackers) == 0 {
			continue
		}
		if len(defenders) == 0 {
			hanging -= sign(c) * e.w.HangingPiece * e.value(p.Type())
			continue
		}

		weakestAttacker := e.weakest(pos, attackers)
		weakestDefender := e.weakest(pos, defenders)
		if weakestAttacker < weakestDefender {
			trades -= sign(c) * e.w.FavorableTrade * (weakestDefender - weakestAttacker)
		}
	}
	return material, hanging, trades
}

func (e *Evaluator) weakest(pos Position, squares []chess.Square) float64 {
	lowest := e.value(pos.PieceAt(squares[0]).Type())
	for _, sq := range squares[1:] {
		if v := e.value(pos.PieceAt(sq).Type()); v < lowest {
			lowest = v
		}
	}
	return lowest
}

func (e *Evaluator) check(pos Position) float64 {
	if !pos.InCheck() {
		return 0
	}
	return -sign(pos.Turn()) * e.w.Check
}

func (e *Evaluator) castlingRights(pos Position) float64 {
	var score float64
	if pos.HasCastlingRights(chess.White) {
		score += e.w.CastlingRights
	}
	if pos.HasCastlingRights(chess.Black) {
		score -= e.w.CastlingRights
	}
	return score
}

func (e *Evaluator) castled(whiteKing, blackKing chess.Square) float64 {
	var score float64
	if whiteKing == chess.G1 || whiteKing == chess.C1 {
		score += e.w.Castled
	}
	if blackKing == chess.G8 || blackKing == chess.C8 {
		score -= e.w.Castled
	}
	return score
}
