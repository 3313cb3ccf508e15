package config

// Piece-square tables after the "simplified evaluation function", scaled to
// pawns. Rows run from the owner's back rank (row 0) towards the enemy.

func defaultTables() Tables {
	return Tables{
		Pawn: Table{
			{0, 0, 0, 0, 0, 0, 0, 0},
			{0.05, 0.10, 0.10, -0.20, -0.20, 0.10, 0.10, 0.05},
			{0.05, -0.05, -0.10, 0, 0, -0.10, -0.05, 0.05},
			{0, 0, 0, 0.20, 0.20, 0, 0, 0},
			{0.05, 0.05, 0.10, 0.25, 0.25, 0.10, 0.05, 0.05},
			{0.10, 0.10, 0.20, 0.30, 0.30, 0.20, 0.10, 0.10},
			{0.50, 0.50, 0.50, 0.50, 0.50, 0.50, 0.50, 0.50},
			{0, 0, 0, 0, 0, 0, 0, 0},
		},
		Knight: Table{
			{-0.50, -0.40, -0.30, -0.30, -0.30, -0.30, -0.40, -0.50},
			{-0.40, -0.20, 0, 0.05, 0.05, 0, -0.20, -0.40},
			{-0.30, 0.05, 0.10, 0.15, 0.15, 0.10, 0.05, -0.30},
			{-0.30, 0, 0.15, 0.20, 0.20, 0.15, 0, -0.30},
			{-0.30, 0.05, 0.15, 0.20, 0.20, 0.15, 0.05, -0.30},
			{-0.30, 0, 0.10, 0.15, 0.15, 0.10, 0, -0.30},
			{-0.40, -0.20, 0, 0, 0, 0, -0.20, -0.40},
			{-0.50, -0.40, -0.30, -0.30, -0.30, -0.30, -0.40, -0.50},
		},
		Bishop: Table{
			{-0.20, -0.10, -0.10, -0.10, -0.10, -0.10, -0.10, -0.20},
			{-0.10, 0.05, 0, 0, 0, 0, 0.05, -0.10},
			{-0.10, 0.10, 0.10, 0.10, 0.10, 0.10, 0.10, -0.10},
			{-0.10, 0, 0.10, 0.10, 0.10, 0.10, 0, -0.10},
			{-0.10, 0.05, 0.05, 0.10, 0.10, 0.05, 0.05, -0.10},
			{-0.10, 0, 0.05, 0.10, 0.10, 0.05, 0, -0.10},
			{-0.10, 0, 0, 0, 0, 0, 0, -0.10},
			{-0.20, -0.10, -0.10, -0.10, -0.10, -0.10, -0.10, -0.20},
		},
		Rook: Table{
			{0, 0, 0, 0.05, 0.05, 0, 0, 0},
			{-0.05, 0, 0, 0, 0, 0, 0, -0.05},
			{-0.05, 0, 0, 0, 0, 0, 0, -0.05},
			{-0.05, 0, 0, 0, 0, 0, 0, -0.05},
			{-0.05, 0, 0, 0, 0, 0, 0, -0.05},
			{-0.05, 0, 0, 0, 0, 0, 0, -0.05},
			{0.05, 0.10, 0.10, 0.10, 0.10, 0.10, 0.10, 0.05},
			{0, 0, 0, 0, 0, 0, 0, 0},
		},
		Queen: Table{
			{-0.20, -0.10, -0.10, -0.05, -0.05, -0.10, -0.10, -0.20},
			{-0.10, 0, 0.05, 0, 0, 0, 0, -0.10},
			{-0.10, 0.05, 0.05, 0.05, 0.05, 0.05, 0, -0.10},
			{0, 0, 0.05, 0.05, 0.05, 0.05, 0, -0.05},
			{-0.05, 0, 0.05, 0.05, 0.05, 0.05, 0, -0.05},
			{-0.10, 0, 0.05, 0.05, 0.05, 0.05, 0, -0.10},
			{-0.10, 0, 0, 0, 0, 0, 0, -0.10},
			{-0.20, -0.10, -0.10, -0.05, -0.05, -0.10, -0.10, -0.20},
		},
		King: Table{
			{0.20, 0.30, 0.10, 0, 0, 0.10, 0.30, 0.20},
			{0.20, 0.20, 0, 0, 0, 0, 0.20, 0.20},
			{-0.10, -0.20, -0.20, -0.20, -0.20, -0.20, -0.20, -0.10},
			{-0.20, -0.30, -0.30, -0.40, -0.40, -0.30, -0.30, -0.20},
			{-0.30, -0.40, -0.40, -0.50, -0.50, -0.40, -0.40, -0.30},
			{-0.30, -0.40, -0.40, -0.50, -0.50, -0.40, -0.40, -0.30},
			{-0.30, -0.40, -0.40, -0.50, -0.50, -0.40, -0.40, -0.30},
			{-0.30, -0.40, -0.40, -0.50, -0.50, -0.40, -0.40, -0.30},
		},
	}
}
