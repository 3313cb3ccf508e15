package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"greedychess/game"
)

var csvHeader = []string{"Winner", "Move Count", "Moves", "Final Position"}

// WriteCSV writes records with one row per game; moves are space separated
// SAN.
func WriteCSV(w io.Writer, records []game.Record) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write games header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.Winner,
			strconv.Itoa(r.MoveCount),
			strings.Join(r.Moves, " "),
			r.FinalPosition,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write game %d: %w", r.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ExportCSV writes every stored game to w.
func (s *Store) ExportCSV(w io.Writer) error {
	records, err := s.Games()
	if err != nil {
		return err
	}
	return WriteCSV(w, records)
}
