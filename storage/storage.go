// Package storage keeps played games in BadgerDB and exports them as CSV.
package storage

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"sync"

	"greedychess/game"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Storage keys
const (
	keyGamePrefix = "game/"
	keyGameSeq    = "seq/game"
	keyStats      = "stats"
)

// Stats are running totals over every saved game.
type Stats struct {
	Games     int            `json:"games"`
	WhiteWins int            `json:"white_wins"`
	BlackWins int            `json:"black_wins"`
	Draws     int            `json:"draws"`
	Plies     int            `json:"plies"`
	ByMethod  map[string]int `json:"by_method"`
}

func NewStats() *Stats {
	return &Stats{ByMethod: make(map[string]int)}
}

// AverageLength is the mean game length in plies.
func (s *Stats) AverageLength() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Plies) / float64(s.Games)
}

func (s *Stats) add(r game.Record) {
	s.Games++
	s.Plies += r.MoveCount
	s.ByMethod[r.Method]++
	switch r.Winner {
	case game.WinnerWhite:
		s.WhiteWins++
	case game.WinnerBlack:
		s.BlackWins++
	default:
		s.Draws++
	}
}

// Store wraps BadgerDB for persistent storage of game records.
type Store struct {
	db  *badger.DB
	seq *badger.Sequence

	// serialises the read-modify-write of the stats key
	mu sync.Mutex
}

// Open opens (or creates) a store in dir. An empty dir keeps everything in
// memory.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(badgerLogger{log.Logger})
	if dir == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	seq, err := db.GetSequence([]byte(keyGameSeq), 64)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, seq: seq}, nil
}

// Close releases the id sequence and closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.seq.Release()
	if cerr := s.db.Close(); err == nil {
		err = cerr
	}
	return err
}

func gameKey(id uint64) []byte {
	key := make([]byte, len(keyGamePrefix)+8)
	copy(key, keyGamePrefix)
	binary.BigEndian.PutUint64(key[len(keyGamePrefix):], id)
	return key
}

// SaveGame stores r under a fresh id and updates the stats. The id is
// returned and also written into the stored record.
func (s *Store) SaveGame(r game.Record) (uint64, error) {
	id, err := s.seq.Next()
	if err != nil {
		return 0, err
	}
	// ids start at 1 so that 0 means "unsaved"
	id++
	r.ID = id

	data, err := json.Marshal(r)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.db.Update(func(txn *badger.Txn) error {
		stats, err := loadStats(txn)
		if err != nil {
			return err
		}
		stats.add(r)
		statsData, err := json.Marshal(stats)
		if err != nil {
			return err
		}
		if err := txn.Set(gameKey(id), data); err != nil {
			return err
		}
		return txn.Set([]byte(keyStats), statsData)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Game loads one record by id.
func (s *Store) Game(id uint64) (game.Record, error) {
	var r game.Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &r)
		})
	})
	return r, err
}

// Games returns every stored record in id order.
func (s *Store) Games() ([]game.Record, error) {
	var records []game.Record
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(keyGamePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var r game.Record
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &r)
			})
			if err != nil {
				return err
			}
			records = append(records, r)
		}
		return nil
	})
	return records, err
}

// Stats loads the running totals, empty if nothing was saved yet.
func (s *Store) Stats() (*Stats, error) {
	var stats *Stats
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		stats, err = loadStats(txn)
		return err
	})
	return stats, err
}

func loadStats(txn *badger.Txn) (*Stats, error) {
	stats := NewStats()
	item, err := txn.Get([]byte(keyStats))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return stats, nil
	}
	if err != nil {
		return nil, err
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, stats)
	})
	if stats.ByMethod == nil {
		stats.ByMethod = make(map[string]int)
	}
	return stats, err
}

// badgerLogger routes badger's own logging into zerolog.
type badgerLogger struct {
	l zerolog.Logger
}

func (b badgerLogger) Errorf(format string, args ...interface{}) {
	b.l.Error().Str("component", "badger").Msgf(format, args...)
}

func (b badgerLogger) Warningf(format string, args ...interface{}) {
	b.l.Warn().Str("component", "badger").Msgf(format, args...)
}

func (b badgerLogger) Infof(format string, args ...interface{}) {
	b.l.Debug().Str("component", "badger").Msgf(format, args...)
}

func (b badgerLogger) Debugf(format string, args ...interface{}) {
	b.l.Trace().Str("component", "badger").Msgf(format, args...)
}
