package systems

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/tkuet-fighter/config"
	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog"
)

// ItemStore is the part of gdata.Manager the record book needs
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

const recordKey = "record"

// SavedRecord is the win tally kept between sessions
type SavedRecord struct {
	Wins    [cfg.PlayerCount]int `json:"wins"`
	Draws   int                  `json:"draws"`
	Matches int                  `json:"matches"`
}

// RecordBook tracks match results and writes them through an ItemStore.
// Without a store it still counts, it just forgets on exit.
type RecordBook struct {
	store  ItemStore
	log    zerolog.Logger
	record SavedRecord
}

// OpenRecordBook opens the per-user gdata store for appName. A store that
// cannot be opened is logged and the book runs in memory.
func OpenRecordBook(appName string, log zerolog.Logger) *RecordBook {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Warn().Err(err).Msg("could not initialize persistence")
		return NewRecordBook(nil, log)
	}
	return NewRecordBook(m, log)
}

// NewRecordBook loads the saved tally from store, starting fresh when there
// is none or it cannot be parsed.
func NewRecordBook(store ItemStore, log zerolog.Logger) *RecordBook {
	b := &RecordBook{store: store, log: log}
	if store == nil {
		return b
	}

	data, err := store.LoadItem(recordKey)
	if err != nil {
		log.Warn().Err(err).Msg("could not load record")
		return b
	}
	if len(data) == 0 {
		return b
	}

	if err := json.Unmarshal(data, &b.record); err != nil {
		log.Warn().Err(err).Msg("could not parse saved record")
		b.record = SavedRecord{}
	}
	return b
}

// Record returns the current tally
func (b *RecordBook) Record() SavedRecord {
	return b.record
}

// RecordMatch counts a finished round and saves the tally
func (b *RecordBook) RecordMatch(ev MatchEndedEvent) error {
	b.record.Matches++
	switch {
	case ev.WinnerSlot >= 0 && ev.WinnerSlot < cfg.PlayerCount:
		b.record.Wins[ev.WinnerSlot]++
	default:
		b.record.Draws++
	}

	b.log.Info().
		Int("winner", ev.WinnerSlot).
		Bool("timeUp", ev.TimeUp).
		Ints("wins", b.record.Wins[:]).
		Int("draws", b.record.Draws).
		Msg("match recorded")

	if b.store == nil {
		return nil
	}

	data, err := json.Marshal(b.record)
	if err != nil {
		return fmt.Errorf("serialize record: %w", err)
	}
	if err := b.store.SaveItem(recordKey, data); err != nil {
		b.log.Warn().Err(err).Msg("could not save record")
		return fmt.Errorf("save record: %w", err)
	}
	return nil
}
