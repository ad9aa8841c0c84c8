package systems

import (
	"errors"
	"testing"

	cfg "github.com/automoto/tkuet-fighter/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	items   map[string][]byte
	saveErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{items: map[string][]byte{}}
}

func (s *memoryStore) LoadItem(key string) ([]byte, error) {
	return s.items[key], nil
}

func (s *memoryStore) SaveItem(key string, data []byte) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.items[key] = append([]byte(nil), data...)
	return nil
}

func TestRecordBookCountsAndPersists(t *testing.T) {
	store := newMemoryStore()
	book := NewRecordBook(store, zerolog.Nop())
	assert.Equal(t, SavedRecord{}, book.Record())

	require.NoError(t, book.RecordMatch(MatchEndedEvent{WinnerSlot: 0}))
	require.NoError(t, book.RecordMatch(MatchEndedEvent{WinnerSlot: 1, TimeUp: true}))
	require.NoError(t, book.RecordMatch(MatchEndedEvent{WinnerSlot: cfg.DrawWinner, TimeUp: true}))
	require.NoError(t, book.RecordMatch(MatchEndedEvent{WinnerSlot: 0}))

	want := SavedRecord{Wins: [cfg.PlayerCount]int{2, 1}, Draws: 1, Matches: 4}
	assert.Equal(t, want, book.Record())
	assert.JSONEq(t, `{"wins":[2,1],"draws":1,"matches":4}`, string(store.items[recordKey]))

	reopened := NewRecordBook(store, zerolog.Nop())
	assert.Equal(t, want, reopened.Record())
}

func TestRecordBookIgnoresCorruptData(t *testing.T) {
	store := newMemoryStore()
	store.items[recordKey] = []byte("{broken")

	book := NewRecordBook(store, zerolog.Nop())
	assert.Equal(t, SavedRecord{}, book.Record())
}

func TestRecordBookSaveError(t *testing.T) {
	store := newMemoryStore()
	store.saveErr = errors.New("disk full")
	book := NewRecordBook(store, zerolog.Nop())

	err := book.RecordMatch(MatchEndedEvent{WinnerSlot: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.saveErr)
	assert.Equal(t, 1, book.Record().Wins[1], "tally still counts in memory")
}

func TestRecordBookWithoutStore(t *testing.T) {
	book := NewRecordBook(nil, zerolog.Nop())
	require.NoError(t, book.RecordMatch(MatchEndedEvent{WinnerSlot: cfg.DrawWinner}))
	assert.Equal(t, 1, book.Record().Draws)
}
