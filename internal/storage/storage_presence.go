package storage

import (
	"encoding/json"
	"fmt"

	"voicewarden/internal/ledger"
)

const presenceKey = "voice_presence"

// LoadPresence reads the whole user map. An absent key means a fresh store
// and yields an empty map, not an error.
func (s *Storage) LoadPresence() (map[string]ledger.Record, error) {
	data, exists := s.ds.Get(presenceKey)
	if !exists {
		return map[string]ledger.Record{}, nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("error marshalling presence data: %w", err)
	}

	var users map[string]ledger.Record
	if err := json.Unmarshal(jsonData, &users); err != nil {
		return nil, fmt.Errorf("error unmarshalling presence data: %w", err)
	}
	return users, nil
}

// SavePresence replaces the stored user map and flushes the datastore to
// disk immediately rather than waiting for its autosave tick.
func (s *Storage) SavePresence(users map[string]ledger.Record) error {
	s.ds.Add(presenceKey, users)
	return s.ds.SaveToFile()
}
