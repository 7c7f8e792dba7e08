// /internal/storage/storage.go
package storage

import (
	"fmt"
	"os"

	"github.com/keshon/datastore"
	"github.com/rs/zerolog/log"
)

type Storage struct {
	ds *datastore.DataStore
}

// New opens the JSON datastore at filePath. A file that exists but cannot be
// parsed is moved aside to <filePath>.corrupt and the store starts fresh, so
// a damaged file never blocks startup.
func New(filePath string) (*Storage, error) {
	ds, err := datastore.New(filePath)
	if err != nil {
		sidelined := filePath + ".corrupt"
		if renameErr := os.Rename(filePath, sidelined); renameErr != nil {
			return nil, fmt.Errorf("open datastore: %w", err)
		}
		log.Warn().Err(err).Str("moved_to", sidelined).Msg("datastore unreadable, starting with an empty one")

		ds, err = datastore.New(filePath)
		if err != nil {
			return nil, fmt.Errorf("open datastore after sidelining corrupt file: %w", err)
		}
	}
	return &Storage{ds: ds}, nil
}

func (s *Storage) Close() error {
	return s.ds.Close()
}
