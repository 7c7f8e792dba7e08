// Package ledger keeps the per-user voice presence accounting: how long each
// user has spent in voice channels, summed across sessions and persisted
// after every change.
package ledger

import (
	"maps"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
)

type Event int

const (
	EventJoined Event = iota
	EventLeft
)

// Record is one user's presence accounting. The JSON keys match the
// users.json layout the bot has always written: "timestamp" is the unix
// second the open session started, 0 meaning no session is open.
type Record struct {
	AccumulatedSeconds int64 `json:"duration"`
	OpenSessionStart   int64 `json:"timestamp"`
}

func (r Record) SessionOpen() bool {
	return r.OpenSessionStart != 0
}

// Store is the durable backing for the whole user map. Implemented by
// internal/storage.
type Store interface {
	LoadPresence() (map[string]Record, error)
	SavePresence(map[string]Record) error
}

// PersistenceError reports a failed durable write. The in-memory record was
// still updated and remains authoritative.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return "presence ledger persist: " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

const saveRetries = 2

type Ledger struct {
	mu    sync.Mutex
	users map[string]Record
	store Store
}

// Open loads the persisted user map. Missing or unreadable storage is not
// fatal: the ledger starts empty and logs a warning.
func Open(store Store) *Ledger {
	users, err := store.LoadPresence()
	if err != nil {
		log.Warn().Err(err).Msg("presence ledger unreadable, starting empty")
		users = nil
	}
	if users == nil {
		users = make(map[string]Record)
	}
	return &Ledger{users: users, store: store}
}

// Apply folds one presence event into the user's record and persists the
// whole map. Duplicate joins keep the original session start; a leave with
// no open session is a no-op. The returned record reflects the state after
// the event even when persistence failed.
func (l *Ledger) Apply(userID string, ev Event, at time.Time) (Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec := l.users[userID]
	switch ev {
	case EventJoined:
		if !rec.SessionOpen() {
			rec.OpenSessionStart = at.Unix()
		}
	case EventLeft:
		if rec.SessionOpen() {
			elapsed := at.Unix() - rec.OpenSessionStart
			if elapsed < 0 {
				// clock skew between gateway events
				elapsed = 0
			}
			rec.AccumulatedSeconds += elapsed
			rec.OpenSessionStart = 0
		}
	}
	l.users[userID] = rec

	if err := l.persistLocked(); err != nil {
		return rec, &PersistenceError{Err: err}
	}
	return rec, nil
}

func (l *Ledger) persistLocked() error {
	snapshot := maps.Clone(l.users)
	save := func() error {
		return l.store.SavePresence(snapshot)
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 50 * time.Millisecond
	bo.MaxInterval = 500 * time.Millisecond
	return backoff.Retry(save, backoff.WithMaxRetries(bo, saveRetries))
}

func (l *Ledger) Get(userID string) (Record, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	rec, ok := l.users[userID]
	return rec, ok
}

func (l *Ledger) Snapshot() map[string]Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	return maps.Clone(l.users)
}
