package tracker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voicewarden/internal/ledger"
	"voicewarden/internal/tracker"
)

type memStore struct {
	saved map[string]ledger.Record
}

func (s *memStore) LoadPresence() (map[string]ledger.Record, error) { return s.saved, nil }
func (s *memStore) SavePresence(users map[string]ledger.Record) error {
	s.saved = users
	return nil
}

type fakeNotifier struct {
	sent []string
	err  error
}

func (n *fakeNotifier) Notify(text string) error {
	n.sent = append(n.sent, text)
	return n.err
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		prev string
		next string
		want tracker.Change
	}{
		{"join from nowhere", "", "chan-1", tracker.ChangeJoined},
		{"leave", "chan-1", "", tracker.ChangeLeft},
		{"switch", "chan-1", "chan-2", tracker.ChangeSwitched},
		{"mute toggle", "chan-1", "chan-1", tracker.ChangeNone},
		{"both absent", "", "", tracker.ChangeNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tracker.Classify(tt.prev, tt.next))
		})
	}
}

func TestJoinThenLeaveNotifiesAndAccounts(t *testing.T) {
	t.Parallel()
	l := ledger.Open(&memStore{})
	n := &fakeNotifier{}
	tr := tracker.New(l, n)

	tr.OnPresenceChange("user-a", "", "chan-1", time.Unix(100, 0))
	tr.OnPresenceChange("user-a", "chan-1", "", time.Unix(160, 0))

	rec, ok := l.Get("user-a")
	require.True(t, ok)
	assert.Equal(t, int64(60), rec.AccumulatedSeconds)

	require.Len(t, n.sent, 2)
	assert.Contains(t, n.sent[0], "joined voice channel")
	assert.Contains(t, n.sent[1], "left voice channel")
}

func TestSwitchClosesAndReopensWithOneNotice(t *testing.T) {
	t.Parallel()
	l := ledger.Open(&memStore{})
	n := &fakeNotifier{}
	tr := tracker.New(l, n)

	tr.OnPresenceChange("user-a", "", "chan-1", time.Unix(100, 0))
	tr.OnPresenceChange("user-a", "chan-1", "chan-2", time.Unix(130, 0))

	rec, ok := l.Get("user-a")
	require.True(t, ok)
	assert.Equal(t, int64(30), rec.AccumulatedSeconds, "switch closes the first session")
	assert.Equal(t, int64(130), rec.OpenSessionStart, "switch opens a new session")

	require.Len(t, n.sent, 2)
	assert.Contains(t, n.sent[1], "switched voice channel")
}

func TestMuteToggleChangesNothing(t *testing.T) {
	t.Parallel()
	l := ledger.Open(&memStore{})
	n := &fakeNotifier{}
	tr := tracker.New(l, n)

	tr.OnPresenceChange("user-a", "", "chan-1", time.Unix(100, 0))
	tr.OnPresenceChange("user-a", "chan-1", "chan-1", time.Unix(110, 0))

	rec, _ := l.Get("user-a")
	assert.Equal(t, int64(100), rec.OpenSessionStart)
	assert.Len(t, n.sent, 1)
}

func TestNotifyFailureDoesNotAffectLedger(t *testing.T) {
	t.Parallel()
	l := ledger.Open(&memStore{})
	n := &fakeNotifier{err: errors.New("channel gone")}
	tr := tracker.New(l, n)

	tr.OnPresenceChange("user-a", "", "chan-1", time.Unix(100, 0))
	tr.OnPresenceChange("user-a", "chan-1", "", time.Unix(150, 0))

	rec, ok := l.Get("user-a")
	require.True(t, ok)
	assert.Equal(t, int64(50), rec.AccumulatedSeconds)
}
