// Package votes implements the reaction-vote flow: an announcement message
// opens a proposal against a target user, distinct reactions with the
// configured emoji count as votes, and reaching the threshold applies a
// timeout to the target.
package votes

import (
	"sync"
	"time"
)

type Outcome int

const (
	// OutcomeUnknown means no open proposal matches the message; resolved
	// and expired proposals report the same way.
	OutcomeUnknown Outcome = iota
	OutcomeAlreadyCounted
	OutcomeCounted
	OutcomeThresholdReached
)

type Proposal struct {
	TargetID  string
	Voters    map[string]struct{}
	CreatedAt time.Time
}

// Tally tracks open proposals keyed by their announcement message ID.
// Proposals live in memory only; an in-progress vote has no meaning after a
// restart.
type Tally struct {
	mu        sync.Mutex
	open      map[string]*Proposal
	threshold int
	ttl       time.Duration
}

// NewTally creates a store that resolves proposals at threshold distinct
// votes. ttl bounds a proposal's lifetime for the sweeper; 0 means
// proposals never expire.
func NewTally(threshold int, ttl time.Duration) *Tally {
	if threshold < 1 {
		threshold = 1
	}
	return &Tally{
		open:      make(map[string]*Proposal),
		threshold: threshold,
		ttl:       ttl,
	}
}

// Track binds a proposal to its posted announcement message. Callers post
// the announcement first so that a failed post never leaves a dangling
// proposal.
func (t *Tally) Track(messageID, targetID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.open[messageID] = &Proposal{
		TargetID:  targetID,
		Voters:    make(map[string]struct{}),
		CreatedAt: time.Now(),
	}
}

// RecordVote counts one voter on a proposal. Each voter counts at most once.
// OutcomeThresholdReached is returned exactly once per proposal: the
// proposal is removed on it, so later votes report OutcomeUnknown.
func (t *Tally) RecordVote(messageID, voterID string) (Outcome, int, string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.open[messageID]
	if !ok {
		return OutcomeUnknown, 0, ""
	}
	if _, voted := p.Voters[voterID]; voted {
		return OutcomeAlreadyCounted, len(p.Voters), p.TargetID
	}

	p.Voters[voterID] = struct{}{}
	count := len(p.Voters)
	if count >= t.threshold {
		delete(t.open, messageID)
		return OutcomeThresholdReached, count, p.TargetID
	}
	return OutcomeCounted, count, p.TargetID
}

// Expire drops a proposal without triggering any action, reporting its
// target and whether it was still open.
func (t *Tally) Expire(messageID string) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.open[messageID]
	if !ok {
		return "", false
	}
	delete(t.open, messageID)
	return p.TargetID, true
}

// Prune removes every proposal older than the ttl and returns the dropped
// message→target pairs. With ttl 0 it is a no-op.
func (t *Tally) Prune(now time.Time) map[string]string {
	if t.ttl <= 0 {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	var dropped map[string]string
	for messageID, p := range t.open {
		if now.Sub(p.CreatedAt) < t.ttl {
			continue
		}
		if dropped == nil {
			dropped = make(map[string]string)
		}
		dropped[messageID] = p.TargetID
		delete(t.open, messageID)
	}
	return dropped
}

// OpenCount reports how many proposals are currently open.
func (t *Tally) OpenCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.open)
}
