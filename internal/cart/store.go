package cart

import "sync"

// Store keeps one ledger per session, created lazily on first access.
type Store struct {
	mu               sync.RWMutex
	ledgers          map[string]*Ledger
	deliveryFeeCents int64
}

// NewStore returns a Store whose new ledgers start with the given delivery fee.
func NewStore(deliveryFeeCents int64) *Store {
	return &Store{
		ledgers:          make(map[string]*Ledger),
		deliveryFeeCents: deliveryFeeCents,
	}
}

// Get returns the session's ledger, creating an empty one if needed.
func (s *Store) Get(sessionID string) *Ledger {
	s.mu.RLock()
	ledger, ok := s.ledgers[sessionID]
	s.mu.RUnlock()
	if ok {
		return ledger
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if ledger, ok := s.ledgers[sessionID]; ok {
		return ledger
	}
	ledger = NewLedger(s.deliveryFeeCents)
	s.ledgers[sessionID] = ledger
	return ledger
}

// Drop discards a session's ledger.
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	delete(s.ledgers, sessionID)
	s.mu.Unlock()
}
