// internal/allocation/session.go
package allocation

import (
	"sync"

	"github.com/google/uuid"
)

// Session owns one live Allocation for one obligation. It replaces the
// old "currently open modal" global: every operation receives the session
// explicitly, and the generation marker lets late asynchronous responses
// detect that they are stale.
type Session struct {
	ID         string
	Generation uint64
	Alloc      *Allocation

	reg    *Registry
	mu     sync.Mutex
	closed bool
}

// Registry enforces that at most one session is open per obligation.
type Registry struct {
	mu   sync.Mutex
	gen  uint64
	open map[uint]*Session
}

func NewRegistry() *Registry {
	return &Registry{open: make(map[uint]*Session)}
}

// Open starts an edit session for an obligation. It fails with
// ErrSessionActive while another session for the same obligation is still
// open; the caller must commit or cancel that one first.
func (r *Registry) Open(ob Obligation) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, busy := r.open[ob.ID]; busy {
		return nil, ErrSessionActive
	}
	r.gen++
	s := &Session{
		ID:         uuid.NewString(),
		Generation: r.gen,
		Alloc:      New(ob),
		reg:        r,
	}
	r.open[ob.ID] = s
	return s, nil
}

// Commit closes the session after an accepted submission. The model is
// discarded; the server's record is the source of truth from here on.
func (s *Session) Commit() { s.close() }

// Cancel closes the session without any server call.
func (s *Session) Cancel() { s.close() }

func (s *Session) close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	if s.reg != nil {
		s.reg.mu.Lock()
		if cur, ok := s.reg.open[s.Alloc.Obligation.ID]; ok && cur == s {
			delete(s.reg.open, s.Alloc.Obligation.ID)
		}
		s.reg.mu.Unlock()
	}
}

func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// ApplySeed applies a history load result to the allocation. gen must be
// the generation captured when the load was issued: a response carrying a
// stale generation, or arriving after the session closed, is discarded.
// ok=false (fetch failed, or no stored detail) drops priorAmounts and
// seeds by equal split. Returns whether the seed was applied.
func (s *Session) ApplySeed(gen uint64, priorAmounts []int64, ok bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || gen != s.Generation {
		return false
	}
	if s.Alloc.Mode != ModeInstallment {
		return false
	}
	if !ok {
		priorAmounts = nil
	}
	s.Alloc.SeedFromHistory(priorAmounts, s.Alloc.Obligation.PriorInstallmentCount)
	return true
}
