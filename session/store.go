package session

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// State identifies where a user currently is in the guided flows.
type State int

const (
	StateMainMenu State = iota
	StateAwaitRegDate
	StateAwaitRegEntry
	StateAwaitCalcMode
	StateAwaitCalcArgs
	StateAwaitListDate
	StateReportsMenu
)

func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "main_menu"
	case StateAwaitRegDate:
		return "await_reg_date"
	case StateAwaitRegEntry:
		return "await_reg_entry"
	case StateAwaitCalcMode:
		return "await_calc_mode"
	case StateAwaitCalcArgs:
		return "await_calc_args"
	case StateAwaitListDate:
		return "await_list_date"
	case StateReportsMenu:
		return "reports_menu"
	default:
		return "unknown"
	}
}

// Session holds one user's in-progress conversation. A user's events
// are serialized through the session mutex, so handlers never race on
// the pending fields.
type Session struct {
	UserID      string
	State       State
	PendingDate time.Time
	CalcMode    string
	SavedCount  int

	mu sync.Mutex
}

// Lock serializes handling of this user's events.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session after an event is fully handled.
func (s *Session) Unlock() { s.mu.Unlock() }

// ResetToMenu discards pending input and returns the session to the
// main menu. Records already flushed to the store are unaffected.
func (s *Session) ResetToMenu() {
	s.State = StateMainMenu
	s.PendingDate = time.Time{}
	s.CalcMode = ""
	s.SavedCount = 0
}

// Store is the process-wide map from user id to conversation session.
// Sessions live for the duration of the chat and are not persisted
// across restarts.
type Store struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

// Get returns the session for a user, creating it at the main menu on
// first contact.
func (st *Store) Get(userID string) *Session {
	st.mu.RLock()
	sess, ok := st.sessions[userID]
	st.mu.RUnlock()
	if ok {
		return sess
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if sess, ok := st.sessions[userID]; ok {
		return sess
	}
	log.Info().Str("user_id", userID).Msg("Creating session")
	sess = &Session{UserID: userID, State: StateMainMenu}
	st.sessions[userID] = sess
	return sess
}

// Drop removes a user's session entirely.
func (st *Store) Drop(userID string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, userID)
}

// Count returns the number of live sessions, for the health endpoint.
func (st *Store) Count() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
