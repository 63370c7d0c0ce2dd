// Package session owns the whole mutable state of one live polling session:
// the current poll, the student roster and the closed-poll history. All of it
// lives behind a single mutex, so inbound events are processed one at a time
// and none of the lifecycle logic needs finer-grained locking.
package session

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/samber/lo"

	"github.com/noorjahan04/live-polling-system/events"
	"github.com/noorjahan04/live-polling-system/models"
)

// DefaultTimeLimit is the voting window, in seconds, applied when a poll is
// created without a usable time limit.
const DefaultTimeLimit = 60

// Notifier routes outbound events to an audience. The session never touches
// raw connections; the transport layer implements this interface.
type Notifier interface {
	SendToTeacher(event string, data any)
	SendToStudents(event string, data any)
	SendToAll(event string, data any)
	SendToConnection(connID, event string, data any)
	CloseConnection(connID string)
}

// Session is the single owner of all mutable polling state for the lifetime
// of the server process. Every exported method holds mu for its full
// duration: one event is fully processed, including its outbound
// notifications, before the next begins.
type Session struct {
	mu sync.Mutex

	notifier Notifier
	log      *slog.Logger

	currentPoll *models.Poll
	students    map[string]*models.Student // session id -> student
	history     []models.Poll              // closed polls, oldest first, never mutated after append
}

// New returns an empty session bound to the given notifier.
func New(notifier Notifier, log *slog.Logger) *Session {
	return &Session{
		notifier: notifier,
		log:      log.With("component", "session"),
		students: make(map[string]*models.Student),
	}
}

// teacherJoinedPayload is the full dashboard state pushed to a (re)connecting
// teacher.
type teacherJoinedPayload struct {
	CurrentPoll *models.Poll     `json:"currentPoll"`
	Students    []models.Student `json:"students"`
	PollHistory []models.Poll    `json:"pollHistory"`
}

// TeacherJoin re-syncs the full session state to the teacher connection.
func (s *Session) TeacherJoin(connID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Info("teacher joined", "conn", connID)
	s.notifier.SendToConnection(connID, events.TeacherJoined, teacherJoinedPayload{
		CurrentPoll: s.currentPoll.Clone(),
		Students:    s.studentListLocked(),
		PollHistory: s.historyLocked(),
	})
}

// CurrentPoll returns a copy of the poll in the current slot, nil when the
// slot is empty.
func (s *Session) CurrentPoll() *models.Poll {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPoll.Clone()
}

// Students returns a snapshot of the roster.
func (s *Session) Students() []models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.studentListLocked()
}

// History returns copies of all closed polls, oldest first.
func (s *Session) History() []models.Poll {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.historyLocked()
}

// studentListLocked snapshots the roster for use in outbound payloads.
// Caller must hold mu.
func (s *Session) studentListLocked() []models.Student {
	students := lo.Map(lo.Values(s.students), func(st *models.Student, _ int) models.Student {
		cp := *st
		if st.Answered != nil {
			v := *st.Answered
			cp.Answered = &v
		}
		return cp
	})
	sort.Slice(students, func(i, j int) bool { return students[i].Name < students[j].Name })
	return students
}

// historyLocked deep-copies the closed-poll history. Caller must hold mu.
func (s *Session) historyLocked() []models.Poll {
	return lo.Map(s.history, func(p models.Poll, _ int) models.Poll { return *p.Clone() })
}
