package session

import (
	"time"

	"github.com/noorjahan04/live-polling-system/events"
	"github.com/noorjahan04/live-polling-system/models"
)

// rosterPayload carries the full student list to the teacher after every
// roster change.
type rosterPayload struct {
	Students []models.Student `json:"students"`
}

// studentJoinedPayload acknowledges a join to the student, including the
// current poll with its remaining window so late joiners can vote.
type studentJoinedPayload struct {
	SessionID   string             `json:"sessionId"`
	CurrentPoll *models.ActivePoll `json:"currentPoll"`
}

// StudentJoin upserts the roster entry for [sessionID] and binds it to the
// given connection. An entry that survived a reconnect keeps its answered
// state for the current poll; a brand-new entry starts with answered=false
// when a poll is active and nil otherwise.
func (s *Session) StudentJoin(connID, sessionID, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, ok := s.students[sessionID]
	if !ok {
		student = &models.Student{ID: sessionID}
		if s.currentPoll != nil && s.currentPoll.Status == models.StatusActive {
			answered := false
			student.Answered = &answered
		}
		s.students[sessionID] = student
	}
	student.Name = name
	student.ConnectionID = connID
	student.Connected = true

	s.log.Info("student joined", "name", name, "session", sessionID, "conn", connID)

	var current *models.ActivePoll
	if s.currentPoll != nil {
		poll := s.currentPoll.Clone()
		current = &models.ActivePoll{Poll: poll, TimeLeft: poll.TimeLeft(time.Now())}
	}
	s.notifier.SendToConnection(connID, events.StudentJoined, studentJoinedPayload{
		SessionID:   sessionID,
		CurrentPoll: current,
	})
	s.notifier.SendToTeacher(events.StudentConnected, rosterPayload{Students: s.studentListLocked()})
}

// Leave removes the student bound to [connID], if any, and tells the teacher.
// Connections may change across reconnects while session ids persist, so the
// lookup goes by connection id; at most one student matches. A disconnect is
// a normal roster transition, not an error.
func (s *Session) Leave(connID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, st := range s.students {
		if st.ConnectionID == connID {
			delete(s.students, id)
			s.log.Info("student disconnected", "name", st.Name, "session", id)
			s.notifier.SendToTeacher(events.StudentDisconnected, rosterPayload{Students: s.studentListLocked()})
			return
		}
	}
}

// RemoveStudent is the teacher-initiated kick. The student is told first so
// its client can show a terminal state, then the transport is closed and the
// roster entry deleted. Unknown session ids are ignored.
func (s *Session) RemoveStudent(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, ok := s.students[sessionID]
	if !ok {
		return
	}

	s.notifier.SendToConnection(student.ConnectionID, events.StudentKicked, nil)
	s.notifier.CloseConnection(student.ConnectionID)
	delete(s.students, sessionID)

	s.log.Info("student removed", "name", student.Name, "session", sessionID)
	s.notifier.SendToTeacher(events.StudentRemoved, rosterPayload{Students: s.studentListLocked()})
}
