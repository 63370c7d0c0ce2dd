package session

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/noorjahan04/live-polling-system/events"
	"github.com/noorjahan04/live-polling-system/models"
)

// ErrPollActive is returned when a teacher tries to create a poll while one
// is still collecting votes. It is reported to the requesting connection
// only, never broadcast.
var ErrPollActive = errors.New("poll is currently active")

// CreatePoll puts a new poll in Created status into the current slot and
// acknowledges it to the requesting connection. Creating over an unstarted
// draft replaces the draft; creating while a poll is active fails with
// ErrPollActive and changes nothing. A non-positive time limit falls back to
// DefaultTimeLimit.
func (s *Session) CreatePoll(connID, question string, options []string, timeLimit int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentPoll != nil && s.currentPoll.Status == models.StatusActive {
		return ErrPollActive
	}
	if timeLimit <= 0 {
		timeLimit = DefaultTimeLimit
	}

	poll := &models.Poll{
		ID:       uuid.NewString(),
		Question: strings.TrimSpace(question),
		Options: lo.Map(options, func(text string, i int) models.Option {
			return models.Option{ID: i, Text: strings.TrimSpace(text), Votes: []string{}}
		}),
		TimeLimit: timeLimit,
		Status:    models.StatusCreated,
		CreatedAt: time.Now().UnixMilli(),
	}
	s.currentPoll = poll

	s.log.Info("poll created", "poll", poll.ID, "question", poll.Question, "timeLimit", poll.TimeLimit)
	s.notifier.SendToConnection(connID, events.PollCreated, poll.Clone())
	return nil
}

// StartPoll activates the current poll: stamps the start time, resets every
// known student's answered flag and arms the deadline. It is a silent no-op
// when there is no poll or the poll is already active.
func (s *Session) StartPoll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentPoll == nil || s.currentPoll.Status == models.StatusActive {
		return
	}

	now := time.Now().UnixMilli()
	s.currentPoll.Status = models.StatusActive
	s.currentPoll.StartTime = &now

	for _, st := range s.students {
		answered := false
		st.Answered = &answered
	}

	poll := s.currentPoll.Clone()
	started := models.ActivePoll{Poll: poll, TimeLeft: poll.TimeLimit}
	s.notifier.SendToStudents(events.PollStarted, started)
	s.notifier.SendToTeacher(events.PollStarted, started)

	// The deadline is never cancelled. The callback re-checks the poll id
	// and status under the lock and discards stale firings, which also
	// settles the race against the all-answered termination path.
	pollID := s.currentPoll.ID
	time.AfterFunc(time.Duration(poll.TimeLimit)*time.Second, func() {
		s.pollDeadline(pollID)
	})

	s.log.Info("poll started", "poll", pollID, "timeLimit", poll.TimeLimit)
}

// pollDeadline fires when the voting window of poll [pollID] elapses. By
// then the poll may already have ended, or a newer poll may occupy the slot;
// both make the firing stale.
func (s *Session) pollDeadline(pollID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentPoll == nil || s.currentPoll.ID != pollID || s.currentPoll.Status != models.StatusActive {
		s.log.Debug("discarded stale poll deadline", "poll", pollID)
		return
	}
	s.log.Info("poll time limit reached", "poll", pollID)
	s.endPollLocked()
}

// SubmitAnswer records a single vote for the current poll and broadcasts the
// updated results. Invalid submissions are ignored without error: no active
// poll, unknown student, repeated answer, or an option id that matches no
// option. When the last connected student answers, the poll ends immediately
// without waiting for the deadline.
func (s *Session) SubmitAnswer(sessionID string, optionID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentPoll == nil || s.currentPoll.Status != models.StatusActive {
		return
	}
	student, ok := s.students[sessionID]
	if !ok || (student.Answered != nil && *student.Answered) {
		return
	}
	if optionID < 0 || optionID >= len(s.currentPoll.Options) {
		return
	}

	opt := &s.currentPoll.Options[optionID]
	opt.Votes = append(opt.Votes, sessionID)
	answered := true
	student.Answered = &answered

	s.log.Info("vote recorded", "poll", s.currentPoll.ID, "student", student.Name, "option", optionID)
	s.notifier.SendToAll(events.PollResultsUpdated, Results(s.currentPoll))

	connected := lo.Filter(lo.Values(s.students), func(st *models.Student, _ int) bool {
		return st.Connected
	})
	allAnswered := lo.EveryBy(connected, func(st *models.Student) bool {
		return st.Answered != nil && *st.Answered
	})
	if allAnswered {
		s.log.Info("all connected students answered", "poll", s.currentPoll.ID)
		s.endPollLocked()
	}
}

// EndPoll is the teacher-triggered termination. It does nothing unless a
// poll is active, which makes it idempotent against the other termination
// paths.
func (s *Session) EndPoll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentPoll == nil || s.currentPoll.Status != models.StatusActive {
		return
	}
	s.endPollLocked()
}

// endPollLocked terminates the current poll: stamps the end time, appends an
// immutable snapshot to the history, broadcasts the final results and clears
// the current slot. Caller must hold mu and have checked a poll is present.
func (s *Session) endPollLocked() {
	now := time.Now().UnixMilli()
	s.currentPoll.Status = models.StatusEnded
	s.currentPoll.EndTime = &now

	s.history = append(s.history, *s.currentPoll.Clone())

	final := Results(s.currentPoll)
	s.log.Info("poll ended", "poll", s.currentPoll.ID, "totalVotes", final.TotalVotes)
	s.notifier.SendToAll(events.PollEnded, final)

	s.currentPoll = nil
}
