package models

import "time"

// PollStatus is the lifecycle state of a poll. The wire uses the lowercase
// string values.
type PollStatus string

const (
	StatusCreated PollStatus = "created"
	StatusActive  PollStatus = "active"
	StatusEnded   PollStatus = "ended"
)

// Option is one answer choice of a poll. Its ID is the position in the
// options list and never changes after the poll is created.
type Option struct {
	ID    int      `json:"id"`
	Text  string   `json:"text"`
	Votes []string `json:"votes"` // session ids of the students who picked this option
}

// Poll is one question with its options, subject to a single vote-collection
// window. Timestamps are unix milliseconds; StartTime stays nil until the
// poll is activated and EndTime is set only on termination.
type Poll struct {
	ID        string     `json:"id"`
	Question  string     `json:"question"`
	Options   []Option   `json:"options"`
	TimeLimit int        `json:"timeLimit"` // seconds
	Status    PollStatus `json:"status"`
	CreatedAt int64      `json:"createdAt"`
	StartTime *int64     `json:"startTime"`
	EndTime   *int64     `json:"endTime,omitempty"`
}

// Clone returns a deep copy that is safe to hand out after the session lock
// is released.
func (p *Poll) Clone() *Poll {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Options = make([]Option, len(p.Options))
	for i, opt := range p.Options {
		opt.Votes = append([]string(nil), opt.Votes...)
		cp.Options[i] = opt
	}
	if p.StartTime != nil {
		v := *p.StartTime
		cp.StartTime = &v
	}
	if p.EndTime != nil {
		v := *p.EndTime
		cp.EndTime = &v
	}
	return &cp
}

// TimeLeft reports the remaining seconds of the voting window at [now],
// never below zero. A poll that has not started yet has its full window left.
func (p *Poll) TimeLeft(now time.Time) int {
	if p.StartTime == nil {
		return p.TimeLimit
	}
	elapsed := int((now.UnixMilli() - *p.StartTime) / 1000)
	if left := p.TimeLimit - elapsed; left > 0 {
		return left
	}
	return 0
}

// ActivePoll is a poll as pushed to clients at start or late-join time: the
// poll plus the remaining window seconds, so independently-clocked clients
// can render the same countdown.
type ActivePoll struct {
	*Poll
	TimeLeft int `json:"timeLeft"`
}
