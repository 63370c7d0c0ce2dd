package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimeLeft(t *testing.T) {
	poll := &Poll{TimeLimit: 30}

	// not started yet: the full window remains
	require.Equal(t, 30, poll.TimeLeft(time.Now()))

	start := time.Now().UnixMilli()
	poll.StartTime = &start

	require.Equal(t, 30, poll.TimeLeft(time.UnixMilli(start)))
	require.Equal(t, 20, poll.TimeLeft(time.UnixMilli(start).Add(10*time.Second)))
	require.Equal(t, 0, poll.TimeLeft(time.UnixMilli(start).Add(30*time.Second)))

	// never negative, however late the caller asks
	require.Equal(t, 0, poll.TimeLeft(time.UnixMilli(start).Add(5*time.Minute)))
}

func TestCloneIsIndependent(t *testing.T) {
	start := time.Now().UnixMilli()
	poll := &Poll{
		ID:        "p1",
		Question:  "Color?",
		Options:   []Option{{ID: 0, Text: "Red", Votes: []string{"s1"}}},
		TimeLimit: 30,
		Status:    StatusActive,
		StartTime: &start,
	}

	cp := poll.Clone()
	cp.Options[0].Votes = append(cp.Options[0].Votes, "s2")
	*cp.StartTime = 0
	cp.Status = StatusEnded

	require.Equal(t, []string{"s1"}, poll.Options[0].Votes)
	require.Equal(t, start, *poll.StartTime)
	require.Equal(t, StatusActive, poll.Status)
}

func TestCloneNil(t *testing.T) {
	var poll *Poll
	require.Nil(t, poll.Clone())
}
