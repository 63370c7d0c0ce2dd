package session

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noorjahan04/live-polling-system/models"
)

func TestResultsNilPoll(t *testing.T) {
	require.Nil(t, Results(nil))
}

func TestResultsZeroVotes(t *testing.T) {
	poll := &models.Poll{
		ID:       "p1",
		Question: "Color?",
		Options: []models.Option{
			{ID: 0, Text: "Red", Votes: []string{}},
			{ID: 1, Text: "Blue", Votes: []string{}},
		},
		Status: models.StatusActive,
	}

	snap := Results(poll)
	require.Equal(t, 0, snap.TotalVotes)
	for _, opt := range snap.Options {
		require.Equal(t, 0, opt.Votes)
		require.Equal(t, 0, opt.Percentage)
	}
}

func TestResultsRounding(t *testing.T) {
	poll := &models.Poll{
		ID:       "p1",
		Question: "Color?",
		Options: []models.Option{
			{ID: 0, Text: "Red", Votes: []string{"s1", "s2"}},
			{ID: 1, Text: "Blue", Votes: []string{"s3"}},
		},
		Status: models.StatusActive,
	}

	snap := Results(poll)
	require.Equal(t, "p1", snap.ID)
	require.Equal(t, "Color?", snap.Question)
	require.Equal(t, 3, snap.TotalVotes)
	require.Equal(t, models.StatusActive, snap.Status)

	require.Equal(t, 2, snap.Options[0].Votes)
	require.Equal(t, 67, snap.Options[0].Percentage)
	require.Equal(t, 1, snap.Options[1].Votes)
	require.Equal(t, 33, snap.Options[1].Percentage)
}

func TestResultsEvenSplit(t *testing.T) {
	poll := &models.Poll{
		Options: []models.Option{
			{ID: 0, Text: "Yes", Votes: []string{"s1"}},
			{ID: 1, Text: "No", Votes: []string{"s2"}},
		},
	}

	snap := Results(poll)
	require.Equal(t, 50, snap.Options[0].Percentage)
	require.Equal(t, 50, snap.Options[1].Percentage)
}

func TestResultsPercentageBounds(t *testing.T) {
	poll := &models.Poll{
		Options: []models.Option{
			{ID: 0, Text: "Only", Votes: []string{"s1", "s2", "s3"}},
			{ID: 1, Text: "None", Votes: []string{}},
		},
	}

	snap := Results(poll)
	require.Equal(t, 100, snap.Options[0].Percentage)
	require.Equal(t, 0, snap.Options[1].Percentage)
}
