package session

import (
	"math"

	"github.com/samber/lo"

	"github.com/noorjahan04/live-polling-system/models"
)

// Results computes the display-ready tally of [p]: per-option counts and
// integer percentages of the total. With zero votes every option shows 0%.
// Percentages are rounded independently and are not forced to sum to 100.
// Pure: the poll is only read, so callers may hold the session lock.
func Results(p *models.Poll) *models.ResultSnapshot {
	if p == nil {
		return nil
	}

	total := lo.SumBy(p.Options, func(opt models.Option) int { return len(opt.Votes) })

	options := lo.Map(p.Options, func(opt models.Option, _ int) models.OptionResult {
		res := models.OptionResult{ID: opt.ID, Text: opt.Text, Votes: len(opt.Votes)}
		if total > 0 {
			res.Percentage = int(math.Round(float64(len(opt.Votes)) / float64(total) * 100))
		}
		return res
	})

	return &models.ResultSnapshot{
		ID:         p.ID,
		Question:   p.Question,
		Options:    options,
		TotalVotes: total,
		Status:     p.Status,
	}
}
