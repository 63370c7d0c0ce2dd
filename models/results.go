package models

// OptionResult is the display-ready tally of one option.
type OptionResult struct {
	ID         int    `json:"id"`
	Text       string `json:"text"`
	Votes      int    `json:"votes"`
	Percentage int    `json:"percentage"` // integer 0-100, 0 when the poll has no votes
}

// ResultSnapshot is the derived, read-only vote tally view of a poll at a
// point in time. It is recomputed from the current poll on every change and
// never stored.
type ResultSnapshot struct {
	ID         string         `json:"id"`
	Question   string         `json:"question"`
	Options    []OptionResult `json:"options"`
	TotalVotes int            `json:"totalVotes"`
	Status     PollStatus     `json:"status"`
}
