package domain

// Input is the raw text of one day's puzzle input.
type Input struct {
	Day  DayID
	Path string
	Text string
}

// FetchResult describes the outcome of downloading an input.
type FetchResult struct {
	Day     DayID  `json:"day"`
	Path    string `json:"path"`
	Bytes   int    `json:"bytes"`
	Skipped bool   `json:"skipped"`
}
