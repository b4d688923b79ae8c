package reports

import "time"

// ReportEvent is message published after product reviews were analyzed.
type ReportEvent struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"productId"`
	ProductURL string    `json:"productUrl"`
	AnalyzedAt time.Time `json:"analyzedAt"`
	Title      string    `json:"title"`
	Price      string    `json:"price"`
	Counts     Counts    `json:"counts"`
	Entries    []Entry   `json:"entries"`
}

// Counts holds number of reviews per classification.
type Counts struct {
	Real        int `json:"real"`
	Fake        int `json:"fake"`
	Error       int `json:"error"`
	NotAnalyzed int `json:"notAnalyzed"`
}

// Entry is classification of single review.
type Entry struct {
	Username       string `json:"username"`
	Timestamp      string `json:"timestamp"`
	Classification string `json:"classification"`
}
