package model

import "time"

// Profile is the single self-description record.
type Profile struct {
	Name      string `json:"name"`
	Career    string `json:"career"`
	Values    string `json:"values"`
	Strengths string `json:"strengths"`
	Hobbies   string `json:"hobbies"`
	Lifestyle string `json:"lifestyle"`
	Tags      string `json:"tags"`
}

// Strategy holds the long/mid/short-term planning notes.
type Strategy struct {
	Long        string `json:"long"`
	Mid         string `json:"mid"`
	Year        string `json:"year"`
	Experiments string `json:"experiments"`
}

// Principle is one principle card.
type Principle struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Body      string    `json:"body"`
	Tags      string    `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
}

// Routine is one recurring habit with a daily done flag.
type Routine struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Note      string    `json:"note"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"createdAt"`
}

// TimetableEntry is one row of the daily timetable. Time is always the
// canonical zero-padded HH:MM form once an entry has passed normalization.
type TimetableEntry struct {
	ID       string `json:"id"`
	Time     string `json:"time"`
	Activity string `json:"activity"`
}
