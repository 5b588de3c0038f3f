package core

import "time"

const (
	AppName    = "vocab"
	AppVersion = "0.1.0"
)

// Mode selects what kind of vocabulary a generation request asks for.
type Mode string

const (
	ModeTopical Mode = "topical"
	ModePhrasal Mode = "phrasal"
)

// Difficulty bounds of the 1-5 rarity rubric.
const (
	DifficultyMin = 1
	DifficultyMax = 5
)

// Count bounds for a single generation batch.
const (
	CountMin = 5
	CountMax = 30
)

// VocabItem is one generated word or short phrase. Only the parser
// constructs these from model output; Word is always non-empty there.
type VocabItem struct {
	Word      string `json:"word"`
	MeaningEN string `json:"meaning_en"`
	MeaningZH string `json:"meaning_zh"`
	Example   string `json:"example"`
}

// StoredEntry is a VocabItem as persisted: id and created_at are assigned
// by the store on insert and never change afterwards.
type StoredEntry struct {
	ID         int64
	Word       string
	MeaningEN  string
	MeaningZH  string
	Example    string
	Topic      string
	Tag        string
	Difficulty *int
	CreatedAt  time.Time
}
