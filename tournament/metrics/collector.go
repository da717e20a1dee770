package metrics

import (
	"sync"
	"time"
)

// Forfeit says why a game was decided without a line of four.
type Forfeit string

const (
	NoForfeit   Forfeit = ""
	Timeout     Forfeit = "timeout"
	IllegalMove Forfeit = "illegal-move"
)

type GameMetric struct {
	StartingPlayer string // Contestant name
	Winner         string // Contestant name, "" for a draw
	Forfeit        Forfeit
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type GameRecord struct {
	Match    int // 1-based match index within the tournament
	Game     int // 1-based game index within the match
	Attempt  int // 1 for the first try, 2 for the replay after a draw
	Agent1   string
	Agent2   string
	TieBreak bool // Winner was drawn at random after two drawn attempts
	GameMetric
}

type Recorder interface {
	AddGame(record GameRecord)
	Records() []GameRecord
}

type recorder struct {
	mu      sync.Mutex
	records []GameRecord
}

func NewRecorder() Recorder {
	return &recorder{}
}

func (r *recorder) AddGame(record GameRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
}

func (r *recorder) Records() []GameRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]GameRecord, len(r.records))
	copy(out, r.records)
	return out
}

type dummyRecorder struct{}

func NewDummyRecorder() Recorder {
	return &dummyRecorder{}
}

func (r *dummyRecorder) AddGame(record GameRecord) {}
func (r *dummyRecorder) Records() []GameRecord     { return nil }
