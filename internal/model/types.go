// Package model defines shared data structures.
package model

import "time"

// Config defines runtime settings resolved from the config file.
type Config struct {
	Lang         string
	WordListPath string
	LogFile      string
	LogLevel     string
}

// RaceResult captures a finished race.
type RaceResult struct {
	StartedAt time.Time
	EndedAt   time.Time
	Score     int
}

// WordsPerMinute normalises the score to a per-minute rate.
func (r RaceResult) WordsPerMinute() float64 {
	minutes := r.EndedAt.Sub(r.StartedAt).Minutes()
	if minutes <= 0 {
		return 0
	}
	return float64(r.Score) / minutes
}
