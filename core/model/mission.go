package model

import (
	"fmt"
	"time"
)

// Priority orders missions from least to most important.
type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityStandard Priority = "Standard"
	PriorityHigh     Priority = "High"
	PriorityUrgent   Priority = "Urgent"
)

// Rank maps the priority onto its total order. Unknown values rank with Low.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 4
	case PriorityHigh:
		return 3
	case PriorityStandard:
		return 2
	default:
		return 1
	}
}

// Mission is a time-bounded job requiring a qualified pilot and drone.
// Missions are provisioned externally and read-only for the engine.
type Mission struct {
	ID             string   `json:"project_id"`
	Client         string   `json:"client"`
	Location       string   `json:"location"`
	RequiredSkills string   `json:"required_skills"`
	RequiredCerts  string   `json:"required_certs"`
	StartDate      string   `json:"start_date"`
	EndDate        string   `json:"end_date"`
	Priority       Priority `json:"priority"`
}

// Window parses the mission's inclusive date interval. A reversed interval is
// treated the same as an unparseable one.
func (m Mission) Window() (start, end time.Time, err error) {
	start, err = ParseDate(m.StartDate)
	if err != nil {
		return
	}
	end, err = ParseDate(m.EndDate)
	if err != nil {
		return
	}
	if end.Before(start) {
		err = fmt.Errorf("mission %s: end date precedes start date", m.ID)
	}
	return
}
