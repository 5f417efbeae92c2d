package model

// Candidate is the matcher's advisory view of one pilot for one mission.
// Its Eligible flag is a display notion and is independent of whether the
// detector would let an assignment commit.
type Candidate struct {
	PilotID        string      `json:"pilot_id"`
	Name           string      `json:"name"`
	Score          int         `json:"score"`
	Location       string      `json:"location"`
	Status         PilotStatus `json:"status"`
	Eligible       bool        `json:"eligible"`
	Issues         []string    `json:"issues"`
	Certifications string      `json:"certifications"`
	Skills         string      `json:"skills"`
}
