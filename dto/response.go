package dto

import "time"

// ProgramsResp lists the distinct programs across all schools.
type ProgramsResp struct {
	Count    int      `json:"count"`
	Programs []string `json:"programs"`
}

// StatsResp carries directory-wide aggregates.
type StatsResp struct {
	TotalSchools      int64 `json:"totalSchools"`
	AccreditedSchools int64 `json:"accreditedSchools"`
	TotalPrograms     int   `json:"totalPrograms"`
}

// HealthResp reports API and datastore liveness.
type HealthResp struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}
