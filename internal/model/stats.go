package model

import "time"

// CustomerStatusCounts is the fixed-bucket status tally for customers.
// Records with an unrecognized status only contribute to Total.
type CustomerStatusCounts struct {
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
	Pending  int `json:"pending"`
	Total    int `json:"total"`
}

// ContractorStatusCounts is the fixed-bucket status tally for
// contractors.
type ContractorStatusCounts struct {
	Active    int `json:"active"`
	Inactive  int `json:"inactive"`
	Pending   int `json:"pending"`
	Suspended int `json:"suspended"`
	Total     int `json:"total"`
}

// ContractorStats aggregates the whole contractor store. Rates are
// rounded to two decimals and zero when the store or job count is
// empty.
type ContractorStats struct {
	TotalContractors    int     `json:"totalContractors"`
	ActiveContractors   int     `json:"activeContractors"`
	InactiveContractors int     `json:"inactiveContractors"`
	AverageRating       float64 `json:"averageRating"`
	TotalJobs           int     `json:"totalJobs"`
	CompletedJobs       int     `json:"completedJobs"`
	CompletionRate      float64 `json:"completionRate"`
}

// ContractorRoster is the input to the export generators.
type ContractorRoster struct {
	GeneratedAt time.Time
	Stats       ContractorStats
	Contractors []Contractor
}
