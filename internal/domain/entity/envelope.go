package entity

import "time"

// ContributionFrequency is the cadence of a recurring contribution or capitalization.
type ContributionFrequency string

const (
	FrequencyDaily   ContributionFrequency = "daily"
	FrequencyWeekly  ContributionFrequency = "weekly"
	FrequencyMonthly ContributionFrequency = "monthly"
)

// AutoContribution is a recurring contribution rule attached to an envelope.
type AutoContribution struct {
	Amount    float64
	Frequency ContributionFrequency
}

// Contribution is a single dated deposit into an envelope.
type Contribution struct {
	Amount float64
	At     time.Time
}

// Envelope is a savings goal with a target and optional deadline.
type Envelope struct {
	ID               string
	Name             string
	TargetAmount     float64
	CurrentAmount    float64
	Deadline         *time.Time
	Priority         int // lower value is funded first
	CreatedAt        time.Time
	AutoContribution *AutoContribution
	Contributions    []Contribution
	YieldRate        *float64 // annual rate in percent
	YieldFrequency   ContributionFrequency
}
