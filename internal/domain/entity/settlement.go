package entity

// Member is a participant in a shared-expense group.
type Member struct {
	ID           string
	Name         string
	IncomeWeight float64 // monthly income used by weighted splits
}

// Split describes how a shared transaction is divided among its participants.
// The set of implementations is closed: EqualSplit, WeightedSplit, ExactSplit
// and PercentageSplit.
type Split interface {
	splitMethod() SplitMethod
}

// SplitMethod is the wire tag of a Split variant.
type SplitMethod string

const (
	SplitMethodEqual      SplitMethod = "equal"
	SplitMethodWeighted   SplitMethod = "weighted"
	SplitMethodExact      SplitMethod = "exact"
	SplitMethodPercentage SplitMethod = "percentage"
)

// EqualSplit divides the amount evenly.
type EqualSplit struct{}

// WeightedSplit divides the amount proportionally to member income.
type WeightedSplit struct{}

// ExactSplit assigns explicit amounts per member.
type ExactSplit struct {
	Amounts map[string]float64
}

// PercentageSplit assigns a percentage (0..100) per member.
type PercentageSplit struct {
	Percents map[string]float64
}

func (EqualSplit) splitMethod() SplitMethod      { return SplitMethodEqual }
func (WeightedSplit) splitMethod() SplitMethod   { return SplitMethodWeighted }
func (ExactSplit) splitMethod() SplitMethod      { return SplitMethodExact }
func (PercentageSplit) splitMethod() SplitMethod { return SplitMethodPercentage }

// MethodOf returns the wire tag of s.
func MethodOf(s Split) SplitMethod {
	if s == nil {
		return SplitMethodEqual
	}
	return s.splitMethod()
}

// SharedTransaction is an expense paid by one member on behalf of several.
type SharedTransaction struct {
	ID           string
	PaidBy       string
	Amount       float64
	Participants []string // empty means every member
	Split        Split
}
