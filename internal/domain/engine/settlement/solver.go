// Package settlement splits shared expenses among group members and reduces
// the resulting balances to a short list of transfers.
package settlement

import (
	"fmt"
	"math"
	"sort"

	"github.com/finance-tracker/analytics/internal/domain/entity"
	domainerror "github.com/finance-tracker/analytics/internal/domain/error"
)

const (
	// Epsilon is the net balance treated as settled.
	Epsilon = 0.005
	// ExactTolerance is the allowed gap between exact shares and the amount.
	ExactTolerance = 0.01
	// PercentTolerance is the allowed gap between the percentage total and 100.
	PercentTolerance = 0.01
)

// Share is one member's portion of a transaction.
type Share struct {
	MemberID string
	Amount   float64
}

// Balance aggregates what a member paid and owes across all transactions.
// Net is positive when the member is owed money.
type Balance struct {
	MemberID string
	Paid     float64
	Owed     float64
	Net      float64
}

// Transfer moves Amount from a debtor to a creditor.
type Transfer struct {
	From   string
	To     string
	Amount float64
}

// Result is the outcome of settling a group.
type Result struct {
	Shares    map[string][]Share
	Balances  []Balance
	Transfers []Transfer
}

// Solve computes shares, balances and transfers for a group.
func Solve(members []entity.Member, txs []entity.SharedTransaction) (Result, error) {
	if len(members) == 0 {
		return Result{}, domainerror.ErrNoMembers
	}

	shares := make(map[string][]Share, len(txs))
	for _, tx := range txs {
		s, err := Shares(tx, members)
		if err != nil {
			return Result{}, fmt.Errorf("transaction %s: %w", tx.ID, err)
		}
		shares[tx.ID] = s
	}

	balances, err := balancesFromShares(members, txs, shares)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Shares:    shares,
		Balances:  balances,
		Transfers: Settle(balances),
	}, nil
}

// Shares splits a single transaction. An empty participant list means every member.
func Shares(tx entity.SharedTransaction, members []entity.Member) ([]Share, error) {
	if tx.Amount <= 0 {
		return nil, domainerror.ErrInvalidSharedAmount
	}

	byID := indexMembers(members)
	participants := tx.Participants
	if len(participants) == 0 {
		participants = make([]string, 0, len(members))
		for _, m := range members {
			participants = append(participants, m.ID)
		}
	}
	for _, id := range participants {
		if _, ok := byID[id]; !ok {
			return nil, fmt.Errorf("%w: %s", domainerror.ErrUnknownMember, id)
		}
	}
	if len(participants) == 0 {
		return nil, domainerror.ErrNoMembers
	}

	switch split := tx.Split.(type) {
	case nil, entity.EqualSplit:
		return equalShares(tx.Amount, participants), nil
	case entity.WeightedSplit:
		return weightedShares(tx.Amount, participants, byID), nil
	case entity.ExactSplit:
		return exactShares(tx.Amount, participants, split.Amounts)
	case entity.PercentageSplit:
		return percentageShares(tx.Amount, participants, split.Percents)
	default:
		return nil, domainerror.ErrInvalidSplit
	}
}

func equalShares(amount float64, participants []string) []Share {
	each := amount / float64(len(participants))
	shares := make([]Share, 0, len(participants))
	for _, id := range participants {
		shares = append(shares, Share{MemberID: id, Amount: each})
	}
	return shares
}

func weightedShares(amount float64, participants []string, byID map[string]entity.Member) []Share {
	total := 0.0
	for _, id := range participants {
		total += math.Max(0, byID[id].IncomeWeight)
	}
	if total <= 0 {
		return equalShares(amount, participants)
	}

	shares := make([]Share, 0, len(participants))
	for _, id := range participants {
		shares = append(shares, Share{MemberID: id, Amount: amount * math.Max(0, byID[id].IncomeWeight) / total})
	}
	return shares
}

func exactShares(amount float64, participants []string, amounts map[string]float64) ([]Share, error) {
	if err := keysWithin(amounts, participants); err != nil {
		return nil, err
	}

	sum := 0.0
	shares := make([]Share, 0, len(participants))
	for _, id := range participants {
		v := amounts[id]
		if v < 0 {
			return nil, domainerror.ErrExactSplitMismatch
		}
		sum += v
		shares = append(shares, Share{MemberID: id, Amount: v})
	}
	if math.Abs(sum-amount) > ExactTolerance {
		return nil, domainerror.ErrExactSplitMismatch
	}
	return shares, nil
}

func percentageShares(amount float64, participants []string, percents map[string]float64) ([]Share, error) {
	if err := keysWithin(percents, participants); err != nil {
		return nil, err
	}

	sum := 0.0
	shares := make([]Share, 0, len(participants))
	for _, id := range participants {
		p := percents[id]
		if p < 0 {
			return nil, domainerror.ErrPercentageSplitMismatch
		}
		sum += p
		shares = append(shares, Share{MemberID: id, Amount: amount * p / 100})
	}
	if math.Abs(sum-100) > PercentTolerance {
		return nil, domainerror.ErrPercentageSplitMismatch
	}
	return shares, nil
}

func keysWithin(values map[string]float64, participants []string) error {
	allowed := make(map[string]struct{}, len(participants))
	for _, id := range participants {
		allowed[id] = struct{}{}
	}
	for id := range values {
		if _, ok := allowed[id]; !ok {
			return fmt.Errorf("%w: %s", domainerror.ErrUnknownMember, id)
		}
	}
	return nil
}

func indexMembers(members []entity.Member) map[string]entity.Member {
	byID := make(map[string]entity.Member, len(members))
	for _, m := range members {
		byID[m.ID] = m
	}
	return byID
}

// Balances aggregates paid minus owed per member, in member order.
func Balances(members []entity.Member, txs []entity.SharedTransaction) ([]Balance, error) {
	shares := make(map[string][]Share, len(txs))
	for _, tx := range txs {
		s, err := Shares(tx, members)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: %w", tx.ID, err)
		}
		shares[tx.ID] = s
	}
	return balancesFromShares(members, txs, shares)
}

func balancesFromShares(members []entity.Member, txs []entity.SharedTransaction, shares map[string][]Share) ([]Balance, error) {
	byID := indexMembers(members)
	paid := make(map[string]float64, len(members))
	owed := make(map[string]float64, len(members))

	for _, tx := range txs {
		if _, ok := byID[tx.PaidBy]; !ok {
			return nil, fmt.Errorf("transaction %s: %w: %s", tx.ID, domainerror.ErrUnknownMember, tx.PaidBy)
		}
		paid[tx.PaidBy] += tx.Amount
		for _, s := range shares[tx.ID] {
			owed[s.MemberID] += s.Amount
		}
	}

	balances := make([]Balance, 0, len(members))
	for _, m := range members {
		balances = append(balances, Balance{
			MemberID: m.ID,
			Paid:     paid[m.ID],
			Owed:     owed[m.ID],
			Net:      paid[m.ID] - owed[m.ID],
		})
	}
	return balances, nil
}

type party struct {
	id     string
	amount float64
}

// Settle greedily matches the largest debtor with the largest creditor until
// every balance is within Epsilon. The result has at most n-1 transfers but is
// not guaranteed to be the global minimum.
func Settle(balances []Balance) []Transfer {
	var debtors, creditors []party
	for _, b := range balances {
		switch {
		case b.Net < -Epsilon:
			debtors = append(debtors, party{id: b.MemberID, amount: -b.Net})
		case b.Net > Epsilon:
			creditors = append(creditors, party{id: b.MemberID, amount: b.Net})
		}
	}
	byMagnitude := func(parties []party) func(i, j int) bool {
		return func(i, j int) bool {
			if parties[i].amount != parties[j].amount {
				return parties[i].amount > parties[j].amount
			}
			return parties[i].id < parties[j].id
		}
	}
	sort.SliceStable(debtors, byMagnitude(debtors))
	sort.SliceStable(creditors, byMagnitude(creditors))

	transfers := []Transfer{}
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := math.Min(debtors[i].amount, creditors[j].amount)
		if amount > Epsilon {
			transfers = append(transfers, Transfer{From: debtors[i].id, To: creditors[j].id, Amount: amount})
		}
		debtors[i].amount -= amount
		creditors[j].amount -= amount
		if debtors[i].amount <= Epsilon {
			i++
		}
		if creditors[j].amount <= Epsilon {
			j++
		}
	}
	return transfers
}
