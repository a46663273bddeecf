// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"fmt"
	"strings"

	"github.com/finance-tracker/analytics/internal/application/usecase/settlement"
	"github.com/finance-tracker/analytics/internal/domain/entity"
)

// MemberRequest represents a group member.
type MemberRequest struct {
	ID           string  `json:"id" binding:"required"`
	Name         string  `json:"name"`
	IncomeWeight float64 `json:"income_weight"`
}

// SplitRequest describes how a shared transaction is divided.
type SplitRequest struct {
	Method   string             `json:"method"`
	Amounts  map[string]float64 `json:"amounts,omitempty"`
	Percents map[string]float64 `json:"percents,omitempty"`
}

// SharedTransactionRequest represents an expense paid on behalf of several members.
type SharedTransactionRequest struct {
	ID           string        `json:"id"`
	PaidBy       string        `json:"paid_by" binding:"required"`
	Amount       float64       `json:"amount"`
	Participants []string      `json:"participants,omitempty"`
	Split        *SplitRequest `json:"split,omitempty"`
}

// SettleGroupRequest represents the request body for a group settlement.
type SettleGroupRequest struct {
	Members      []MemberRequest            `json:"members" binding:"required,dive"`
	Transactions []SharedTransactionRequest `json:"transactions" binding:"dive"`
}

// ToSplit converts the request into a split variant. A nil request means an equal split.
func (r *SplitRequest) ToSplit() (entity.Split, error) {
	if r == nil {
		return entity.EqualSplit{}, nil
	}
	switch entity.SplitMethod(strings.ToLower(strings.TrimSpace(r.Method))) {
	case "", entity.SplitMethodEqual:
		return entity.EqualSplit{}, nil
	case entity.SplitMethodWeighted:
		return entity.WeightedSplit{}, nil
	case entity.SplitMethodExact:
		return entity.ExactSplit{Amounts: r.Amounts}, nil
	case entity.SplitMethodPercentage:
		return entity.PercentageSplit{Percents: r.Percents}, nil
	default:
		return nil, fmt.Errorf("unknown split method %q", r.Method)
	}
}

// ToInput converts the request into use case input.
func (r *SettleGroupRequest) ToInput() (settlement.SettleGroupInput, error) {
	members := make([]entity.Member, len(r.Members))
	for i, m := range r.Members {
		members[i] = entity.Member{ID: m.ID, Name: m.Name, IncomeWeight: m.IncomeWeight}
	}

	txs := make([]entity.SharedTransaction, len(r.Transactions))
	for i, t := range r.Transactions {
		split, err := t.Split.ToSplit()
		if err != nil {
			return settlement.SettleGroupInput{}, err
		}
		id := t.ID
		if id == "" {
			id = fmt.Sprintf("tx-%d", i+1)
		}
		txs[i] = entity.SharedTransaction{
			ID:           id,
			PaidBy:       t.PaidBy,
			Amount:       t.Amount,
			Participants: t.Participants,
			Split:        split,
		}
	}

	return settlement.SettleGroupInput{Members: members, Transactions: txs}, nil
}

// ShareResponse is one member's portion of a transaction.
type ShareResponse struct {
	MemberID string  `json:"member_id"`
	Amount   float64 `json:"amount"`
}

// BalanceResponse is a member's position across all transactions.
type BalanceResponse struct {
	MemberID string  `json:"member_id"`
	Paid     float64 `json:"paid"`
	Owed     float64 `json:"owed"`
	Net      float64 `json:"net"`
}

// TransferResponse is a single payment that settles part of the group's debts.
type TransferResponse struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// SettleGroupResponse represents the response for a group settlement.
type SettleGroupResponse struct {
	Shares    map[string][]ShareResponse `json:"shares"`
	Balances  []BalanceResponse          `json:"balances"`
	Transfers []TransferResponse         `json:"transfers"`
}

// ToSettleGroupResponse converts a SettleGroupOutput to a SettleGroupResponse DTO.
func ToSettleGroupResponse(output *settlement.SettleGroupOutput) SettleGroupResponse {
	result := output.Result

	shares := make(map[string][]ShareResponse, len(result.Shares))
	for txID, txShares := range result.Shares {
		items := make([]ShareResponse, len(txShares))
		for i, s := range txShares {
			items[i] = ShareResponse{MemberID: s.MemberID, Amount: Money(s.Amount)}
		}
		shares[txID] = items
	}

	balances := make([]BalanceResponse, len(result.Balances))
	for i, b := range result.Balances {
		balances[i] = BalanceResponse{
			MemberID: b.MemberID,
			Paid:     Money(b.Paid),
			Owed:     Money(b.Owed),
			Net:      Money(b.Net),
		}
	}

	transfers := make([]TransferResponse, len(result.Transfers))
	for i, t := range result.Transfers {
		transfers[i] = TransferResponse{From: t.From, To: t.To, Amount: Money(t.Amount)}
	}

	return SettleGroupResponse{Shares: shares, Balances: balances, Transfers: transfers}
}
