// Package settlement contains the shared-expense settlement use case.
package settlement

import (
	"context"
	"errors"

	settlementengine "github.com/finance-tracker/analytics/internal/domain/engine/settlement"
	"github.com/finance-tracker/analytics/internal/domain/entity"
	domainerror "github.com/finance-tracker/analytics/internal/domain/error"
)

// SettleGroupInput represents the input for a group settlement.
type SettleGroupInput struct {
	Members      []entity.Member
	Transactions []entity.SharedTransaction
}

// SettleGroupOutput represents the output of a group settlement.
type SettleGroupOutput struct {
	Result settlementengine.Result
}

// SettleGroupUseCase computes who owes whom in a shared-expense group.
type SettleGroupUseCase struct{}

// NewSettleGroupUseCase creates a new SettleGroupUseCase instance.
func NewSettleGroupUseCase() *SettleGroupUseCase {
	return &SettleGroupUseCase{}
}

// Execute performs the settlement.
func (uc *SettleGroupUseCase) Execute(ctx context.Context, input SettleGroupInput) (*SettleGroupOutput, error) {
	result, err := settlementengine.Solve(input.Members, input.Transactions)
	if err != nil {
		return nil, toSettlementError(err)
	}

	return &SettleGroupOutput{Result: result}, nil
}

// toSettlementError attaches the matching error code to engine errors.
func toSettlementError(err error) error {
	codes := []struct {
		sentinel error
		code     domainerror.SettlementErrorCode
	}{
		{domainerror.ErrNoMembers, domainerror.ErrCodeNoMembers},
		{domainerror.ErrUnknownMember, domainerror.ErrCodeUnknownMember},
		{domainerror.ErrInvalidSharedAmount, domainerror.ErrCodeInvalidSharedAmount},
		{domainerror.ErrExactSplitMismatch, domainerror.ErrCodeExactSplitMismatch},
		{domainerror.ErrPercentageSplitMismatch, domainerror.ErrCodePercentageSplitMismatch},
		{domainerror.ErrInvalidSplit, domainerror.ErrCodeInvalidSplit},
	}
	for _, c := range codes {
		if errors.Is(err, c.sentinel) {
			return domainerror.NewSettlementError(c.code, err.Error(), err)
		}
	}
	return err
}
