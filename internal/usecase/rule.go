package usecase

import (
	"context"

	"loyalty-coupon-api/internal/domain/rule"
	"loyalty-coupon-api/internal/infra"
	"loyalty-coupon-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRuleNotFound  = errs.New("coupon rule not found")
	ErrRuleForbidden = errs.New("coupon rule belongs to another admin's company")
)

type RuleView struct {
	ID              uuid.UUID `json:"id"`
	CompanyID       uuid.UUID `json:"company_id"`
	RequiredCoupons int32     `json:"required_coupons"`
	Reward          string    `json:"reward"`
}

// RuleRepository fetches rules by id alone; ownership cannot be folded
// into the query because rules carry no owner column of their own.
type RuleRepository interface {
	Create(ctx context.Context, companyID uuid.UUID, requiredCoupons int32, reward string) (*RuleView, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]RuleView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*RuleView, error)
	Update(ctx context.Context, id uuid.UUID, requiredCoupons int32, reward string) (*RuleView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type UpdateRuleInput struct {
	RequiredCoupons *int32
	Reward          *string
}

type RuleUseCase interface {
	Create(ctx context.Context, adminID, companyID uuid.UUID, requiredCoupons int32, reward string) (*RuleView, error)
	ListByCompany(ctx context.Context, adminID, companyID uuid.UUID) ([]RuleView, error)
	Get(ctx context.Context, adminID, ruleID uuid.UUID) (*RuleView, error)
	Update(ctx context.Context, adminID, ruleID uuid.UUID, input UpdateRuleInput) (*RuleView, error)
	Delete(ctx context.Context, adminID, ruleID uuid.UUID) error
}

type ruleUseCaseImpl struct {
	ruleRepo    RuleRepository
	companyRepo CompanyRepository
}

func NewRuleUseCase(ruleRepo RuleRepository, companyRepo CompanyRepository) RuleUseCase {
	return &ruleUseCaseImpl{
		ruleRepo:    ruleRepo,
		companyRepo: companyRepo,
	}
}

func (r *ruleUseCaseImpl) Create(ctx context.Context, adminID, companyID uuid.UUID, requiredCoupons int32, reward string) (*RuleView, error) {
	// Ownership pre-check first: a foreign company reads as not found.
	if err := r.checkCompanyOwned(ctx, adminID, companyID); err != nil {
		return nil, err
	}

	threshold, err := rule.NewRequiredCoupons(requiredCoupons)
	if err != nil {
		return nil, err
	}

	return r.ruleRepo.Create(ctx, companyID, threshold.Value(), reward)
}

func (r *ruleUseCaseImpl) ListByCompany(ctx context.Context, adminID, companyID uuid.UUID) ([]RuleView, error) {
	if err := r.checkCompanyOwned(ctx, adminID, companyID); err != nil {
		return nil, err
	}
	return r.ruleRepo.ListByCompany(ctx, companyID)
}

func (r *ruleUseCaseImpl) Get(ctx context.Context, adminID, ruleID uuid.UUID) (*RuleView, error) {
	return r.loadOwnedRule(ctx, adminID, ruleID)
}

func (r *ruleUseCaseImpl) Update(ctx context.Context, adminID, ruleID uuid.UUID, input UpdateRuleInput) (*RuleView, error) {
	existing, err := r.loadOwnedRule(ctx, adminID, ruleID)
	if err != nil {
		return nil, err
	}

	requiredCoupons := existing.RequiredCoupons
	if input.RequiredCoupons != nil {
		// Validated only when the update touches the field.
		threshold, verr := rule.NewRequiredCoupons(*input.RequiredCoupons)
		if verr != nil {
			return nil, verr
		}
		requiredCoupons = threshold.Value()
	}

	reward := existing.Reward
	if input.Reward != nil {
		reward = *input.Reward
	}

	return r.ruleRepo.Update(ctx, ruleID, requiredCoupons, reward)
}

func (r *ruleUseCaseImpl) Delete(ctx context.Context, adminID, ruleID uuid.UUID) error {
	if _, err := r.loadOwnedRule(ctx, adminID, ruleID); err != nil {
		return err
	}
	return r.ruleRepo.Delete(ctx, ruleID)
}

// loadOwnedRule is the two-step transitive ownership check. The rule is
// fetched by id first, so an absent rule reads as not found. Only then is
// its company loaded through the admin-scoped lookup; a miss there means
// the rule exists but is someone else's, which reads as forbidden.
func (r *ruleUseCaseImpl) loadOwnedRule(ctx context.Context, adminID, ruleID uuid.UUID) (*RuleView, error) {
	view, err := r.ruleRepo.FindByID(ctx, ruleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRuleNotFound)
		}
		return nil, err
	}

	if _, err := r.companyRepo.FindByIDForAdmin(ctx, view.CompanyID, adminID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRuleForbidden)
		}
		return nil, err
	}

	return view, nil
}

func (r *ruleUseCaseImpl) checkCompanyOwned(ctx context.Context, adminID, companyID uuid.UUID) error {
	if _, err := r.companyRepo.FindByIDForAdmin(ctx, companyID, adminID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrCompanyNotFound)
		}
		return err
	}
	return nil
}
