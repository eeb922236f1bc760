package components

import (
	"loyalty-coupon-api/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		usecase.NewAuthUseCase,
		usecase.NewCompanyUseCase,
		usecase.NewRuleUseCase,
		usecase.NewCouponLedger,
		usecase.NewTokenValidator,
	),
)
