package components

import (
	"loyalty-coupon-api/internal/infra/repository"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		repository.NewUserRepository,
		repository.NewCompanyRepository,
		repository.NewRuleRepository,
		repository.NewCouponRepository,
	),
)
