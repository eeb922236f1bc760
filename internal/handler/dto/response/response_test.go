package response_test

import (
	"testing"

	"loyalty-coupon-api/internal/handler/dto/response"
	"loyalty-coupon-api/internal/usecase"
	"loyalty-coupon-api/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestFromCompanyList(t *testing.T) {
	views := []usecase.CompanyView{
		*builder.NewCompanyBuilder().BuildView(),
		*builder.NewCompanyBuilder().WithName("Second Shop").WithoutDescription().BuildView(),
	}

	got := response.FromCompanyList(views)

	want := []*response.CompanyResponse{
		{
			ID:          views[0].ID.String(),
			Name:        views[0].Name,
			Description: views[0].Description,
			AdminID:     views[0].AdminID.String(),
			CreatedAt:   views[0].CreatedAt,
		},
		{
			ID:        views[1].ID.String(),
			Name:      "Second Shop",
			AdminID:   views[1].AdminID.String(),
			CreatedAt: views[1].CreatedAt,
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("company list mismatch (-want +got):\n%s", diff)
	}
}

func TestFromRuleList_Empty(t *testing.T) {
	got := response.FromRuleList(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
