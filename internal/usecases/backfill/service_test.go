package backfill

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentbms/talent-bms-api/infrastructure/repository/mocks"
	"go.uber.org/mock/gomock"
)

func TestResolveProductLinks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saleRepo := mocks.NewMockSaleRepository(ctrl)
	saleRepo.EXPECT().ResolveLegacyProductLinks(gomock.Any()).Return(int64(12), int64(3), nil)

	service := &Service{saleRepo: saleRepo}

	result, err := service.ResolveProductLinks(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(12), result.Resolved)
	assert.Equal(t, int64(3), result.Unresolved)
	assert.False(t, result.RanAt.IsZero())
}

func TestResolveProductLinks_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saleRepo := mocks.NewMockSaleRepository(ctrl)
	saleRepo.EXPECT().ResolveLegacyProductLinks(gomock.Any()).Return(int64(0), int64(0), errors.New("tx aborted"))

	service := &Service{saleRepo: saleRepo}

	result, err := service.ResolveProductLinks(context.Background())
	assert.Error(t, err)
	assert.Nil(t, result)
}
