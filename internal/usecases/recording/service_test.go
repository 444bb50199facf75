package recording

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentbms/talent-bms-api/infrastructure/repository/mocks"
	"github.com/talentbms/talent-bms-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestCreateSale_GeneralForcesRevenueAndProductEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saleRepo := mocks.NewMockSaleRepository(ctrl)
	saleRepo.EXPECT().Create(gomock.Any()).Return(nil)

	service := &Service{saleRepo: saleRepo}

	sale := &domain.Sale{
		Date:        "2024-01-05",
		Kind:        domain.SaleKindGeneral,
		TalentName:  "Ana",
		AccountName: "ana.store",
		GMV:         100000,
		Revenue:     999, // must be zeroed for general sales
		ProductID:   "prod1",
	}

	created, err := service.CreateSale(sale)
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Len(t, created.ID, 6)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, int64(100000), created.GMV)
	assert.Zero(t, created.Revenue)
	assert.Empty(t, created.ProductID)
}

func TestCreateSale_ContentForcesGMVZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saleRepo := mocks.NewMockSaleRepository(ctrl)
	saleRepo.EXPECT().Create(gomock.Any()).Return(nil)

	service := &Service{saleRepo: saleRepo}

	sale := &domain.Sale{
		Date:        "2024-01-05",
		Kind:        domain.SaleKindContent,
		TalentName:  "Bia",
		AccountName: "bia.shop",
		Revenue:     50000,
		GMV:         999,
		ProductID:   "prod1",
	}

	created, err := service.CreateSale(sale)
	require.NoError(t, err)

	assert.Zero(t, created.GMV)
	assert.Equal(t, int64(50000), created.Revenue)
	assert.Equal(t, "prod1", created.ProductID)
}

func TestCreateSale_Validation(t *testing.T) {
	service := &Service{}

	tests := []struct {
		name    string
		sale    *domain.Sale
		wantErr error
	}{
		{
			name:    "missing date",
			sale:    &domain.Sale{Kind: domain.SaleKindGeneral, TalentName: "Ana", AccountName: "a"},
			wantErr: ErrMissingRequiredData,
		},
		{
			name:    "missing talent",
			sale:    &domain.Sale{Date: "2024-01-05", Kind: domain.SaleKindGeneral, AccountName: "a"},
			wantErr: ErrMissingRequiredData,
		},
		{
			name:    "missing account",
			sale:    &domain.Sale{Date: "2024-01-05", Kind: domain.SaleKindGeneral, TalentName: "Ana"},
			wantErr: ErrMissingRequiredData,
		},
		{
			name:    "malformed date",
			sale:    &domain.Sale{Date: "05/01/2024", Kind: domain.SaleKindGeneral, TalentName: "Ana", AccountName: "a"},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "unknown kind",
			sale:    &domain.Sale{Date: "2024-01-05", Kind: "bundle", TalentName: "Ana", AccountName: "a"},
			wantErr: ErrInvalidSaleKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateSale(tt.sale)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDeleteSale_RequiresID(t *testing.T) {
	service := &Service{}

	err := service.DeleteSale("")
	assert.ErrorIs(t, err, ErrRecordIDRequired)
}

func TestCreatePost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	postRepo := mocks.NewMockPostRepository(ctrl)
	postRepo.EXPECT().Create(gomock.Any()).Return(nil)

	service := &Service{postRepo: postRepo}

	post := &domain.Post{
		Date:        "2024-01-05",
		TalentName:  "Ana",
		AccountName: "ana.store",
		Platform:    domain.PlatformTikTok,
		Link:        "https://tiktok.com/@ana/video/1",
	}

	created, err := service.CreatePost(post)
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreatePost_InvalidPlatform(t *testing.T) {
	service := &Service{}

	post := &domain.Post{
		Date:        "2024-01-05",
		TalentName:  "Ana",
		AccountName: "ana.store",
		Platform:    "MySpace",
		Link:        "https://example.com",
	}

	_, err := service.CreatePost(post)
	assert.ErrorIs(t, err, ErrInvalidPlatform)
}

func TestCreatePost_RequiresLink(t *testing.T) {
	service := &Service{}

	post := &domain.Post{
		Date:        "2024-01-05",
		TalentName:  "Ana",
		AccountName: "ana.store",
		Platform:    domain.PlatformTikTok,
	}

	_, err := service.CreatePost(post)
	assert.ErrorIs(t, err, ErrMissingRequiredData)
}

func TestCreateProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	productRepo := mocks.NewMockProductRepository(ctrl)
	productRepo.EXPECT().Create(gomock.Any()).Return(nil)

	service := &Service{productRepo: productRepo}

	created, err := service.CreateProduct(&domain.Product{Name: "Serum"})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
}

func TestCreateProduct_RequiresName(t *testing.T) {
	service := &Service{}

	_, err := service.CreateProduct(&domain.Product{})
	assert.ErrorIs(t, err, ErrMissingRequiredData)
}

func TestCreateTalent_NormalizesNilAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	talentRepo := mocks.NewMockTalentRepository(ctrl)
	talentRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(talent *domain.TalentReference) error {
		assert.NotNil(t, talent.Accounts)
		return nil
	})

	service := &Service{talentRepo: talentRepo}

	created, err := service.CreateTalent(&domain.TalentReference{Name: "Ana"})
	require.NoError(t, err)

	assert.NotNil(t, created.Accounts)
	assert.Empty(t, created.Accounts)
}

func TestUpdateTalent_Validation(t *testing.T) {
	service := &Service{}

	err := service.UpdateTalent(&domain.TalentReference{Name: "Ana"})
	assert.ErrorIs(t, err, ErrRecordIDRequired)

	err = service.UpdateTalent(&domain.TalentReference{ID: "abc123"})
	assert.ErrorIs(t, err, ErrMissingRequiredData)
}
