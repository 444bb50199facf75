package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentbms/talent-bms-api/infrastructure/repository/mocks"
	"github.com/talentbms/talent-bms-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestBuildDashboard_AllTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saleRepo := mocks.NewMockSaleRepository(ctrl)
	postRepo := mocks.NewMockPostRepository(ctrl)
	productRepo := mocks.NewMockProductRepository(ctrl)

	saleRepo.EXPECT().ListRecent().Return([]*domain.Sale{
		{Kind: domain.SaleKindGeneral, TalentName: "Ana", GMV: 100, Commission: 10},
		{Kind: domain.SaleKindContent, TalentName: "Bia", Revenue: 50, Commission: 5, ProductID: "prod1"},
	}, nil)
	postRepo.EXPECT().ListRecent().Return([]*domain.Post{
		{ID: "post1", Platform: domain.PlatformTikTok, ProductID: "prod1"},
	}, nil)
	productRepo.EXPECT().List().Return([]*domain.Product{
		{ID: "prod1", Name: "Serum"},
	}, nil)

	service := &Service{
		saleRepo:    saleRepo,
		postRepo:    postRepo,
		productRepo: productRepo,
	}

	report := service.BuildDashboard(context.Background(), &domain.ReportFilters{})

	assert.Equal(t, int64(150), report.TotalRevenue)
	assert.Equal(t, int64(15), report.TotalCommission)
	assert.Equal(t, 1, report.TotalPosts)
	assert.Equal(t, 1, report.ActiveProductCount)
	assert.Len(t, report.SalesByTalent, 2)
	assert.Len(t, report.PostsByPlatform, 1)
	assert.Len(t, report.RecentSales, 2)
	assert.False(t, report.SyncError)
}

func TestBuildDashboard_RangedUsesDateRangeQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saleRepo := mocks.NewMockSaleRepository(ctrl)
	postRepo := mocks.NewMockPostRepository(ctrl)
	productRepo := mocks.NewMockProductRepository(ctrl)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	filters := &domain.ReportFilters{StartDate: &start, EndDate: &end}

	saleRepo.EXPECT().ListByDateRange(start, end).Return([]*domain.Sale{}, nil)
	postRepo.EXPECT().ListByDateRange(start, end).Return([]*domain.Post{}, nil)
	productRepo.EXPECT().List().Return([]*domain.Product{}, nil)

	service := &Service{
		saleRepo:    saleRepo,
		postRepo:    postRepo,
		productRepo: productRepo,
	}

	report := service.BuildDashboard(context.Background(), filters)

	assert.Zero(t, report.TotalRevenue)
	assert.Equal(t, filters, report.Filters)
	assert.False(t, report.SyncError)
}

func TestBuildDashboard_DegradesFailedCollectionToEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saleRepo := mocks.NewMockSaleRepository(ctrl)
	postRepo := mocks.NewMockPostRepository(ctrl)
	productRepo := mocks.NewMockProductRepository(ctrl)

	saleRepo.EXPECT().ListRecent().Return(nil, errors.New("connection refused"))
	postRepo.EXPECT().ListRecent().Return([]*domain.Post{
		{ID: "post1", Platform: domain.PlatformInstagram},
	}, nil)
	productRepo.EXPECT().List().Return([]*domain.Product{
		{ID: "prod1", Name: "Serum"},
	}, nil)

	service := &Service{
		saleRepo:    saleRepo,
		postRepo:    postRepo,
		productRepo: productRepo,
	}

	report := service.BuildDashboard(context.Background(), &domain.ReportFilters{})

	// The report still renders from what loaded; sales degrade to empty.
	assert.True(t, report.SyncError)
	assert.Zero(t, report.TotalRevenue)
	assert.Empty(t, report.RecentSales)
	assert.Equal(t, 1, report.TotalPosts)
	assert.Len(t, report.ProductPerformance, 1)
}

func TestBuildDashboard_AllCollectionsFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saleRepo := mocks.NewMockSaleRepository(ctrl)
	postRepo := mocks.NewMockPostRepository(ctrl)
	productRepo := mocks.NewMockProductRepository(ctrl)

	saleRepo.EXPECT().ListRecent().Return(nil, errors.New("down"))
	postRepo.EXPECT().ListRecent().Return(nil, errors.New("down"))
	productRepo.EXPECT().List().Return(nil, errors.New("down"))

	service := &Service{
		saleRepo:    saleRepo,
		postRepo:    postRepo,
		productRepo: productRepo,
	}

	report := service.BuildDashboard(context.Background(), &domain.ReportFilters{})

	assert.True(t, report.SyncError)
	assert.Zero(t, report.TotalRevenue)
	assert.Zero(t, report.TotalPosts)
	assert.Empty(t, report.ProductPerformance)
	assert.Empty(t, report.SalesByTalent)
}

func TestBuildDashboard_CapsRecentSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saleRepo := mocks.NewMockSaleRepository(ctrl)
	postRepo := mocks.NewMockPostRepository(ctrl)
	productRepo := mocks.NewMockProductRepository(ctrl)

	sales := make([]*domain.Sale, recentSalesRows+10)
	for i := range sales {
		sales[i] = &domain.Sale{Kind: domain.SaleKindGeneral, TalentName: "Ana", GMV: 1}
	}

	saleRepo.EXPECT().ListRecent().Return(sales, nil)
	postRepo.EXPECT().ListRecent().Return([]*domain.Post{}, nil)
	productRepo.EXPECT().List().Return([]*domain.Product{}, nil)

	service := &Service{
		saleRepo:    saleRepo,
		postRepo:    postRepo,
		productRepo: productRepo,
	}

	report := service.BuildDashboard(context.Background(), &domain.ReportFilters{})

	assert.Len(t, report.RecentSales, recentSalesRows)
	// Totals still cover the full snapshot, not just the visible rows.
	assert.Equal(t, int64(recentSalesRows+10), report.TotalRevenue)
}

func TestExportSalesCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saleRepo := mocks.NewMockSaleRepository(ctrl)

	saleRepo.EXPECT().ListRecent().Return([]*domain.Sale{
		{
			Date:       "2024-01-05",
			Kind:       domain.SaleKindGeneral,
			TalentName: "Ana",
			GMV:        100000,
			Commission: 10000,
			Quantity:   2,
		},
	}, nil)

	service := &Service{saleRepo: saleRepo}

	payload, filename, err := service.ExportSalesCSV(context.Background(), &domain.ReportFilters{})
	require.NoError(t, err)

	assert.Equal(t, "sales_report_all_time.csv", filename)
	assert.Equal(t,
		"Date,Type,Talent,Account,Product/Context,Value,Commission,Qty,Views,Clicks\n"+
			"2024-01-05,general,Ana,-,-,100000,10000,2,0,0\n",
		string(payload))
}

func TestExportSalesCSV_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saleRepo := mocks.NewMockSaleRepository(ctrl)
	saleRepo.EXPECT().ListRecent().Return(nil, errors.New("down"))

	service := &Service{saleRepo: saleRepo}

	_, _, err := service.ExportSalesCSV(context.Background(), &domain.ReportFilters{})
	assert.Error(t, err)
}
