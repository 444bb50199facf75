package reporting

import (
	"context"
	"sync"
	"time"

	"github.com/talentbms/talent-bms-api/infrastructure/repository"
	"github.com/talentbms/talent-bms-api/internal/domain"
	"github.com/talentbms/talent-bms-api/pkg/log"
)

// recentSalesRows caps the recent-sales table in the dashboard payload.
const recentSalesRows = 50

// Reporter serves dashboard aggregates and sales exports.
type Reporter interface {
	// BuildDashboard assembles the full dashboard report. Fetch failures
	// degrade the affected collection to empty and set SyncError instead
	// of failing the report.
	BuildDashboard(ctx context.Context, filters *domain.ReportFilters) *domain.DashboardReport

	// ListSales returns the raw sales snapshot for the given filters.
	ListSales(ctx context.Context, filters *domain.ReportFilters) ([]*domain.Sale, error)

	// ListPosts returns the raw posts snapshot for the given filters.
	ListPosts(ctx context.Context, filters *domain.ReportFilters) ([]*domain.Post, error)

	// ExportSalesCSV renders the sales report as CSV and returns the
	// payload with its download filename.
	ExportSalesCSV(ctx context.Context, filters *domain.ReportFilters) ([]byte, string, error)

	// ExportSalesXLSX is the spreadsheet variant of ExportSalesCSV.
	ExportSalesXLSX(ctx context.Context, filters *domain.ReportFilters) ([]byte, string, error)
}

type Service struct {
	saleRepo    repository.SaleRepository
	postRepo    repository.PostRepository
	productRepo repository.ProductRepository
}

func NewService(
	saleRepo repository.SaleRepository,
	postRepo repository.PostRepository,
	productRepo repository.ProductRepository,
) Reporter {
	return &Service{
		saleRepo:    saleRepo,
		postRepo:    postRepo,
		productRepo: productRepo,
	}
}

// BuildDashboard fetches the three collections concurrently, waits for all
// of them, then runs the aggregation over the joint snapshot. Every call
// works on a fresh snapshot; there is no shared report state to race on.
func (s *Service) BuildDashboard(ctx context.Context, filters *domain.ReportFilters) *domain.DashboardReport {
	logger := log.ForContext(ctx)

	var (
		sales    []*domain.Sale
		posts    []*domain.Post
		products []*domain.Product

		salesErr    error
		postsErr    error
		productsErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(3)

	go func() {
		defer wg.Done()
		sales, salesErr = s.fetchSales(filters)
	}()

	go func() {
		defer wg.Done()
		posts, postsErr = s.fetchPosts(filters)
	}()

	go func() {
		defer wg.Done()
		products, productsErr = s.productRepo.List()
	}()

	wg.Wait()

	syncError := false
	if salesErr != nil {
		logger.WithError(salesErr).Error("dashboard: failed to fetch sales, degrading to empty")
		sales, syncError = []*domain.Sale{}, true
	}
	if postsErr != nil {
		logger.WithError(postsErr).Error("dashboard: failed to fetch posts, degrading to empty")
		posts, syncError = []*domain.Post{}, true
	}
	if productsErr != nil {
		logger.WithError(productsErr).Error("dashboard: failed to fetch products, degrading to empty")
		products, syncError = []*domain.Product{}, true
	}

	ranged := filters.Ranged()
	performance := ProductPerformance(products, posts, sales, ranged)

	recent := sales
	if len(recent) > recentSalesRows {
		recent = recent[:recentSalesRows]
	}

	return &domain.DashboardReport{
		TotalRevenue:       TotalRevenue(sales),
		TotalCommission:    TotalCommission(sales),
		TotalPosts:         len(posts),
		ActiveProductCount: ActiveProductCount(performance, ranged),
		SalesByTalent:      GroupByTalent(sales),
		PostsByPlatform:    GroupByPlatform(posts),
		ProductPerformance: performance,
		RecentSales:        recent,
		Filters:            filters,
		SyncError:          syncError,
	}
}

func (s *Service) ListSales(ctx context.Context, filters *domain.ReportFilters) ([]*domain.Sale, error) {
	return s.fetchSales(filters)
}

func (s *Service) ListPosts(ctx context.Context, filters *domain.ReportFilters) ([]*domain.Post, error) {
	return s.fetchPosts(filters)
}

func (s *Service) fetchSales(filters *domain.ReportFilters) ([]*domain.Sale, error) {
	if filters.Ranged() {
		return s.saleRepo.ListByDateRange(*filters.StartDate, *filters.EndDate)
	}
	return s.saleRepo.ListRecent()
}

func (s *Service) fetchPosts(filters *domain.ReportFilters) ([]*domain.Post, error) {
	if filters.Ranged() {
		return s.postRepo.ListByDateRange(*filters.StartDate, *filters.EndDate)
	}
	return s.postRepo.ListRecent()
}

// exportFilename builds the download name for a sales report export.
func exportFilename(filters *domain.ReportFilters, extension string) string {
	if filters.Ranged() {
		return "sales_report_" +
			filters.StartDate.Format(time.DateOnly) +
			"_to_" +
			filters.EndDate.Format(time.DateOnly) +
			"." + extension
	}
	return "sales_report_all_time." + extension
}
