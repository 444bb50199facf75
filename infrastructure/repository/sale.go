package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/talentbms/talent-bms-api/infrastructure/database/postgres"
	"github.com/talentbms/talent-bms-api/internal/domain"
)

const (
	salesTable = "sales"

	// recentSalesLimit bounds the unranged listing; the ranged variant
	// returns every row inside the period.
	recentSalesLimit = 50
)

var saleColumns = []string{
	"id", "date", "talent_name", "account_name", "kind",
	"gmv", "revenue", "commission", "quantity",
	"product_id", "legacy_linked_post_id", "product_name",
	"product_views", "product_clicks", "created_at",
}

type SaleRepository interface {
	ListRecent() ([]*domain.Sale, error)
	ListByDateRange(startDate, endDate time.Time) ([]*domain.Sale, error)
	Create(sale *domain.Sale) error
	Delete(id string) error
	ResolveLegacyProductLinks(ctx context.Context) (resolved, unresolved int64, err error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) ListRecent() ([]*domain.Sale, error) {
	query, args, err := squirrel.
		Select(saleColumns...).
		From(salesTable).
		OrderBy("date DESC", "created_at DESC").
		Limit(recentSalesLimit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	return r.querySales(query, args...)
}

func (r *saleRepository) ListByDateRange(startDate, endDate time.Time) ([]*domain.Sale, error) {
	query, args, err := squirrel.
		Select(saleColumns...).
		From(salesTable).
		Where(squirrel.GtOrEq{"date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"date": endDate.Format(time.DateOnly)}).
		OrderBy("date DESC", "created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	return r.querySales(query, args...)
}

func (r *saleRepository) Create(sale *domain.Sale) error {
	query, args, err := squirrel.
		Insert(salesTable).
		Columns(saleColumns...).
		Values(
			sale.ID,
			sale.Date,
			sale.TalentName,
			sale.AccountName,
			sale.Kind,
			sale.GMV,
			sale.Revenue,
			sale.Commission,
			sale.Quantity,
			sale.ProductID,
			sale.LegacyLinkedPostID,
			sale.ProductName,
			sale.ProductViews,
			sale.ProductClicks,
			sale.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("executing query: %w", err)
	}

	return nil
}

func (r *saleRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete(salesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("executing query: %w", err)
	}

	return nil
}

// ResolveLegacyProductLinks rewrites content sales that still reference a
// product through legacy_linked_post_id into direct product_id references,
// copying the product from the linked post. Returns how many rows were
// resolved and how many legacy rows remain unresolvable (post deleted or
// post not linked to any product).
func (r *saleRepository) ResolveLegacyProductLinks(ctx context.Context) (int64, int64, error) {
	var resolved, unresolved int64

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `
			UPDATE sales s
			SET product_id = p.product_id
			FROM posts p
			WHERE s.kind = $1
			  AND s.product_id = ''
			  AND s.legacy_linked_post_id <> ''
			  AND p.id = s.legacy_linked_post_id
			  AND p.product_id <> ''
		`, domain.SaleKindContent)
		if err != nil {
			return fmt.Errorf("resolving legacy links: %w", err)
		}

		resolved, err = result.RowsAffected()
		if err != nil {
			return fmt.Errorf("counting resolved rows: %w", err)
		}

		row := tx.QueryRowContext(ctx, `
			SELECT COUNT(*)
			FROM sales
			WHERE kind = $1
			  AND product_id = ''
			  AND legacy_linked_post_id <> ''
		`, domain.SaleKindContent)
		if err := row.Scan(&unresolved); err != nil {
			return fmt.Errorf("counting unresolved rows: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return resolved, unresolved, nil
}

func (r *saleRepository) querySales(query string, args ...interface{}) ([]*domain.Sale, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.Sale{}, nil
		}
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning sale: %w", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return sales, nil
}

func scanSale(rows *sql.Rows) (*domain.Sale, error) {
	sale := &domain.Sale{}

	err := rows.Scan(
		&sale.ID,
		&sale.Date,
		&sale.TalentName,
		&sale.AccountName,
		&sale.Kind,
		&sale.GMV,
		&sale.Revenue,
		&sale.Commission,
		&sale.Quantity,
		&sale.ProductID,
		&sale.LegacyLinkedPostID,
		&sale.ProductName,
		&sale.ProductViews,
		&sale.ProductClicks,
		&sale.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return sale, nil
}
