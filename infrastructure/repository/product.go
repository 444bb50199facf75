package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/talentbms/talent-bms-api/infrastructure/database/postgres"
	"github.com/talentbms/talent-bms-api/internal/domain"
)

const productsTable = "products"

type ProductRepository interface {
	List() ([]*domain.Product, error)
	GetByID(id string) (*domain.Product, error)
	Create(product *domain.Product) error
	Update(product *domain.Product) error
	Delete(id string) error
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) List() ([]*domain.Product, error) {
	query, args, err := squirrel.
		Select("id", "name", "url", "talent_name", "account_name", "created_at").
		From(productsTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.Product{}, nil
		}
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product := &domain.Product{}
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.URL,
			&product.TalentName,
			&product.AccountName,
			&product.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return products, nil
}

func (r *productRepository) GetByID(id string) (*domain.Product, error) {
	query, args, err := squirrel.
		Select("id", "name", "url", "talent_name", "account_name", "created_at").
		From(productsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	product := &domain.Product{}
	err = r.conn.QueryRow(query, args...).Scan(
		&product.ID,
		&product.Name,
		&product.URL,
		&product.TalentName,
		&product.AccountName,
		&product.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning product: %w", err)
	}

	return product, nil
}

func (r *productRepository) Create(product *domain.Product) error {
	query, args, err := squirrel.
		Insert(productsTable).
		Columns("id", "name", "url", "talent_name", "account_name", "created_at").
		Values(
			product.ID,
			product.Name,
			product.URL,
			product.TalentName,
			product.AccountName,
			product.CreatedAt,
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

// Update replaces the product's name, url and owner assignment.
func (r *productRepository) Update(product *domain.Product) error {
	query, args, err := squirrel.
		Update(productsTable).
		Set("name", product.Name).
		Set("url", product.URL).
		Set("talent_name", product.TalentName).
		Set("account_name", product.AccountName).
		Where(squirrel.Eq{"id": product.ID}).
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

func (r *productRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete(productsTable).
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
