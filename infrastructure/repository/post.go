package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/talentbms/talent-bms-api/infrastructure/database/postgres"
	"github.com/talentbms/talent-bms-api/internal/domain"
)

const (
	postsTable = "posts"

	recentPostsLimit = 50
)

var postColumns = []string{
	"id", "date", "talent_name", "account_name", "platform", "link",
	"product_id", "product_name", "views", "likes", "created_at",
}

type PostRepository interface {
	ListRecent() ([]*domain.Post, error)
	ListByDateRange(startDate, endDate time.Time) ([]*domain.Post, error)
	Create(post *domain.Post) error
	Delete(id string) error
}

type postRepository struct {
	conn *postgres.Connection
}

func NewPostRepository(conn *postgres.Connection) PostRepository {
	return &postRepository{
		conn: conn,
	}
}

func (r *postRepository) ListRecent() ([]*domain.Post, error) {
	query, args, err := squirrel.
		Select(postColumns...).
		From(postsTable).
		OrderBy("date DESC", "created_at DESC").
		Limit(recentPostsLimit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	return r.queryPosts(query, args...)
}

func (r *postRepository) ListByDateRange(startDate, endDate time.Time) ([]*domain.Post, error) {
	query, args, err := squirrel.
		Select(postColumns...).
		From(postsTable).
		Where(squirrel.GtOrEq{"date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"date": endDate.Format(time.DateOnly)}).
		OrderBy("date DESC", "created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	return r.queryPosts(query, args...)
}

func (r *postRepository) Create(post *domain.Post) error {
	query, args, err := squirrel.
		Insert(postsTable).
		Columns(postColumns...).
		Values(
			post.ID,
			post.Date,
			post.TalentName,
			post.AccountName,
			post.Platform,
			post.Link,
			post.ProductID,
			post.ProductName,
			post.Views,
			post.Likes,
			post.CreatedAt,
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

func (r *postRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete(postsTable).
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

func (r *postRepository) queryPosts(query string, args ...interface{}) ([]*domain.Post, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.Post{}, nil
		}
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	posts := make([]*domain.Post, 0)
	for rows.Next() {
		post := &domain.Post{}
		err := rows.Scan(
			&post.ID,
			&post.Date,
			&post.TalentName,
			&post.AccountName,
			&post.Platform,
			&post.Link,
			&post.ProductID,
			&post.ProductName,
			&post.Views,
			&post.Likes,
			&post.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning post: %w", err)
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return posts, nil
}
