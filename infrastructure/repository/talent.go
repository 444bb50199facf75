package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/talentbms/talent-bms-api/infrastructure/database/postgres"
	"github.com/talentbms/talent-bms-api/internal/domain"
)

const talentsTable = "talents"

type TalentRepository interface {
	List() ([]*domain.TalentReference, error)
	Create(talent *domain.TalentReference) error
	Update(talent *domain.TalentReference) error
	Delete(id string) error
}

type talentRepository struct {
	conn *postgres.Connection
}

func NewTalentRepository(conn *postgres.Connection) TalentRepository {
	return &talentRepository{
		conn: conn,
	}
}

func (r *talentRepository) List() ([]*domain.TalentReference, error) {
	query, args, err := squirrel.
		Select("id", "name", "accounts").
		From(talentsTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.TalentReference{}, nil
		}
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	talents := make([]*domain.TalentReference, 0)
	for rows.Next() {
		talent := &domain.TalentReference{}
		err := rows.Scan(
			&talent.ID,
			&talent.Name,
			pq.Array(&talent.Accounts),
		)
		if err != nil {
			return nil, fmt.Errorf("scanning talent: %w", err)
		}

		// Consumers index into Accounts unconditionally; it must never be
		// nil even for rows stored without any account.
		if talent.Accounts == nil {
			talent.Accounts = []string{}
		}
		if talent.Name == "" {
			talent.Name = "Unnamed Talent"
		}

		talents = append(talents, talent)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return talents, nil
}

func (r *talentRepository) Create(talent *domain.TalentReference) error {
	query, args, err := squirrel.
		Insert(talentsTable).
		Columns("id", "name", "accounts").
		Values(talent.ID, talent.Name, pq.Array(talent.Accounts)).
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

// Update replaces the talent's name and account list wholesale.
func (r *talentRepository) Update(talent *domain.TalentReference) error {
	query, args, err := squirrel.
		Update(talentsTable).
		Set("name", talent.Name).
		Set("accounts", pq.Array(talent.Accounts)).
		Where(squirrel.Eq{"id": talent.ID}).
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

func (r *talentRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete(talentsTable).
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
