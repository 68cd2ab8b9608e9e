package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mallkit/cart-service/internal/models"
)

type MemberRepo struct {
	db *sql.DB
}

func NewMemberRepo(db *sql.DB) *MemberRepo {
	return &MemberRepo{db: db}
}

func (r *MemberRepo) GetByID(ctx context.Context, id int64) (*models.Member, error) {
	query := `SELECT id, name, password FROM member WHERE id = $1`

	var m models.Member
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Name, &m.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *MemberRepo) GetByName(ctx context.Context, name string) (*models.Member, error) {
	query := `SELECT id, name, password FROM member WHERE name = $1`

	var m models.Member
	err := r.db.QueryRowContext(ctx, query, name).Scan(&m.ID, &m.Name, &m.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *MemberRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM member WHERE name = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *MemberRepo) Create(ctx context.Context, member models.Member) (int64, error) {
	query := `INSERT INTO member (name, password) VALUES ($1, $2) RETURNING id`

	var id int64
	if err := r.db.QueryRowContext(ctx, query, member.Name, member.Password).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *MemberRepo) Update(ctx context.Context, member models.Member) error {
	query := `UPDATE member SET name = $1, password = $2 WHERE id = $3`

	_, err := r.db.ExecContext(ctx, query, member.Name, member.Password, member.ID)
	return err
}
