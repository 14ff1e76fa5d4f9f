package repos

import (
	"phonerdokan/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) Insert(c *domain.Category) error {
	_, err := r.db.Exec(`INSERT INTO categories(id,name) VALUES(?,?)`, c.ID, c.Name)
	return err
}

func (r *CategoryRepo) ByID(id string) (*domain.Category, error) {
	var c domain.Category
	if err := r.db.Get(&c, `SELECT id,name FROM categories WHERE id=?`, id); err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns categories in insertion order; limit<=0 means no limit.
func (r *CategoryRepo) List(limit int) ([]domain.Category, error) {
	var out []domain.Category
	if limit > 0 {
		err := r.db.Select(&out, `SELECT id,name FROM categories ORDER BY created_at LIMIT ?`, limit)
		return out, err
	}
	err := r.db.Select(&out, `SELECT id,name FROM categories ORDER BY created_at`)
	return out, err
}
