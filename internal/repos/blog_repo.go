package repos

import (
	"phonerdokan/internal/domain"

	"github.com/jmoiron/sqlx"
)

type BlogRepo struct{ db *sqlx.DB }

func NewBlogRepo(db *sqlx.DB) *BlogRepo { return &BlogRepo{db: db} }

func (r *BlogRepo) Insert(b *domain.Blog) error {
	_, err := r.db.Exec(`INSERT INTO blogs(id,title,content,author_email) VALUES(?,?,?,?)`,
		b.ID, b.Title, b.Content, b.AuthorEmail)
	return err
}

// List returns newest posts first; limit<=0 means no limit.
func (r *BlogRepo) List(limit int) ([]domain.Blog, error) {
	var out []domain.Blog
	q := `SELECT id,title,content,author_email,COALESCE(created_at,'') AS created_at FROM blogs ORDER BY created_at DESC`
	if limit > 0 {
		err := r.db.Select(&out, q+` LIMIT ?`, limit)
		return out, err
	}
	err := r.db.Select(&out, q)
	return out, err
}
