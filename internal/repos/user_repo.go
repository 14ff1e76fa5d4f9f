package repos

import (
	"phonerdokan/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ db *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.db.Get(&u, `SELECT id,name,email,password_hash,role,verified FROM users WHERE LOWER(email)=LOWER(?)`, email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.db.Get(&u, `SELECT id,name,email,password_hash,role,verified FROM users WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Insert(u *domain.User) error {
	_, err := r.db.Exec(`INSERT INTO users(id,name,email,password_hash,role,verified) VALUES(?,?,?,?,?,?)`,
		u.ID, u.Name, u.Email, u.Hash, u.Role, u.Verified)
	return err
}

func (r *UserRepo) List() ([]domain.User, error) {
	var out []domain.User
	err := r.db.Select(&out, `SELECT id,name,email,password_hash,role,verified FROM users ORDER BY email`)
	return out, err
}

func (r *UserRepo) ListByRole(role string) ([]domain.User, error) {
	var out []domain.User
	err := r.db.Select(&out, `SELECT id,name,email,password_hash,role,verified FROM users WHERE role=? ORDER BY email`, role)
	return out, err
}

// SetVerified flips the verified flag; no row is created when the id is
// unknown (update-or-no-op).
func (r *UserRepo) SetVerified(id string) (bool, error) {
	res, err := r.db.Exec(`UPDATE users SET verified=1 WHERE id=?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *UserRepo) Delete(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM users WHERE id=?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
