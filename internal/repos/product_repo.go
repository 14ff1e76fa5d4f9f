package repos

import (
	"phonerdokan/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `id,name,seller_email,COALESCE(seller_name,'') AS seller_name,category,quantity,price,advertise,reported,COALESCE(posted_at,'') AS posted_at`

func (r *ProductRepo) Insert(p *domain.Product) error {
	_, err := r.db.Exec(`
	  INSERT INTO products(id,name,seller_email,seller_name,category,quantity,price,advertise,reported,posted_at)
	  VALUES(?,?,?,?,?,?,?,?,?,?)`,
		p.ID, p.Name, p.SellerEmail, p.SellerName, p.Category, p.Quantity, p.Price, p.Advertise, p.Reported, p.PostedAt)
	return err
}

func (r *ProductRepo) ByID(id string) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id=?`, id); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) List() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `SELECT `+productCols+` FROM products ORDER BY posted_at DESC`)
	return out, err
}

func (r *ProductRepo) ByCategoryName(name string) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `SELECT `+productCols+` FROM products WHERE category=? ORDER BY posted_at DESC`, name)
	return out, err
}

func (r *ProductRepo) BySeller(email string) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `SELECT `+productCols+` FROM products WHERE seller_email=? ORDER BY posted_at DESC`, email)
	return out, err
}

// Advertised returns promoted items that are still in stock.
func (r *ProductRepo) Advertised() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `SELECT `+productCols+` FROM products WHERE advertise=1 AND quantity=1 ORDER BY posted_at DESC`)
	return out, err
}

func (r *ProductRepo) Reported() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `SELECT `+productCols+` FROM products WHERE reported=1 ORDER BY posted_at DESC`)
	return out, err
}

func (r *ProductRepo) SetAdvertise(id string) (bool, error) {
	res, err := r.db.Exec(`UPDATE products SET advertise=1 WHERE id=?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *ProductRepo) SetReported(id string) (bool, error) {
	res, err := r.db.Exec(`UPDATE products SET reported=1 WHERE id=?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *ProductRepo) Delete(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM products WHERE id=?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
