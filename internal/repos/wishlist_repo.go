package repos

import (
	"phonerdokan/internal/domain"

	"github.com/jmoiron/sqlx"
)

type WishlistRepo struct{ db *sqlx.DB }

func NewWishlistRepo(db *sqlx.DB) *WishlistRepo { return &WishlistRepo{db: db} }

func (r *WishlistRepo) Exists(userEmail, productID string) (bool, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM wishlist_items WHERE user_email=? AND product_id=?`, userEmail, productID)
	return n > 0, err
}

func (r *WishlistRepo) Insert(it *domain.WishlistItem) error {
	_, err := r.db.Exec(`INSERT INTO wishlist_items(user_email,product_id,product_name,price) VALUES(?,?,?,?)`,
		it.UserEmail, it.ProductID, it.ProductName, it.Price)
	return err
}

func (r *WishlistRepo) ByUser(userEmail string) ([]domain.WishlistItem, error) {
	var out []domain.WishlistItem
	err := r.db.Select(&out, `
	  SELECT user_email,product_id,COALESCE(product_name,'') AS product_name,COALESCE(price,0) AS price
	  FROM wishlist_items
	  WHERE user_email=?
	  ORDER BY created_at DESC`, userEmail)
	return out, err
}
