package repos

import (
	"phonerdokan/internal/domain"

	"github.com/jmoiron/sqlx"
)

type BookingRepo struct{ db *sqlx.DB }

func NewBookingRepo(db *sqlx.DB) *BookingRepo { return &BookingRepo{db: db} }

const bookingCols = `id,customer_email,product_id,COALESCE(product_name,'') AS product_name,COALESCE(price,0) AS price,payment_status,transaction_id,product_quantity`

func (r *BookingRepo) Exists(customerEmail, productID string) (bool, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM bookings WHERE customer_email=? AND product_id=?`, customerEmail, productID)
	return n > 0, err
}

func (r *BookingRepo) Insert(b *domain.Booking) error {
	_, err := r.db.Exec(`
	  INSERT INTO bookings(id,customer_email,product_id,product_name,price,payment_status,transaction_id,product_quantity)
	  VALUES(?,?,?,?,?,?,?,?)`,
		b.ID, b.CustomerEmail, b.ProductID, b.ProductName, b.Price, b.PaymentStatus, b.TransactionID, b.ProductQuantity)
	return err
}

func (r *BookingRepo) ByID(id string) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.Get(&b, `SELECT `+bookingCols+` FROM bookings WHERE id=?`, id); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepo) ByCustomer(email string) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.Select(&out, `SELECT `+bookingCols+` FROM bookings WHERE customer_email=? ORDER BY created_at DESC`, email)
	return out, err
}
