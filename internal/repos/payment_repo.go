package repos

import (
	"phonerdokan/internal/domain"

	"github.com/jmoiron/sqlx"
)

type PaymentRepo struct{ db *sqlx.DB }

func NewPaymentRepo(db *sqlx.DB) *PaymentRepo { return &PaymentRepo{db: db} }

// Complete applies the full payment settlement in one transaction: the
// product sells out, the paid booking records the transaction id, every
// booking of that product learns the item is gone, and the payment row is
// appended. Any failure rolls the whole thing back.
func (r *PaymentRepo) Complete(p *domain.Payment) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`UPDATE products SET quantity=0 WHERE id=?`, p.ProductID); err != nil {
		return err
	}
	if _, err := tx.Exec(`UPDATE bookings SET payment_status=?, transaction_id=? WHERE id=?`,
		domain.PaymentPaid, p.TransactionID, p.BookingID); err != nil {
		return err
	}
	if _, err := tx.Exec(`UPDATE bookings SET product_quantity=0 WHERE product_id=?`, p.ProductID); err != nil {
		return err
	}
	if _, err := tx.Exec(`INSERT INTO payments(id,product_id,booking_id,transaction_id,amount) VALUES(?,?,?,?,?)`,
		p.ID, p.ProductID, p.BookingID, p.TransactionID, p.Amount); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PaymentRepo) ByTransaction(txID string) (*domain.Payment, error) {
	var p domain.Payment
	err := r.db.Get(&p, `
	  SELECT id,product_id,booking_id,transaction_id,amount,COALESCE(created_at,'') AS created_at
	  FROM payments WHERE transaction_id=?`, txID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
