package domain

const (
	PaymentUnpaid = "UNPAID"
	PaymentPaid   = "PAID"
)

type Category struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type Product struct {
	ID          string  `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	SellerEmail string  `db:"seller_email" json:"sellerEmail"`
	SellerName  string  `db:"seller_name" json:"sellerName"`
	Category    string  `db:"category" json:"category"` // category name, not id
	Quantity    int     `db:"quantity" json:"quantity"` // 1 = available, 0 = sold out
	Price       float64 `db:"price" json:"price"`
	Advertise   bool    `db:"advertise" json:"advertise"`
	Reported    bool    `db:"reported" json:"reported"`
	PostedAt    string  `db:"posted_at" json:"postedAt"`
}

type WishlistItem struct {
	UserEmail   string  `db:"user_email" json:"userEmail"`
	ProductID   string  `db:"product_id" json:"productId"`
	ProductName string  `db:"product_name" json:"productName"`
	Price       float64 `db:"price" json:"price"`
}

type Booking struct {
	ID            string  `db:"id" json:"id"`
	CustomerEmail string  `db:"customer_email" json:"customerEmail"`
	ProductID     string  `db:"product_id" json:"productId"`
	ProductName   string  `db:"product_name" json:"productName"`
	Price         float64 `db:"price" json:"price"`
	PaymentStatus string  `db:"payment_status" json:"paymentStatus"` // UNPAID | PAID
	TransactionID string  `db:"transaction_id" json:"transactionId"`
	// ProductQuantity mirrors the product's quantity so every pending booking
	// of a sold-out item can be flagged in one pass.
	ProductQuantity int `db:"product_quantity" json:"productQuantity"`
}

type Payment struct {
	ID            string  `db:"id" json:"id"`
	ProductID     string  `db:"product_id" json:"productId"`
	BookingID     string  `db:"booking_id" json:"bookingId"`
	TransactionID string  `db:"transaction_id" json:"transactionId"`
	Amount        float64 `db:"amount" json:"amount"`
	CreatedAt     string  `db:"created_at" json:"createdAt"`
}

type Blog struct {
	ID          string `db:"id" json:"id"`
	Title       string `db:"title" json:"title"`
	Content     string `db:"content" json:"content"`
	AuthorEmail string `db:"author_email" json:"authorEmail"`
	CreatedAt   string `db:"created_at" json:"createdAt"`
}
