package repos

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Users (one row per principal; role fixed at creation, verified flips once)
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL DEFAULT 'buyer' CHECK (role IN ('buyer','seller','admin')),
  verified INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

-- Categories (create/list only; never updated or deleted)
CREATE TABLE IF NOT EXISTS categories(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

-- Products reference their category by name; category lookups
-- resolve id -> name first.
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  seller_email TEXT NOT NULL,
  seller_name TEXT,
  category TEXT NOT NULL,
  quantity INTEGER NOT NULL DEFAULT 1 CHECK (quantity IN (0,1)),
  price NUMERIC NOT NULL CHECK (price >= 0),
  advertise INTEGER NOT NULL DEFAULT 0,
  reported INTEGER NOT NULL DEFAULT 0,
  posted_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_products_seller    ON products(seller_email);
CREATE INDEX IF NOT EXISTS idx_products_category  ON products(category);
CREATE INDEX IF NOT EXISTS idx_products_posted_at ON products(posted_at);

-- Wishlist entries; the pair is the primary key, so a concurrent duplicate
-- insert fails on the constraint instead of silently duplicating.
CREATE TABLE IF NOT EXISTS wishlist_items(
  user_email TEXT NOT NULL,
  product_id TEXT NOT NULL,
  product_name TEXT,
  price NUMERIC,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY (user_email, product_id)
);

-- Bookings; (customer,product) unique for the same reason.
CREATE TABLE IF NOT EXISTS bookings(
  id TEXT PRIMARY KEY,
  customer_email TEXT NOT NULL,
  product_id TEXT NOT NULL,
  product_name TEXT,
  price NUMERIC,
  payment_status TEXT NOT NULL DEFAULT 'UNPAID' CHECK (payment_status IN ('UNPAID','PAID')),
  transaction_id TEXT NOT NULL DEFAULT '',
  product_quantity INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  UNIQUE (customer_email, product_id)
);
CREATE INDEX IF NOT EXISTS idx_bookings_product ON bookings(product_id);

-- Payments are append-only.
CREATE TABLE IF NOT EXISTS payments(
  id TEXT PRIMARY KEY,
  product_id TEXT NOT NULL,
  booking_id TEXT NOT NULL,
  transaction_id TEXT NOT NULL,
  amount NUMERIC NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

-- Blog posts are append-only.
CREATE TABLE IF NOT EXISTS blogs(
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  content TEXT NOT NULL,
  author_email TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
`
	_, err := db.Exec(schema)
	return err
}
