package services

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"phonerdokan/internal/domain"
	"phonerdokan/internal/repos"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrAlreadyRegistered = errors.New("an account with this email already exists")
	ErrAlreadyWishlisted = errors.New("product already in wishlist")
	ErrAlreadyBooked     = errors.New("product already booked")
	ErrProductNotFound   = errors.New("product not found")
	ErrBookingNotFound   = errors.New("booking not found")
)

// MarketService holds the multi-resource workflows: registration, wishlist
// and booking dedupe, and payment settlement.
type MarketService struct {
	Users    *repos.UserRepo
	Products *repos.ProductRepo
	Wishlist *repos.WishlistRepo
	Bookings *repos.BookingRepo
	Payments *repos.PaymentRepo
}

func NewMarketService(users *repos.UserRepo, prods *repos.ProductRepo, wish *repos.WishlistRepo,
	bookings *repos.BookingRepo, payments *repos.PaymentRepo) *MarketService {
	return &MarketService{Users: users, Products: prods, Wishlist: wish, Bookings: bookings, Payments: payments}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// RegisterUser creates the principal record. Registering an email twice is a
// soft failure: the caller gets ErrAlreadyRegistered and exactly one record
// remains. The unique index on email backstops the read-then-insert window.
func (s *MarketService) RegisterUser(in RegisterInput) (*domain.User, error) {
	if _, err := s.Users.ByEmail(in.Email); err == nil {
		return nil, ErrAlreadyRegistered
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	role := strings.ToLower(in.Role)
	if role == "" {
		role = domain.RoleBuyer
	}
	if !domain.ValidRole(role) {
		return nil, errors.New("unknown role: " + in.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		ID:    uuid.NewString(),
		Name:  in.Name,
		Email: in.Email,
		Hash:  string(hash),
		Role:  role,
	}
	if err := s.Users.Insert(u); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyRegistered
		}
		return nil, err
	}
	return u, nil
}

// AddToWishlist rejects a second entry for the same (user, product) pair.
func (s *MarketService) AddToWishlist(userEmail, productID string) (*domain.WishlistItem, error) {
	dup, err := s.Wishlist.Exists(userEmail, productID)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, ErrAlreadyWishlisted
	}

	p, err := s.Products.ByID(productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	it := &domain.WishlistItem{
		UserEmail:   userEmail,
		ProductID:   p.ID,
		ProductName: p.Name,
		Price:       p.Price,
	}
	if err := s.Wishlist.Insert(it); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyWishlisted
		}
		return nil, err
	}
	return it, nil
}

// CreateBooking inserts an UNPAID booking, one per (customer, product) pair.
func (s *MarketService) CreateBooking(customerEmail, productID string) (*domain.Booking, error) {
	dup, err := s.Bookings.Exists(customerEmail, productID)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, ErrAlreadyBooked
	}

	p, err := s.Products.ByID(productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	b := &domain.Booking{
		ID:              uuid.NewString(),
		CustomerEmail:   customerEmail,
		ProductID:       p.ID,
		ProductName:     p.Name,
		Price:           p.Price,
		PaymentStatus:   domain.PaymentUnpaid,
		ProductQuantity: p.Quantity,
	}
	if err := s.Bookings.Insert(b); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyBooked
		}
		return nil, err
	}
	return b, nil
}

type PaymentInput struct {
	ProductID     string
	BookingID     string
	TransactionID string
	Amount        float64
}

// CompletePayment settles a booking: the referenced booking must exist, then
// product sell-out, booking status, sibling-booking flags and the payment row
// all commit or roll back together.
func (s *MarketService) CompletePayment(in PaymentInput) (*domain.Payment, error) {
	if _, err := s.Bookings.ByID(in.BookingID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	p := &domain.Payment{
		ID:            uuid.NewString(),
		ProductID:     in.ProductID,
		BookingID:     in.BookingID,
		TransactionID: in.TransactionID,
		Amount:        in.Amount,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.Payments.Complete(p); err != nil {
		return nil, err
	}
	return p, nil
}

// isUniqueViolation matches the sqlite constraint error surfaced when two
// concurrent inserts race past the duplicate check.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
