package handlers

import (
	"phonerdokan/internal/auth"
	"phonerdokan/internal/cache"
	"phonerdokan/internal/config"
	"phonerdokan/internal/payments"
	"phonerdokan/internal/repos"
	"phonerdokan/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
)

type Deps struct {
	Tokens *auth.Tokens
	Authz  *services.AuthzService

	// AuthThrottle, when set, wraps registration and token issuance.
	AuthThrottle fiber.Handler

	UserHandler     *UserHandler
	CategoryHandler *CategoryHandler
	ProductHandler  *ProductHandler
	WishlistHandler *WishlistHandler
	BookingHandler  *BookingHandler
	PaymentHandler  *PaymentHandler
	BlogHandler     *BlogHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	userRepo := repos.NewUserRepo(db)
	catRepo := repos.NewCategoryRepo(db)
	prodRepo := repos.NewProductRepo(db)
	wishRepo := repos.NewWishlistRepo(db)
	bookRepo := repos.NewBookingRepo(db)
	payRepo := repos.NewPaymentRepo(db)
	blogRepo := repos.NewBlogRepo(db)

	tokens := auth.NewTokens(cfg.JWTSecret)
	authzSvc := services.NewAuthzService(userRepo)
	catalogSvc := services.NewCatalogService(catRepo, prodRepo)
	marketSvc := services.NewMarketService(userRepo, prodRepo, wishRepo, bookRepo, payRepo)
	intents := payments.NewClient(cfg.PaymentAPIURL, cfg.PaymentSecretKey)
	store := cache.New(cfg.RedisAddr)

	return &Deps{
		Tokens: tokens,
		Authz:  authzSvc,

		UserHandler:     &UserHandler{Users: userRepo, Market: marketSvc, Tokens: tokens},
		CategoryHandler: &CategoryHandler{Catalog: catalogSvc},
		ProductHandler:  &ProductHandler{Catalog: catalogSvc, Authz: authzSvc, Prods: prodRepo, Cache: store},
		WishlistHandler: &WishlistHandler{Market: marketSvc, Wish: wishRepo},
		BookingHandler:  &BookingHandler{Market: marketSvc, Bookings: bookRepo},
		PaymentHandler:  &PaymentHandler{Market: marketSvc, Intents: intents, Cache: store},
		BlogHandler:     &BlogHandler{Blogs: blogRepo},
	}
}
