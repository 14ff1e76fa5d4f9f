package handlers

import (
	"phonerdokan/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// Register mounts the full API surface on app.
func Register(app *fiber.App, d *Deps) {
	requireAuth := RequireAuth(d.Tokens)
	requireAdmin := RequireRole(d.Authz, domain.RoleAdmin)
	requireSeller := RequireRole(d.Authz, domain.RoleSeller)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Phoner Dokan server is running")
	})
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	// Registration and token issuance can carry an extra throttle from main.
	throttle := d.AuthThrottle
	if throttle == nil {
		throttle = func(c *fiber.Ctx) error { return c.Next() }
	}

	// Identity
	app.Get("/jwt", throttle, d.UserHandler.IssueToken)
	app.Post("/users", throttle, d.UserHandler.Create)
	app.Get("/users", requireAuth, requireAdmin, d.UserHandler.List)
	app.Get("/users/admin/:email", requireAuth, d.UserHandler.IsAdmin)
	app.Get("/users/seller/:email", requireAuth, d.UserHandler.SellerStatus)
	app.Get("/buyers", requireAuth, requireAdmin, d.UserHandler.Buyers)
	app.Get("/sellers", requireAuth, requireAdmin, d.UserHandler.Sellers)
	app.Put("/sellers/:id", requireAuth, requireAdmin, d.UserHandler.Verify)
	app.Delete("/deleteUser/:id", requireAuth, requireAdmin, d.UserHandler.Delete)

	// Catalog
	app.Post("/categories", requireAuth, requireAdmin, d.CategoryHandler.Create)
	app.Get("/categories", d.CategoryHandler.List)
	app.Get("/categories/:id", d.CategoryHandler.Products)
	app.Post("/products", requireAuth, requireSeller, d.ProductHandler.Create)
	app.Get("/products", d.ProductHandler.List)
	app.Get("/products/:email", requireAuth, requireSeller, d.ProductHandler.BySeller)
	app.Put("/products/:id", requireAuth, requireSeller, d.ProductHandler.Advertise)
	app.Put("/report-product/:id", d.ProductHandler.Report)
	app.Get("/reported-items", requireAuth, requireAdmin, d.ProductHandler.Reported)
	app.Get("/advertisedProducts", d.ProductHandler.Advertised)
	app.Delete("/deleteproduct/:id", requireAuth, requireAdmin, d.ProductHandler.Delete)

	// Marketplace
	app.Post("/add-to-wishlist", requireAuth, d.WishlistHandler.Add)
	app.Get("/wishList/:email", requireAuth, d.WishlistHandler.ByUser)
	app.Post("/bookItem", requireAuth, d.BookingHandler.Create)
	app.Get("/bookItems/:email", d.BookingHandler.ByCustomer)
	app.Post("/create-payment-intent", requireAuth, d.PaymentHandler.CreateIntent)
	app.Post("/payments", d.PaymentHandler.Complete)

	// Blog
	app.Post("/blogs", requireAuth, requireAdmin, d.BlogHandler.Create)
	app.Get("/blogs", d.BlogHandler.List)
}
