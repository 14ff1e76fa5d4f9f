package handlers

import (
	"database/sql"
	"errors"

	"phonerdokan/internal/cache"
	"phonerdokan/internal/domain"
	applog "phonerdokan/internal/log"
	"phonerdokan/internal/repos"
	"phonerdokan/internal/services"
	"phonerdokan/internal/validate"

	"github.com/gofiber/fiber/v2"
)

const allProductsCacheKey = "products:all"

type ProductHandler struct {
	Catalog *services.CatalogService
	Authz   *services.AuthzService
	Prods   *repos.ProductRepo
	Cache   *cache.Cache
}

// POST /products  [seller, owner-scoped]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in struct {
		Name        string  `json:"name"`
		SellerEmail string  `json:"sellerEmail"`
		SellerName  string  `json:"sellerName"`
		Category    string  `json:"category"`
		Price       float64 `json:"price"`
	}
	if err := c.BodyParser(&in); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	name, ok := validate.Name(in.Name)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "name is required")
	}
	if !validate.Price(in.Price) {
		return jsonError(c, fiber.StatusBadRequest, "price must not be negative")
	}
	// A seller can only list products under their own email.
	if in.SellerEmail != CurrentEmail(c) {
		applog.Security(c, "product.create.owner_mismatch", map[string]any{"claimed": in.SellerEmail})
		return jsonError(c, fiber.StatusForbidden, "sellerEmail must match the authenticated seller")
	}

	p, err := h.Catalog.CreateProduct(services.ProductInput{
		Name: name, SellerEmail: in.SellerEmail, SellerName: in.SellerName,
		Category: in.Category, Price: in.Price,
	})
	if err != nil {
		applog.Error(c, "product.create.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not create product")
	}
	h.Cache.Del(c.Context(), allProductsCacheKey)
	applog.Audit(c, "product.create", map[string]any{"product": p.ID})
	return c.Status(fiber.StatusCreated).JSON(p)
}

// GET /products. Public listing, served from cache when warm.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var cached []domain.Product
	if h.Cache.GetJSON(c.Context(), allProductsCacheKey, &cached) {
		return c.JSON(cached)
	}
	prods, err := h.Prods.List()
	if err != nil {
		applog.Error(c, "product.list.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not fetch products")
	}
	h.Cache.SetJSON(c.Context(), allProductsCacheKey, prods)
	return c.JSON(prods)
}

// GET /products/:email  [seller]. The seller's own listings, newest first.
func (h *ProductHandler) BySeller(c *fiber.Ctx) error {
	email, ok := validate.Email(c.Params("email"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid email")
	}
	if email != CurrentEmail(c) {
		applog.Security(c, "product.by_seller.denied", map[string]any{"requested": email})
		return jsonError(c, fiber.StatusForbidden, "forbidden")
	}
	prods, err := h.Prods.BySeller(email)
	if err != nil {
		applog.Error(c, "product.by_seller.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not fetch products")
	}
	return c.JSON(prods)
}

// PUT /products/:id  [seller, owner-scoped]. Marks the product advertised.
func (h *ProductHandler) Advertise(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	p, err := h.Prods.ByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return jsonError(c, fiber.StatusNotFound, "product not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "could not fetch product")
	}
	if err := h.Authz.AuthorizeOwner(CurrentEmail(c), p.SellerEmail); err != nil {
		if errors.Is(err, services.ErrForbidden) {
			applog.Security(c, "product.advertise.denied", map[string]any{"product": id})
			return jsonError(c, fiber.StatusForbidden, "forbidden")
		}
		return jsonError(c, fiber.StatusInternalServerError, "could not verify ownership")
	}
	if _, err := h.Prods.SetAdvertise(id); err != nil {
		applog.Error(c, "product.advertise.fail", err, map[string]any{"product": id})
		return jsonError(c, fiber.StatusInternalServerError, "could not advertise product")
	}
	h.Cache.Del(c.Context(), allProductsCacheKey)
	applog.Audit(c, "product.advertise", map[string]any{"product": id})
	return c.JSON(fiber.Map{"acknowledged": true})
}

// PUT /report-product/:id. Public; flags a listing for admin review.
func (h *ProductHandler) Report(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	matched, err := h.Prods.SetReported(id)
	if err != nil {
		applog.Error(c, "product.report.fail", err, map[string]any{"product": id})
		return jsonError(c, fiber.StatusInternalServerError, "could not report product")
	}
	if !matched {
		return jsonError(c, fiber.StatusNotFound, "product not found")
	}
	applog.Info(c, "product.report", map[string]any{"product": id})
	return c.JSON(fiber.Map{"acknowledged": true})
}

// GET /reported-items  [admin]
func (h *ProductHandler) Reported(c *fiber.Ctx) error {
	prods, err := h.Prods.Reported()
	if err != nil {
		applog.Error(c, "product.reported.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not fetch reported items")
	}
	return c.JSON(prods)
}

// GET /advertisedProducts. Promoted items still in stock, newest first.
func (h *ProductHandler) Advertised(c *fiber.Ctx) error {
	prods, err := h.Prods.Advertised()
	if err != nil {
		applog.Error(c, "product.advertised.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not fetch advertised products")
	}
	return c.JSON(prods)
}

// DELETE /deleteproduct/:id  [admin]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	deleted, err := h.Prods.Delete(id)
	if err != nil {
		applog.Error(c, "product.delete.fail", err, map[string]any{"product": id})
		return jsonError(c, fiber.StatusInternalServerError, "could not delete product")
	}
	if !deleted {
		return jsonError(c, fiber.StatusNotFound, "product not found")
	}
	h.Cache.Del(c.Context(), allProductsCacheKey)
	applog.Audit(c, "product.delete", map[string]any{"product": id})
	return c.JSON(fiber.Map{"acknowledged": true})
}
