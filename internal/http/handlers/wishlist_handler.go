package handlers

import (
	"errors"

	applog "phonerdokan/internal/log"
	"phonerdokan/internal/repos"
	"phonerdokan/internal/services"
	"phonerdokan/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type WishlistHandler struct {
	Market *services.MarketService
	Wish   *repos.WishlistRepo
}

// POST /add-to-wishlist  [auth]
func (h *WishlistHandler) Add(c *fiber.Ctx) error {
	var in struct {
		ProductID string `json:"productId"`
	}
	if err := c.BodyParser(&in); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	pid, ok := validate.ID(in.ProductID)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "missing productId")
	}

	it, err := h.Market.AddToWishlist(CurrentEmail(c), pid)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyWishlisted):
			return softFail(c, err.Error())
		case errors.Is(err, services.ErrProductNotFound):
			return jsonError(c, fiber.StatusNotFound, "product not found")
		default:
			applog.Error(c, "wishlist.add.fail", err, map[string]any{"product": pid})
			return jsonError(c, fiber.StatusInternalServerError, "could not add to wishlist")
		}
	}
	applog.Audit(c, "wishlist.add", map[string]any{"product": pid})
	return c.Status(fiber.StatusCreated).JSON(it)
}

// GET /wishList/:email  [auth]
func (h *WishlistHandler) ByUser(c *fiber.Ctx) error {
	email, ok := validate.Email(c.Params("email"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid email")
	}
	items, err := h.Wish.ByUser(email)
	if err != nil {
		applog.Error(c, "wishlist.list.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not fetch wishlist")
	}
	return c.JSON(items)
}
