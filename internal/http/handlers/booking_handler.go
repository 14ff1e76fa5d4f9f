package handlers

import (
	"errors"

	applog "phonerdokan/internal/log"
	"phonerdokan/internal/repos"
	"phonerdokan/internal/services"
	"phonerdokan/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type BookingHandler struct {
	Market   *services.MarketService
	Bookings *repos.BookingRepo
}

// POST /bookItem  [auth]
func (h *BookingHandler) Create(c *fiber.Ctx) error {
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

	b, err := h.Market.CreateBooking(CurrentEmail(c), pid)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyBooked):
			return softFail(c, err.Error())
		case errors.Is(err, services.ErrProductNotFound):
			return jsonError(c, fiber.StatusNotFound, "product not found")
		default:
			applog.Error(c, "booking.create.fail", err, map[string]any{"product": pid})
			return jsonError(c, fiber.StatusInternalServerError, "could not create booking")
		}
	}
	applog.Audit(c, "booking.create", map[string]any{"booking": b.ID, "product": pid})
	return c.Status(fiber.StatusCreated).JSON(b)
}

// GET /bookItems/:email. Public; used by the order-confirmation page.
func (h *BookingHandler) ByCustomer(c *fiber.Ctx) error {
	email, ok := validate.Email(c.Params("email"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid email")
	}
	bookings, err := h.Bookings.ByCustomer(email)
	if err != nil {
		applog.Error(c, "booking.list.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not fetch bookings")
	}
	return c.JSON(bookings)
}
