package handlers

import (
	"errors"

	"phonerdokan/internal/cache"
	applog "phonerdokan/internal/log"
	"phonerdokan/internal/payments"
	"phonerdokan/internal/services"
	"phonerdokan/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	Market  *services.MarketService
	Intents *payments.Client
	Cache   *cache.Cache
}

// POST /create-payment-intent  [auth]
func (h *PaymentHandler) CreateIntent(c *fiber.Ctx) error {
	var in struct {
		Price float64 `json:"price"`
	}
	if err := c.BodyParser(&in); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if !validate.Price(in.Price) {
		return jsonError(c, fiber.StatusBadRequest, "price must not be negative")
	}

	secret, err := h.Intents.CreateIntent(c.Context(), payments.MinorUnits(in.Price), "usd")
	if err != nil {
		applog.Error(c, "payment.intent.fail", err, nil)
		return jsonError(c, fiber.StatusBadGateway, "could not create payment intent")
	}
	applog.Audit(c, "payment.intent", map[string]any{"amount_minor": payments.MinorUnits(in.Price)})
	return c.JSON(fiber.Map{"clientSecret": secret})
}

// POST /payments. Settles a booking through the transactional workflow.
func (h *PaymentHandler) Complete(c *fiber.Ctx) error {
	var in struct {
		ProductID     string  `json:"productId"`
		BookingID     string  `json:"bookingId"`
		TransactionID string  `json:"transactionId"`
		Amount        float64 `json:"amount"`
	}
	if err := c.BodyParser(&in); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	pid, okP := validate.ID(in.ProductID)
	bid, okB := validate.ID(in.BookingID)
	if !okP || !okB || in.TransactionID == "" {
		return jsonError(c, fiber.StatusBadRequest, "productId, bookingId and transactionId are required")
	}

	p, err := h.Market.CompletePayment(services.PaymentInput{
		ProductID: pid, BookingID: bid, TransactionID: in.TransactionID, Amount: in.Amount,
	})
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			return jsonError(c, fiber.StatusNotFound, "booking not found")
		}
		applog.Error(c, "payment.complete.fail", err, map[string]any{"booking": bid})
		return jsonError(c, fiber.StatusInternalServerError, "could not complete payment")
	}
	// The product just sold out; the public listing cache is stale.
	h.Cache.Del(c.Context(), allProductsCacheKey)
	applog.Audit(c, "payment.complete", map[string]any{"payment": p.ID, "transaction": p.TransactionID})
	return c.Status(fiber.StatusCreated).JSON(p)
}
