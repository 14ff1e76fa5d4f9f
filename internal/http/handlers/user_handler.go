package handlers

import (
	"database/sql"
	"errors"
	"strings"

	"phonerdokan/internal/auth"
	"phonerdokan/internal/domain"
	applog "phonerdokan/internal/log"
	"phonerdokan/internal/repos"
	"phonerdokan/internal/services"
	"phonerdokan/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	Users  *repos.UserRepo
	Market *services.MarketService
	Tokens *auth.Tokens
}

// POST /users
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.BodyParser(&in); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	email, ok := validate.Email(in.Email)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid email")
	}
	name, ok := validate.Name(in.Name)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "name is required")
	}
	if !validate.Password(in.Password) {
		return jsonError(c, fiber.StatusBadRequest, "password must be 6-72 characters")
	}
	if in.Role != "" && !domain.ValidRole(strings.ToLower(in.Role)) {
		return jsonError(c, fiber.StatusBadRequest, "role must be buyer, seller or admin")
	}

	u, err := h.Market.RegisterUser(services.RegisterInput{
		Name: name, Email: email, Password: in.Password, Role: in.Role,
	})
	if err != nil {
		if errors.Is(err, services.ErrAlreadyRegistered) {
			applog.Info(c, "user.register.duplicate", map[string]any{"email": email})
			return softFail(c, err.Error())
		}
		applog.Error(c, "user.register.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not create user")
	}
	applog.Audit(c, "user.register", map[string]any{"email": u.Email, "role": u.Role})
	return c.Status(fiber.StatusCreated).JSON(u)
}

// GET /jwt?email=
func (h *UserHandler) IssueToken(c *fiber.Ctx) error {
	email, ok := validate.Email(c.Query("email"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid email")
	}
	if _, err := h.Users.ByEmail(email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			applog.Security(c, "token.issue.unknown", map[string]any{"email": email})
			return jsonError(c, fiber.StatusForbidden, "no account for this email")
		}
		return jsonError(c, fiber.StatusInternalServerError, "could not issue token")
	}
	tok, err := h.Tokens.Issue(email)
	if err != nil {
		applog.Error(c, "token.issue.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not issue token")
	}
	applog.Audit(c, "token.issue", map[string]any{"email": email})
	return c.JSON(fiber.Map{"accessToken": tok})
}

// GET /users  [admin]
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.Users.List()
	if err != nil {
		applog.Error(c, "user.list.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not fetch users")
	}
	return c.JSON(users)
}

// GET /buyers  [admin]
func (h *UserHandler) Buyers(c *fiber.Ctx) error { return h.listByRole(c, domain.RoleBuyer) }

// GET /sellers  [admin]
func (h *UserHandler) Sellers(c *fiber.Ctx) error { return h.listByRole(c, domain.RoleSeller) }

func (h *UserHandler) listByRole(c *fiber.Ctx, role string) error {
	users, err := h.Users.ListByRole(role)
	if err != nil {
		applog.Error(c, "user.list.fail", err, map[string]any{"role": role})
		return jsonError(c, fiber.StatusInternalServerError, "could not fetch users")
	}
	return c.JSON(users)
}

// GET /users/admin/:email  [auth]
func (h *UserHandler) IsAdmin(c *fiber.Ctx) error {
	email, ok := validate.Email(c.Params("email"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid email")
	}
	u, err := h.Users.ByEmail(email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return jsonError(c, fiber.StatusInternalServerError, "could not fetch user")
	}
	return c.JSON(fiber.Map{"isAdmin": err == nil && u.Role == domain.RoleAdmin})
}

// GET /users/seller/:email  [auth]
func (h *UserHandler) SellerStatus(c *fiber.Ctx) error {
	email, ok := validate.Email(c.Params("email"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid email")
	}
	u, err := h.Users.ByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(fiber.Map{"isSeller": false})
		}
		return jsonError(c, fiber.StatusInternalServerError, "could not fetch user")
	}
	if u.Role != domain.RoleSeller {
		return c.JSON(fiber.Map{"isSeller": false})
	}
	return c.JSON(fiber.Map{"isSeller": true, "seller": u})
}

// PUT /sellers/:id  [admin]. Flips verified once; unknown id is a 404.
func (h *UserHandler) Verify(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	matched, err := h.Users.SetVerified(id)
	if err != nil {
		applog.Error(c, "seller.verify.fail", err, map[string]any{"user_id": id})
		return jsonError(c, fiber.StatusInternalServerError, "could not verify seller")
	}
	if !matched {
		return jsonError(c, fiber.StatusNotFound, "user not found")
	}
	applog.Audit(c, "seller.verify", map[string]any{"user_id": id})
	return c.JSON(fiber.Map{"acknowledged": true})
}

// DELETE /deleteUser/:id  [admin]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	deleted, err := h.Users.Delete(id)
	if err != nil {
		applog.Error(c, "user.delete.fail", err, map[string]any{"user_id": id})
		return jsonError(c, fiber.StatusInternalServerError, "could not delete user")
	}
	if !deleted {
		return jsonError(c, fiber.StatusNotFound, "user not found")
	}
	applog.Audit(c, "user.delete", map[string]any{"user_id": id})
	return c.JSON(fiber.Map{"acknowledged": true})
}
