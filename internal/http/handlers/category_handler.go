package handlers

import (
	"errors"

	applog "phonerdokan/internal/log"
	"phonerdokan/internal/services"
	"phonerdokan/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	Catalog *services.CatalogService
}

// POST /categories  [admin]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&in); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	name, ok := validate.Name(in.Name)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "name is required")
	}
	cat, err := h.Catalog.CreateCategory(name)
	if err != nil {
		applog.Error(c, "category.create.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not create category")
	}
	applog.Audit(c, "category.create", map[string]any{"category": cat.ID})
	return c.Status(fiber.StatusCreated).JSON(cat)
}

// GET /categories?limit=
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	cats, err := h.Catalog.ListCategories(validate.Limit(c.Query("limit")))
	if err != nil {
		applog.Error(c, "category.list.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not fetch categories")
	}
	return c.JSON(cats)
}

// GET /categories/:id. Lists products whose category name matches.
func (h *CategoryHandler) Products(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	prods, err := h.Catalog.ProductsForCategory(id)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			return jsonError(c, fiber.StatusNotFound, "category not found")
		}
		applog.Error(c, "category.products.fail", err, map[string]any{"category": id})
		return jsonError(c, fiber.StatusInternalServerError, "could not fetch products")
	}
	return c.JSON(prods)
}
