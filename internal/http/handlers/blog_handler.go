package handlers

import (
	"phonerdokan/internal/domain"
	applog "phonerdokan/internal/log"
	"phonerdokan/internal/repos"
	"phonerdokan/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type BlogHandler struct {
	Blogs *repos.BlogRepo
}

// POST /blogs  [admin]
func (h *BlogHandler) Create(c *fiber.Ctx) error {
	var in struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&in); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	title, ok := validate.Name(in.Title)
	if !ok || in.Content == "" {
		return jsonError(c, fiber.StatusBadRequest, "title and content are required")
	}

	b := &domain.Blog{
		ID:          uuid.NewString(),
		Title:       title,
		Content:     in.Content,
		AuthorEmail: CurrentEmail(c),
	}
	if err := h.Blogs.Insert(b); err != nil {
		applog.Error(c, "blog.create.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not create blog post")
	}
	applog.Audit(c, "blog.create", map[string]any{"blog": b.ID})
	return c.Status(fiber.StatusCreated).JSON(b)
}

// GET /blogs?limit=
func (h *BlogHandler) List(c *fiber.Ctx) error {
	posts, err := h.Blogs.List(validate.Limit(c.Query("limit")))
	if err != nil {
		applog.Error(c, "blog.list.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not fetch blog posts")
	}
	return c.JSON(posts)
}
