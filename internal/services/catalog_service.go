package services

import (
	"database/sql"
	"errors"
	"time"

	"phonerdokan/internal/domain"
	"phonerdokan/internal/repos"

	"github.com/google/uuid"
)

var ErrCategoryNotFound = errors.New("category not found")

type CatalogService struct {
	Cats  *repos.CategoryRepo
	Prods *repos.ProductRepo
}

func NewCatalogService(cats *repos.CategoryRepo, prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Cats: cats, Prods: prods}
}

func (s *CatalogService) CreateCategory(name string) (*domain.Category, error) {
	c := &domain.Category{ID: uuid.NewString(), Name: name}
	if err := s.Cats.Insert(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CatalogService) ListCategories(limit int) ([]domain.Category, error) {
	return s.Cats.List(limit)
}

// ProductsForCategory resolves the category id to its name first, then
// filters products by that name. Products carry the category name, so the
// lookup is two sequential reads, not a join on ids.
func (s *CatalogService) ProductsForCategory(categoryID string) ([]domain.Product, error) {
	cat, err := s.Cats.ByID(categoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return s.Prods.ByCategoryName(cat.Name)
}

type ProductInput struct {
	Name        string
	SellerEmail string
	SellerName  string
	Category    string
	Price       float64
}

func (s *CatalogService) CreateProduct(in ProductInput) (*domain.Product, error) {
	p := &domain.Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		SellerEmail: in.SellerEmail,
		SellerName:  in.SellerName,
		Category:    in.Category,
		Quantity:    1,
		Price:       in.Price,
		PostedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.Prods.Insert(p); err != nil {
		return nil, err
	}
	return p, nil
}
