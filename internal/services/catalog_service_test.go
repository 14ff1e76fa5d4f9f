package services_test

import (
	"testing"

	"phonerdokan/internal/repos"
	"phonerdokan/internal/services"
)

func TestProductsForCategoryFiltersByName(t *testing.T) {
	db := memdb(t)
	if _, err := db.Exec(`INSERT INTO categories(id,name) VALUES('C1','Laptop')`); err != nil {
		t.Fatal(err)
	}
	seedProduct(t, db, "p-laptop", "ThinkPad X1", "Laptop", 1)
	seedProduct(t, db, "p-phone", "Pixel 6", "Phone", 1)

	svc := services.NewCatalogService(repos.NewCategoryRepo(db), repos.NewProductRepo(db))

	prods, err := svc.ProductsForCategory("C1")
	if err != nil {
		t.Fatalf("products for category: %v", err)
	}
	if len(prods) != 1 || prods[0].ID != "p-laptop" {
		t.Fatalf("want only the laptop, got %+v", prods)
	}
}

func TestProductsForCategoryUnknownID(t *testing.T) {
	db := memdb(t)
	svc := services.NewCatalogService(repos.NewCategoryRepo(db), repos.NewProductRepo(db))

	if _, err := svc.ProductsForCategory("missing"); err != services.ErrCategoryNotFound {
		t.Fatalf("want ErrCategoryNotFound, got %v", err)
	}
}

func TestAdvertisedExcludesSoldOut(t *testing.T) {
	db := memdb(t)
	seedProduct(t, db, "p-live", "Pixel 6", "Phone", 1)
	seedProduct(t, db, "p-sold", "Pixel 5", "Phone", 0)
	if _, err := db.Exec(`UPDATE products SET advertise=1`); err != nil {
		t.Fatal(err)
	}

	prods, err := repos.NewProductRepo(db).Advertised()
	if err != nil {
		t.Fatal(err)
	}
	if len(prods) != 1 || prods[0].ID != "p-live" {
		t.Fatalf("advertised must exclude sold-out items, got %+v", prods)
	}
}

func TestCreateProductStartsAvailable(t *testing.T) {
	db := memdb(t)
	svc := services.NewCatalogService(repos.NewCategoryRepo(db), repos.NewProductRepo(db))

	p, err := svc.CreateProduct(services.ProductInput{
		Name: "Pixel 6", SellerEmail: "seller@dokan.test", Category: "Phone", Price: 299,
	})
	if err != nil {
		t.Fatal(err)
	}
	if p.Quantity != 1 {
		t.Fatalf("new product must be available, got quantity=%d", p.Quantity)
	}
	if p.Advertise || p.Reported {
		t.Fatalf("new product flags must be clear: %+v", p)
	}
}
