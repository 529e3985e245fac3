package importer

import (
	"context"
	"strings"
	"testing"

	"ecommerce-backend/internal/domain"
	productrepo "ecommerce-backend/internal/repository/product"
)

type memCategoryStore struct {
	categories []domain.Category
	nextID     int64
}

func (s *memCategoryStore) List(_ context.Context) ([]domain.Category, error) {
	return s.categories, nil
}

func (s *memCategoryStore) Create(_ context.Context, c domain.Category) (*domain.Category, error) {
	s.nextID++
	c.ID = s.nextID
	s.categories = append(s.categories, c)
	return &c, nil
}

type memProductStore struct {
	products []domain.Product
	nextID   int64
	updates  map[int64]productrepo.UpdateInput
}

func (s *memProductStore) List(_ context.Context) ([]domain.Product, error) {
	return s.products, nil
}

func (s *memProductStore) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	s.nextID++
	p.ID = s.nextID
	s.products = append(s.products, p)
	return &p, nil
}

func (s *memProductStore) Update(_ context.Context, id int64, in productrepo.UpdateInput) error {
	if s.updates == nil {
		s.updates = make(map[int64]productrepo.UpdateInput)
	}
	s.updates[id] = in
	return nil
}

const sampleCatalog = `{
  "categories": [
    {
      "name": "Apparel",
      "products": [
        {"name": "Tee", "description": "Cotton tee", "price_cents": 1999, "quantity": 50},
        {"name": "Hoodie", "description": "Warm hoodie", "price_cents": 4999, "quantity": 20}
      ]
    },
    {
      "name": "Kitchen",
      "products": [
        {"name": "Mug", "description": "Ceramic mug", "price_cents": 1299, "quantity": 120}
      ]
    }
  ]
}`

func TestRunImportsCatalog(t *testing.T) {
	categories := &memCategoryStore{}
	products := &memProductStore{}
	imp := NewJSONImporter(strings.NewReader(sampleCatalog), categories, products)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 products, got %d", count)
	}
	if len(categories.categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories.categories))
	}
	if products.products[0].Name != "Tee" || products.products[0].PriceCents != 1999 {
		t.Fatalf("unexpected first product: %+v", products.products[0])
	}
	if products.products[2].CategoryID != categories.categories[1].ID {
		t.Fatalf("product not linked to category: %+v", products.products[2])
	}
}

func TestRunUpdatesExistingByName(t *testing.T) {
	categories := &memCategoryStore{
		categories: []domain.Category{{ID: 1, Name: "Apparel"}},
		nextID:     1,
	}
	products := &memProductStore{
		products: []domain.Product{{ID: 5, CategoryID: 1, Name: "Tee", PriceCents: 100}},
		nextID:   5,
	}

	catalog := `{"categories":[{"name":"apparel","products":[{"name":"TEE","price_cents":1999,"quantity":50}]}]}`
	imp := NewJSONImporter(strings.NewReader(catalog), categories, products)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 product, got %d", count)
	}
	if len(categories.categories) != 1 {
		t.Fatalf("category duplicated: %d", len(categories.categories))
	}
	if len(products.products) != 1 {
		t.Fatalf("product duplicated: %d", len(products.products))
	}
	in, ok := products.updates[5]
	if !ok {
		t.Fatal("expected an update for product 5")
	}
	if in.PriceCents == nil || *in.PriceCents != 1999 {
		t.Fatalf("unexpected update: %+v", in)
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	imp := NewJSONImporter(strings.NewReader(`{"categories":[{"name":""}]}`), &memCategoryStore{}, &memProductStore{})
	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatal("expected error for empty category name")
	}

	imp = NewJSONImporter(strings.NewReader("not json"), &memCategoryStore{}, &memProductStore{})
	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatal("expected error for malformed json")
	}

	catalog := `{"categories":[{"name":"Apparel","products":[{"name":"Tee","price_cents":-5}]}]}`
	imp = NewJSONImporter(strings.NewReader(catalog), &memCategoryStore{}, &memProductStore{})
	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatal("expected error for negative price")
	}
}
