package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"ecommerce-backend/internal/domain"
	productrepo "ecommerce-backend/internal/repository/product"
)

type CategoryStore interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, c domain.Category) (*domain.Category, error)
}

type ProductStore interface {
	List(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id int64, in productrepo.UpdateInput) error
}

// JSONImporter reads a catalog export and loads categories and products,
// matching existing rows by name so reruns update instead of duplicating.
type JSONImporter struct {
	reader     io.Reader
	categories CategoryStore
	products   ProductStore
}

func NewJSONImporter(r io.Reader, categories CategoryStore, products ProductStore) *JSONImporter {
	return &JSONImporter{
		reader:     r,
		categories: categories,
		products:   products,
	}
}

type catalogFile struct {
	Categories []categoryEntry `json:"categories"`
}

type categoryEntry struct {
	Name     string         `json:"name"`
	Products []productEntry `json:"products"`
}

type productEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
	Quantity    int    `json:"quantity"`
}

// Run parses the catalog and loads it. It returns the number of products
// written.
func (i *JSONImporter) Run(ctx context.Context) (int, error) {
	var catalog catalogFile
	if err := json.NewDecoder(i.reader).Decode(&catalog); err != nil {
		return 0, fmt.Errorf("decode catalog: %w", err)
	}

	existingCategories, err := i.categories.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list categories: %w", err)
	}
	categoryIDs := make(map[string]int64, len(existingCategories))
	for _, c := range existingCategories {
		categoryIDs[strings.ToLower(c.Name)] = c.ID
	}

	existingProducts, err := i.products.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list products: %w", err)
	}
	productIDs := make(map[string]int64, len(existingProducts))
	for _, p := range existingProducts {
		productIDs[productKey(p.CategoryID, p.Name)] = p.ID
	}

	imported := 0
	for _, entry := range catalog.Categories {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return imported, fmt.Errorf("category with empty name")
		}

		categoryID, ok := categoryIDs[strings.ToLower(name)]
		if !ok {
			created, err := i.categories.Create(ctx, domain.Category{Name: name})
			if err != nil {
				return imported, fmt.Errorf("create category %q: %w", name, err)
			}
			categoryID = created.ID
			categoryIDs[strings.ToLower(name)] = categoryID
		}

		for _, p := range entry.Products {
			if err := i.saveProduct(ctx, categoryID, p, productIDs); err != nil {
				return imported, err
			}
			imported++
		}
	}

	return imported, nil
}

func (i *JSONImporter) saveProduct(ctx context.Context, categoryID int64, p productEntry, productIDs map[string]int64) error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return fmt.Errorf("product with empty name in category %d", categoryID)
	}
	if p.PriceCents < 0 {
		return fmt.Errorf("negative price for product %q", name)
	}

	if id, ok := productIDs[productKey(categoryID, name)]; ok {
		in := productrepo.UpdateInput{
			Description: &p.Description,
			PriceCents:  &p.PriceCents,
			Quantity:    &p.Quantity,
		}
		if err := i.products.Update(ctx, id, in); err != nil {
			return fmt.Errorf("update product %q: %w", name, err)
		}
		return nil
	}

	created, err := i.products.Create(ctx, domain.Product{
		CategoryID:  categoryID,
		Name:        name,
		Description: p.Description,
		PriceCents:  p.PriceCents,
		Quantity:    p.Quantity,
	})
	if err != nil {
		return fmt.Errorf("create product %q: %w", name, err)
	}
	productIDs[productKey(categoryID, name)] = created.ID
	return nil
}

func productKey(categoryID int64, name string) string {
	return fmt.Sprintf("%d/%s", categoryID, strings.ToLower(name))
}
