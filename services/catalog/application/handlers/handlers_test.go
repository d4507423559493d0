package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/gocatalog/pkg/config"
	"github.com/ghuser/gocatalog/pkg/logger"
	"github.com/ghuser/gocatalog/services/catalog/application/handlers"
	appsvcs "github.com/ghuser/gocatalog/services/catalog/application/services"
	"github.com/ghuser/gocatalog/services/catalog/domain"
	"github.com/ghuser/gocatalog/services/catalog/domain/models"
)

type stubItemRepo struct {
	items  map[int64]*models.Item
	brands *stubBrandRepo
	cats   *stubCategoryRepo
	nextID int64
}

func (s *stubItemRepo) projection(item *models.Item) *models.ItemProjection {
	return &models.ItemProjection{
		ID:                item.ID,
		Name:              item.Name,
		Slug:              item.Slug,
		Description:       item.Description,
		BrandID:           item.BrandID,
		BrandLabel:        s.brands.labels[item.BrandID],
		CategoryID:        item.CategoryID,
		CategoryLabel:     s.cats.labels[item.CategoryID],
		Price:             item.Price,
		AvailableStock:    item.AvailableStock,
		MaxStockThreshold: item.MaxStockThreshold,
	}
}

func (s *stubItemRepo) Create(_ context.Context, item *models.Item) (*models.ItemProjection, error) {
	for _, existing := range s.items {
		if existing.Slug == item.Slug {
			return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateSlug, item.Slug)
		}
	}
	item.ID = s.nextID
	s.nextID++
	stored := *item
	s.items[item.ID] = &stored
	return s.projection(item), nil
}

func (s *stubItemRepo) Update(_ context.Context, item *models.Item) (*models.ItemProjection, error) {
	if _, ok := s.items[item.ID]; !ok {
		return nil, domain.ErrItemNotFound
	}
	stored := *item
	s.items[item.ID] = &stored
	return s.projection(item), nil
}

func (s *stubItemRepo) UpdateMaxStockThreshold(_ context.Context, item *models.Item) error {
	stored, ok := s.items[item.ID]
	if !ok {
		return domain.ErrItemNotFound
	}
	stored.MaxStockThreshold = item.MaxStockThreshold
	return nil
}

func (s *stubItemRepo) FindByID(_ context.Context, id int64) (*models.Item, error) {
	stored, ok := s.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	item := *stored
	return &item, nil
}

func (s *stubItemRepo) GetByID(_ context.Context, id int64) (*models.ItemProjection, error) {
	stored, ok := s.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return s.projection(stored), nil
}

func (s *stubItemRepo) List(_ context.Context) ([]models.ItemProjection, error) {
	var projs []models.ItemProjection
	for id := int64(1); id < s.nextID; id++ {
		if stored, ok := s.items[id]; ok {
			projs = append(projs, *s.projection(stored))
		}
	}
	return projs, nil
}

func (s *stubItemRepo) Delete(_ context.Context, id int64) error {
	if _, ok := s.items[id]; !ok {
		return domain.ErrItemNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *stubItemRepo) SlugExists(_ context.Context, slug string, excludeID int64) (bool, error) {
	for id, existing := range s.items {
		if id != excludeID && existing.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

type stubBrandRepo struct{ labels map[int64]string }

func (s *stubBrandRepo) Create(_ context.Context, brand *models.Brand) error {
	brand.ID = int64(len(s.labels) + 1)
	s.labels[brand.ID] = brand.Label
	return nil
}

func (s *stubBrandRepo) GetByID(_ context.Context, id int64) (*models.Brand, error) {
	label, ok := s.labels[id]
	if !ok {
		return nil, domain.ErrBrandNotFound
	}
	return &models.Brand{ID: id, Label: label}, nil
}

func (s *stubBrandRepo) List(_ context.Context) ([]models.Brand, error) { return nil, nil }

func (s *stubBrandRepo) Delete(_ context.Context, id int64) error {
	if _, ok := s.labels[id]; !ok {
		return domain.ErrBrandNotFound
	}
	delete(s.labels, id)
	return nil
}

func (s *stubBrandRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := s.labels[id]
	return ok, nil
}

type stubCategoryRepo struct{ labels map[int64]string }

func (s *stubCategoryRepo) Create(_ context.Context, category *models.Category) error {
	category.ID = int64(len(s.labels) + 1)
	s.labels[category.ID] = category.Label
	return nil
}

func (s *stubCategoryRepo) GetByID(_ context.Context, id int64) (*models.Category, error) {
	label, ok := s.labels[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return &models.Category{ID: id, Label: label}, nil
}

func (s *stubCategoryRepo) List(_ context.Context) ([]models.Category, error) { return nil, nil }

func (s *stubCategoryRepo) Delete(_ context.Context, id int64) error {
	if _, ok := s.labels[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(s.labels, id)
	return nil
}

func (s *stubCategoryRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := s.labels[id]
	return ok, nil
}

// newTestRouter wires the item endpoints against in-memory stubs, mirroring
// the production route layout under /api/v1.
func newTestRouter() *chi.Mux {
	brands := &stubBrandRepo{labels: map[int64]string{2: "Acme"}}
	cats := &stubCategoryRepo{labels: map[int64]string{3: "Kitchen"}}
	items := &stubItemRepo{items: map[int64]*models.Item{}, brands: brands, cats: cats, nextID: 1}
	log := logger.New(&config.Config{LogLevel: "error"})

	svcs := &appsvcs.Services{
		Item:     appsvcs.NewItemService(items, brands, cats, nil, log),
		Brand:    appsvcs.NewBrandService(brands),
		Category: appsvcs.NewCategoryService(cats),
	}

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
			r.Put("/", handlers.NewPutItemHandler(svcs).Execute)
			r.Patch("/MaxStockThreshold", handlers.NewPatchItemThresholdHandler(svcs).Execute)
			r.Get("/", handlers.NewGetItemsHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetItemHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteItemHandler(svcs).Execute)
		})
	})
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestPostItem(t *testing.T) {
	t.Run("valid request returns 201 with locator and projection", func(t *testing.T) {
		r := newTestRouter()
		rr := doJSON(t, r, http.MethodPost, "/api/v1/items",
			`{"name":"Red Mug","description":"A ceramic mug","brandId":2,"categoryId":3,"maxStockThreshold":100,"price":9.5}`)

		if rr.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
		}
		if loc := rr.Header().Get("Location"); loc != "/api/v1/items/1" {
			t.Errorf("Location: got %q", loc)
		}

		var body map[string]any
		if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["slug"] != "red-mug" {
			t.Errorf("slug: got %v", body["slug"])
		}
		if body["brandLabel"] != "Acme" || body["categoryLabel"] != "Kitchen" {
			t.Errorf("labels: got %v / %v", body["brandLabel"], body["categoryLabel"])
		}
		if body["availableStock"] != float64(0) {
			t.Errorf("availableStock: got %v, want 0", body["availableStock"])
		}
	})

	t.Run("missing name fails validation with 400", func(t *testing.T) {
		r := newTestRouter()
		rr := doJSON(t, r, http.MethodPost, "/api/v1/items",
			`{"brandId":2,"categoryId":3,"maxStockThreshold":100}`)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rr.Code)
		}
		if !strings.Contains(rr.Body.String(), "Validation failed") || !strings.Contains(rr.Body.String(), "name") {
			t.Errorf("unexpected body: %s", rr.Body.String())
		}
	})

	t.Run("unknown category returns 400", func(t *testing.T) {
		r := newTestRouter()
		rr := doJSON(t, r, http.MethodPost, "/api/v1/items",
			`{"name":"Red Mug","brandId":2,"categoryId":99,"maxStockThreshold":100}`)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rr.Code, rr.Body.String())
		}
		if !strings.Contains(rr.Body.String(), "category id is not valid") {
			t.Errorf("unexpected body: %s", rr.Body.String())
		}
	})

	t.Run("duplicate slug returns 409", func(t *testing.T) {
		r := newTestRouter()
		payload := `{"name":"Red Mug","brandId":2,"categoryId":3,"maxStockThreshold":100}`
		if rr := doJSON(t, r, http.MethodPost, "/api/v1/items", payload); rr.Code != http.StatusCreated {
			t.Fatalf("seed create failed: %d", rr.Code)
		}
		rr := doJSON(t, r, http.MethodPost, "/api/v1/items", payload)
		if rr.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d: %s", rr.Code, rr.Body.String())
		}
	})
}

func TestPutItem(t *testing.T) {
	t.Run("missing item returns 404", func(t *testing.T) {
		r := newTestRouter()
		rr := doJSON(t, r, http.MethodPut, "/api/v1/items",
			`{"id":42,"name":"Red Mug","brandId":2,"categoryId":3}`)
		if rr.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d: %s", rr.Code, rr.Body.String())
		}
	})

	t.Run("rename returns 201 with recomputed slug", func(t *testing.T) {
		r := newTestRouter()
		if rr := doJSON(t, r, http.MethodPost, "/api/v1/items",
			`{"name":"Red Mug","brandId":2,"categoryId":3,"maxStockThreshold":100}`); rr.Code != http.StatusCreated {
			t.Fatalf("seed create failed: %d", rr.Code)
		}

		rr := doJSON(t, r, http.MethodPut, "/api/v1/items",
			`{"id":1,"name":"Blue Mug","brandId":2,"categoryId":3}`)
		if rr.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
		}

		var body map[string]any
		_ = json.Unmarshal(rr.Body.Bytes(), &body)
		if body["slug"] != "blue-mug" {
			t.Errorf("slug: got %v", body["slug"])
		}
	})
}

func TestPatchItemThreshold(t *testing.T) {
	r := newTestRouter()
	if rr := doJSON(t, r, http.MethodPost, "/api/v1/items",
		`{"name":"Red Mug","brandId":2,"categoryId":3,"maxStockThreshold":100}`); rr.Code != http.StatusCreated {
		t.Fatalf("seed create failed: %d", rr.Code)
	}

	rr := doJSON(t, r, http.MethodPatch, "/api/v1/items/MaxStockThreshold",
		`{"id":1,"maxStockThreshold":150}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var body map[string]any
	_ = json.Unmarshal(rr.Body.Bytes(), &body)
	if body["maxStockThreshold"] != float64(150) {
		t.Errorf("maxStockThreshold: got %v, want 150", body["maxStockThreshold"])
	}
}

func TestGetItem(t *testing.T) {
	t.Run("non-numeric id returns 400", func(t *testing.T) {
		r := newTestRouter()
		rr := doJSON(t, r, http.MethodGet, "/api/v1/items/abc", "")
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rr.Code)
		}
	})

	t.Run("missing item returns 404", func(t *testing.T) {
		r := newTestRouter()
		rr := doJSON(t, r, http.MethodGet, "/api/v1/items/42", "")
		if rr.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rr.Code)
		}
	})
}

func TestGetItems_emptyStore(t *testing.T) {
	r := newTestRouter()
	rr := doJSON(t, r, http.MethodGet, "/api/v1/items", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if got := strings.TrimSpace(rr.Body.String()); got != "[]" {
		t.Errorf("expected empty JSON array, got %s", got)
	}
}

func TestDeleteItem(t *testing.T) {
	r := newTestRouter()
	if rr := doJSON(t, r, http.MethodPost, "/api/v1/items",
		`{"name":"Red Mug","brandId":2,"categoryId":3,"maxStockThreshold":100}`); rr.Code != http.StatusCreated {
		t.Fatalf("seed create failed: %d", rr.Code)
	}

	if rr := doJSON(t, r, http.MethodDelete, "/api/v1/items/1", ""); rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}
	if rr := doJSON(t, r, http.MethodDelete, "/api/v1/items/1", ""); rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", rr.Code)
	}
	if rr := doJSON(t, r, http.MethodDelete, "/api/v1/items/0", ""); rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for id 0, got %d", rr.Code)
	}
}
