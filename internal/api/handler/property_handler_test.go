package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/prsunet/realestate-api/internal/api/handler"
	"github.com/prsunet/realestate-api/internal/core/domain"
	"github.com/prsunet/realestate-api/internal/core/ports"
)

type stubPropertyService struct {
	createFn func(ctx context.Context, input ports.CreatePropertyInput) (*domain.Property, error)
	listFn   func(ctx context.Context) ([]ports.PropertyDetail, error)
	getFn    func(ctx context.Context, id string) (*ports.PropertyDetail, error)
	updateFn func(ctx context.Context, id, callerID string, input ports.UpdatePropertyInput) (*domain.Property, error)
	deleteFn func(ctx context.Context, id, callerID string) error
}

func (s *stubPropertyService) Create(ctx context.Context, input ports.CreatePropertyInput) (*domain.Property, error) {
	return s.createFn(ctx, input)
}

func (s *stubPropertyService) List(ctx context.Context) ([]ports.PropertyDetail, error) {
	return s.listFn(ctx)
}

func (s *stubPropertyService) Get(ctx context.Context, id string) (*ports.PropertyDetail, error) {
	return s.getFn(ctx, id)
}

func (s *stubPropertyService) Update(ctx context.Context, id, callerID string, input ports.UpdatePropertyInput) (*domain.Property, error) {
	return s.updateFn(ctx, id, callerID, input)
}

func (s *stubPropertyService) Delete(ctx context.Context, id, callerID string) error {
	return s.deleteFn(ctx, id, callerID)
}

func authenticatedContext(e *echo.Echo, method, path, body, callerID string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if callerID != "" {
		c.Set("id", callerID)
		c.Set("role", domain.RoleSeller)
	}
	return c, rec
}

func TestPropertyHandler_Create_Success(t *testing.T) {
	e := newEcho()
	stub := &stubPropertyService{
		createFn: func(ctx context.Context, input ports.CreatePropertyInput) (*domain.Property, error) {
			if input.SellerID != "seller_1" {
				t.Fatalf("seller not taken from context: %q", input.SellerID)
			}
			if input.Title != "T" || input.Price != 100 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Property{
				ID:       "prop_1",
				Title:    input.Title,
				Price:    input.Price,
				SellerID: input.SellerID,
			}, nil
		},
	}
	h := handler.NewPropertyHandler(stub)

	body := `{"title":"T","description":"D","price":100,"location":"L","images":["u1"]}`
	c, rec := authenticatedContext(e, http.MethodPost, "/api/properties", body, "seller_1")
	invoke(e, c, h.Create)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "prop_1" || resp["seller"] != "seller_1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

// A seller field in the request body must never override the caller identity.
func TestPropertyHandler_Create_IgnoresClientSeller(t *testing.T) {
	e := newEcho()
	stub := &stubPropertyService{
		createFn: func(ctx context.Context, input ports.CreatePropertyInput) (*domain.Property, error) {
			if input.SellerID != "seller_1" {
				t.Fatalf("client-settable seller accepted: %q", input.SellerID)
			}
			return &domain.Property{ID: "prop_1", SellerID: input.SellerID}, nil
		},
	}
	h := handler.NewPropertyHandler(stub)

	body := `{"title":"T","description":"D","price":100,"location":"L","images":["u1"],"seller":"attacker"}`
	c, rec := authenticatedContext(e, http.MethodPost, "/api/properties", body, "seller_1")
	invoke(e, c, h.Create)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestPropertyHandler_Create_MissingFields(t *testing.T) {
	e := newEcho()
	stub := &stubPropertyService{
		createFn: func(ctx context.Context, input ports.CreatePropertyInput) (*domain.Property, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := handler.NewPropertyHandler(stub)

	c, rec := authenticatedContext(e, http.MethodPost, "/api/properties", `{"title":"T"}`, "seller_1")
	invoke(e, c, h.Create)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "All fields are required") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestPropertyHandler_Create_NoIdentity(t *testing.T) {
	e := newEcho()
	stub := &stubPropertyService{
		createFn: func(ctx context.Context, input ports.CreatePropertyInput) (*domain.Property, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := handler.NewPropertyHandler(stub)

	body := `{"title":"T","description":"D","price":100,"location":"L","images":["u1"]}`
	c, rec := authenticatedContext(e, http.MethodPost, "/api/properties", body, "")
	invoke(e, c, h.Create)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestPropertyHandler_List(t *testing.T) {
	e := newEcho()
	now := time.Now().UTC()
	stub := &stubPropertyService{
		listFn: func(ctx context.Context) ([]ports.PropertyDetail, error) {
			return []ports.PropertyDetail{{
				ID:          "prop_1",
				Title:       "T",
				Description: "D",
				Price:       100,
				Location:    "L",
				Images:      []string{"u1"},
				Seller:      ports.SellerSummary{Name: "Alice", Email: "alice@example.com"},
				CreatedAt:   now,
				UpdatedAt:   now,
			}}, nil
		},
	}
	h := handler.NewPropertyHandler(stub)

	c, rec := authenticatedContext(e, http.MethodGet, "/api/properties", "", "")
	invoke(e, c, h.List)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("expected 1 listing, got %d", len(resp))
	}
	seller, ok := resp[0]["seller"].(map[string]any)
	if !ok || seller["name"] != "Alice" || seller["email"] != "alice@example.com" {
		t.Fatalf("seller not resolved: %+v", resp[0]["seller"])
	}
}

func TestPropertyHandler_Get_NotFound(t *testing.T) {
	e := newEcho()
	stub := &stubPropertyService{
		getFn: func(ctx context.Context, id string) (*ports.PropertyDetail, error) {
			return nil, domain.ErrPropertyNotFound
		},
	}
	h := handler.NewPropertyHandler(stub)

	c, rec := authenticatedContext(e, http.MethodGet, "/api/properties/missing", "", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	invoke(e, c, h.Get)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Property not found") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestPropertyHandler_Update_Forbidden(t *testing.T) {
	e := newEcho()
	stub := &stubPropertyService{
		updateFn: func(ctx context.Context, id, callerID string, input ports.UpdatePropertyInput) (*domain.Property, error) {
			return nil, domain.ErrNotOwner
		},
	}
	h := handler.NewPropertyHandler(stub)

	c, rec := authenticatedContext(e, http.MethodPut, "/api/properties/prop_1", `{"title":"hijack"}`, "user_b")
	c.SetParamNames("id")
	c.SetParamValues("prop_1")
	invoke(e, c, h.Update)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Unauthorized to update this property") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestPropertyHandler_Update_Success(t *testing.T) {
	e := newEcho()
	stub := &stubPropertyService{
		updateFn: func(ctx context.Context, id, callerID string, input ports.UpdatePropertyInput) (*domain.Property, error) {
			if id != "prop_1" || callerID != "seller_1" {
				t.Fatalf("unexpected args: %s %s", id, callerID)
			}
			if input.Title == nil || *input.Title != "New" {
				t.Fatalf("title not passed: %+v", input.Title)
			}
			if input.Price != nil {
				t.Fatalf("absent price should stay nil")
			}
			return &domain.Property{ID: id, Title: *input.Title, SellerID: callerID}, nil
		},
	}
	h := handler.NewPropertyHandler(stub)

	c, rec := authenticatedContext(e, http.MethodPut, "/api/properties/prop_1", `{"title":"New"}`, "seller_1")
	c.SetParamNames("id")
	c.SetParamValues("prop_1")
	invoke(e, c, h.Update)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Property updated successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	property, ok := resp["property"].(map[string]any)
	if !ok || property["title"] != "New" {
		t.Fatalf("unexpected property payload: %+v", resp["property"])
	}
}

func TestPropertyHandler_Delete_Forbidden(t *testing.T) {
	e := newEcho()
	stub := &stubPropertyService{
		deleteFn: func(ctx context.Context, id, callerID string) error {
			return domain.ErrNotOwner
		},
	}
	h := handler.NewPropertyHandler(stub)

	c, rec := authenticatedContext(e, http.MethodDelete, "/api/properties/prop_1", "", "user_b")
	c.SetParamNames("id")
	c.SetParamValues("prop_1")
	invoke(e, c, h.Delete)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Unauthorized to delete this property") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestPropertyHandler_Delete_Success(t *testing.T) {
	e := newEcho()
	stub := &stubPropertyService{
		deleteFn: func(ctx context.Context, id, callerID string) error {
			if id != "prop_1" || callerID != "seller_1" {
				t.Fatalf("unexpected args: %s %s", id, callerID)
			}
			return nil
		},
	}
	h := handler.NewPropertyHandler(stub)

	c, rec := authenticatedContext(e, http.MethodDelete, "/api/properties/prop_1", "", "seller_1")
	c.SetParamNames("id")
	c.SetParamValues("prop_1")
	invoke(e, c, h.Delete)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Property deleted successfully") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestPropertyHandler_Delete_NotFound(t *testing.T) {
	e := newEcho()
	stub := &stubPropertyService{
		deleteFn: func(ctx context.Context, id, callerID string) error {
			return domain.ErrPropertyNotFound
		},
	}
	h := handler.NewPropertyHandler(stub)

	c, rec := authenticatedContext(e, http.MethodDelete, "/api/properties/missing", "", "seller_1")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	invoke(e, c, h.Delete)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
