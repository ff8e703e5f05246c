package handlers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/yog-patel/home-designer-ai-app/internal/adapter/repo"
	"github.com/yog-patel/home-designer-ai-app/internal/catalog"
	"github.com/yog-patel/home-designer-ai-app/internal/domain"
)

type stubGenerationService struct {
	gotUser string
	gotReq  domain.DesignRequest
	result  *domain.GenerationResult
	err     error
}

func (s *stubGenerationService) GenerateAs(ctx context.Context, userID string, req domain.DesignRequest) (*domain.GenerationResult, error) {
	s.gotUser = userID
	s.gotReq = req
	return s.result, s.err
}

type stubEntitlementService struct {
	identity string
	state    domain.EntitlementState
	resetErr error
	resets   []string
}

func (s *stubEntitlementService) Identity(ctx context.Context) (string, error) {
	return s.identity, nil
}

func (s *stubEntitlementService) State(ctx context.Context, userID string) domain.EntitlementState {
	return s.state
}

func (s *stubEntitlementService) Remaining(ctx context.Context, userID string) (int, bool) {
	return s.state.Remaining(time.Now())
}

func (s *stubEntitlementService) PremiumEffective(ctx context.Context, userID string) bool {
	return s.state.PremiumActive(time.Now())
}

func (s *stubEntitlementService) Reset(ctx context.Context, userID string) error {
	s.resets = append(s.resets, userID)
	return s.resetErr
}

type stubEventRecorder struct {
	events []repo.UsageEvent
}

func (s *stubEventRecorder) Insert(ctx context.Context, event repo.UsageEvent) error {
	s.events = append(s.events, event)
	return nil
}

type stubGallery struct {
	designs []domain.Design
	deleted []string
	err     error
}

func (s *stubGallery) Save(ctx context.Context, d *domain.Design) error { return s.err }

func (s *stubGallery) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Design, error) {
	return s.designs, s.err
}

func (s *stubGallery) GetByID(ctx context.Context, id, userID string) (*domain.Design, error) {
	for i := range s.designs {
		if s.designs[i].ID == id {
			return &s.designs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubGallery) Delete(ctx context.Context, id, userID string) error {
	s.deleted = append(s.deleted, id)
	return s.err
}

func newTestApp(gen *stubGenerationService, ent *stubEntitlementService, gallery domain.DesignRepository, events UsageEventRecorder) *App {
	return &App{
		Logger:      zerolog.Nop(),
		Generator:   gen,
		Entitlement: ent,
		Designs:     gallery,
		Events:      events,
	}
}

func testRouter(app *App) http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", app.Health)
	r.Post("/v1/designs/generate", app.GenerateDesign)
	r.Get("/v1/designs/", app.ListDesigns)
	r.Get("/v1/designs/{id}", app.GetDesign)
	r.Delete("/v1/designs/{id}", app.DeleteDesign)
	r.Get("/v1/usage/", app.GetUsage)
	r.Post("/v1/usage/reset", app.ResetUsage)
	r.Get("/v1/catalog/design-types", app.ListDesignTypes)
	r.Get("/v1/catalog/{type}/areas", app.ListAreas)
	r.Get("/v1/catalog/{type}/styles", app.ListStyles)
	return r
}

func TestGenerateDesignOK(t *testing.T) {
	gen := &stubGenerationService{result: &domain.GenerationResult{
		DesignID:   "d1",
		UserID:     "u1",
		ImageURL:   "https://cdn.example.com/out.jpg",
		DesignType: catalog.DesignTypeInterior,
		CreatedAt:  time.Now(),
	}}
	ent := &stubEntitlementService{identity: "u1"}
	events := &stubEventRecorder{}
	router := testRouter(newTestApp(gen, ent, nil, events))

	body, _ := json.Marshal(map[string]string{
		"design_type": "interior",
		"area_id":     "living",
		"style_id":    "modern",
		"palette_id":  "cool",
		"image_url":   "https://cdn.example.com/in.jpg",
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/designs/generate", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var out struct {
		DesignID string `json:"design_id"`
		ImageURL string `json:"image_url"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.DesignID != "d1" || out.ImageURL != "https://cdn.example.com/out.jpg" {
		t.Errorf("response = %+v", out)
	}
	if gen.gotUser != "u1" {
		t.Errorf("user passed to pipeline = %q", gen.gotUser)
	}
	if gen.gotReq.Source.URL != "https://cdn.example.com/in.jpg" {
		t.Errorf("source = %+v", gen.gotReq.Source)
	}
	if len(events.events) != 1 || !events.events[0].Success {
		t.Errorf("usage events = %+v", events.events)
	}
}

func TestGenerateDesignDecodesDataURL(t *testing.T) {
	gen := &stubGenerationService{result: &domain.GenerationResult{DesignID: "d1"}}
	router := testRouter(newTestApp(gen, &stubEntitlementService{identity: "u1"}, nil, nil))

	payload := base64.StdEncoding.EncodeToString([]byte{0x89, 0x50, 0x4E, 0x47})
	body, _ := json.Marshal(map[string]string{
		"design_type":    "paint",
		"area_id":        "wall",
		"paint_color_id": "sage",
		"image_data":     "data:image/png;base64," + payload,
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/designs/generate", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if gen.gotReq.Source.MIME != "image/png" {
		t.Errorf("mime = %q", gen.gotReq.Source.MIME)
	}
	if len(gen.gotReq.Source.Data) != 4 {
		t.Errorf("data = %v", gen.gotReq.Source.Data)
	}
}

func TestGenerateDesignHeaderUserWins(t *testing.T) {
	gen := &stubGenerationService{result: &domain.GenerationResult{DesignID: "d1"}}
	router := testRouter(newTestApp(gen, &stubEntitlementService{identity: "local"}, nil, nil))

	body, _ := json.Marshal(map[string]string{"design_type": "garden", "area_id": "backyard", "palette_id": "forest", "image_url": "http://x/img.jpg"})
	req := httptest.NewRequest(http.MethodPost, "/v1/designs/generate", bytes.NewReader(body))
	req.Header.Set("X-User-ID", "header-user")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if gen.gotUser != "header-user" {
		t.Errorf("user = %q, want the header identity", gen.gotUser)
	}
}

func TestGenerateDesignErrors(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"malformed json", "{", nil, http.StatusBadRequest, "invalid_json"},
		{"unknown design type", `{"design_type":"castle"}`, nil, http.StatusBadRequest, "invalid_request"},
		{"quota exceeded", `{"design_type":"interior","image_url":"http://x"}`, domain.ErrQuotaExceeded, http.StatusPaymentRequired, "quota_exceeded"},
		{"invalid request", `{"design_type":"interior","image_url":"http://x"}`, domain.ErrInvalidRequest, http.StatusBadRequest, "invalid_request"},
		{"upload failed", `{"design_type":"interior","image_url":"http://x"}`, domain.ErrUploadFailed, http.StatusBadGateway, "upload_failed"},
		{"generation failed", `{"design_type":"interior","image_url":"http://x"}`, domain.ErrGenerationFailed, http.StatusBadGateway, "generation_failed"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gen := &stubGenerationService{err: tc.err}
			router := testRouter(newTestApp(gen, &stubEntitlementService{identity: "u1"}, nil, nil))

			req := httptest.NewRequest(http.MethodPost, "/v1/designs/generate", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tc.wantStatus, rec.Body.String())
			}
			var out struct {
				Code string `json:"code"`
			}
			_ = json.Unmarshal(rec.Body.Bytes(), &out)
			if out.Code != tc.wantCode {
				t.Errorf("code = %q, want %q", out.Code, tc.wantCode)
			}
		})
	}
}

func TestListAndDeleteDesigns(t *testing.T) {
	gallery := &stubGallery{designs: []domain.Design{
		{ID: "d1", UserID: "u1", DesignType: catalog.DesignTypeInterior, ImageURL: "http://x/1.jpg"},
		{ID: "d2", UserID: "u1", DesignType: catalog.DesignTypeGarden, ImageURL: "http://x/2.jpg"},
	}}
	router := testRouter(newTestApp(&stubGenerationService{}, &stubEntitlementService{identity: "u1"}, gallery, nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/designs/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var listed struct {
		Designs []struct {
			DesignID string `json:"design_id"`
		} `json:"designs"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatal(err)
	}
	if len(listed.Designs) != 2 || listed.Designs[0].DesignID != "d1" {
		t.Errorf("listed = %+v", listed)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/designs/d2", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("get status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/designs/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("get missing status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/designs/d1", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("delete status = %d", rec.Code)
	}
	if len(gallery.deleted) != 1 || gallery.deleted[0] != "d1" {
		t.Errorf("deleted = %v", gallery.deleted)
	}
}

func TestGetUsage(t *testing.T) {
	ent := &stubEntitlementService{
		identity: "u1",
		state:    domain.EntitlementState{UserID: "u1", DesignsGenerated: 2},
	}
	router := testRouter(newTestApp(&stubGenerationService{}, ent, nil, nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/usage/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var out struct {
		DesignsGenerated int  `json:"designs_generated"`
		FreeQuota        int  `json:"free_quota"`
		Remaining        int  `json:"remaining"`
		Premium          bool `json:"premium"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.DesignsGenerated != 2 || out.FreeQuota != domain.FreeQuota || out.Remaining != 1 || out.Premium {
		t.Errorf("usage = %+v", out)
	}
}

func TestResetUsage(t *testing.T) {
	ent := &stubEntitlementService{identity: "u1"}
	router := testRouter(newTestApp(&stubGenerationService{}, ent, nil, nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/usage/reset", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(ent.resets) != 1 || ent.resets[0] != "u1" {
		t.Errorf("resets = %v", ent.resets)
	}
}

func TestCatalogEndpoints(t *testing.T) {
	router := testRouter(newTestApp(&stubGenerationService{}, &stubEntitlementService{identity: "u1"}, nil, nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/catalog/design-types", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("design-types status = %d", rec.Code)
	}
	var types struct {
		DesignTypes []struct {
			ID         string `json:"id"`
			NeedsStyle bool   `json:"needs_style"`
		} `json:"design_types"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &types); err != nil {
		t.Fatal(err)
	}
	if len(types.DesignTypes) != 4 {
		t.Errorf("design types = %+v", types.DesignTypes)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/catalog/garden/areas", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("areas status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/catalog/garden/styles", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("styles status = %d", rec.Code)
	}
	var styles struct {
		Styles []any `json:"styles"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &styles)
	if len(styles.Styles) != 0 {
		t.Errorf("garden styles = %v", styles.Styles)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/catalog/castle/areas", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown type status = %d", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	router := testRouter(newTestApp(&stubGenerationService{}, &stubEntitlementService{}, nil, nil))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}
