package http

import (
    "bytes"
    "context"
    "encoding/json"
    "mime/multipart"
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"

    "github.com/rs/zerolog"

    "github.com/dnyanesh57/NC-Dashboard/internal/config"
    "github.com/dnyanesh57/NC-Dashboard/internal/services"
)

func testRouter(t *testing.T) (*services.Service, http.Handler) {
    t.Helper()
    svc := services.New(config.Config{AppEnv: "test", MaxUploadMB: 8}, zerolog.Nop(), nil, nil)
    return svc, NewRouter(config.Config{AppEnv: "test", MaxUploadMB: 8}, zerolog.Nop(), svc)
}

func loadSample(t *testing.T, svc *services.Service) {
    t.Helper()
    csv := "Reference ID,Project Name,Current Status,Raised On Date,Closed On Date\n" +
        "NC-1,Alpha,Closed,1/1/2024,2/1/2024\n" +
        "NC-2,Beta,Open,3/1/2024,\n"
    if _, err := svc.LoadFromReader(context.Background(), strings.NewReader(csv), "test"); err != nil {
        t.Fatalf("seed: %v", err)
    }
}

func TestSummaryBeforeLoadIs503(t *testing.T) {
    _, r := testRouter(t)
    w := httptest.NewRecorder()
    r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/register/summary", nil))
    if w.Code != http.StatusServiceUnavailable {
        t.Fatalf("status = %d", w.Code)
    }
}

func TestSummaryEndpoint(t *testing.T) {
    svc, r := testRouter(t)
    loadSample(t, svc)
    w := httptest.NewRecorder()
    r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/register/summary", nil))
    if w.Code != http.StatusOK { t.Fatalf("status = %d: %s", w.Code, w.Body.String()) }
    var resp struct {
        Summary struct {
            Total    int `json:"total"`
            Resolved int `json:"resolved"`
        } `json:"summary"`
    }
    if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil { t.Fatalf("json: %v", err) }
    if resp.Summary.Total != 2 || resp.Summary.Resolved != 1 {
        t.Fatalf("summary = %+v", resp.Summary)
    }
}

func TestGroupsUnknownColumnIs400(t *testing.T) {
    svc, r := testRouter(t)
    loadSample(t, svc)
    w := httptest.NewRecorder()
    r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/register/groups?by=Nope", nil))
    if w.Code != http.StatusBadRequest { t.Fatalf("status = %d", w.Code) }
}

func TestChangedBadWindowIs400(t *testing.T) {
    svc, r := testRouter(t)
    loadSample(t, svc)
    w := httptest.NewRecorder()
    r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/register/changed?window=fortnight", nil))
    if w.Code != http.StatusBadRequest { t.Fatalf("status = %d", w.Code) }
}

func TestUploadEndpoint(t *testing.T) {
    _, r := testRouter(t)

    var buf bytes.Buffer
    mw := multipart.NewWriter(&buf)
    fw, err := mw.CreateFormFile("file", "register.csv")
    if err != nil { t.Fatalf("form: %v", err) }
    fw.Write([]byte("Reference ID,Raised On Date\nNC-1,1/1/2024\n"))
    mw.Close()

    req := httptest.NewRequest(http.MethodPost, "/register/upload", &buf)
    req.Header.Set("Content-Type", mw.FormDataContentType())
    w := httptest.NewRecorder()
    r.ServeHTTP(w, req)
    if w.Code != http.StatusOK { t.Fatalf("status = %d: %s", w.Code, w.Body.String()) }

    // The upload is immediately queryable.
    w2 := httptest.NewRecorder()
    r.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/register/export.csv", nil))
    if w2.Code != http.StatusOK { t.Fatalf("export status = %d", w2.Code) }
    if !strings.Contains(w2.Body.String(), "NC-1") { t.Fatalf("export missing row") }
    if ct := w2.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
        t.Fatalf("content type = %q", ct)
    }
}

func TestUploadWithoutFileIs400(t *testing.T) {
    _, r := testRouter(t)
    w := httptest.NewRecorder()
    r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/register/upload", nil))
    if w.Code != http.StatusBadRequest { t.Fatalf("status = %d", w.Code) }
}

func TestRefreshQueues(t *testing.T) {
    _, r := testRouter(t)
    w := httptest.NewRecorder()
    r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/refresh", nil))
    if w.Code != http.StatusAccepted { t.Fatalf("status = %d", w.Code) }
}
