package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Matt-PMCT/todo-me-sub007/internal/model"
	"github.com/Matt-PMCT/todo-me-sub007/internal/parser"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Info(ctx context.Context, args ...any)                  {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Error(ctx context.Context, args ...any)                 {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                 {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any) {}
func (mockLogger) DPanic(ctx context.Context, args ...any)                {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Panic(ctx context.Context, args ...any)                 {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...any) {}

type fakeUseCase struct {
	gotScope model.Scope
	gotInput parser.ParseInput
	result   parser.ParseResult
	err      error
}

func (f *fakeUseCase) Parse(ctx context.Context, sc model.Scope, input parser.ParseInput) (parser.ParseResult, error) {
	f.gotScope = sc
	f.gotInput = input
	return f.result, f.err
}

func newTestRouter(uc parser.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(mockLogger{}, uc, model.DefaultUserSettings())
	RegisterRoutes(r.Group("/api/v1"), h)
	return r
}

func doParse(t *testing.T, r *gin.Engine, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/parse", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestParse_WireShape(t *testing.T) {
	due := time.Date(2026, 1, 24, 0, 0, 0, 0, time.UTC)
	pri := 1
	uc := &fakeUseCase{
		result: parser.ParseResult{
			Title:   "Review proposal",
			DueDate: &due,
			DueTime: "14:00",
			HasTime: true,
			Project: &model.Project{ID: "p1", Name: "work", FullPath: "work", Color: "#ff0000"},
			Tags:    []model.Tag{{ID: "t1", Name: "urgent", Color: "#6b7280"}},
			Priority: &pri,
			Highlights: []parser.Highlight{
				{Kind: parser.HighlightProject, Text: "#work", StartPos: 16, EndPos: 21, Value: "work", Valid: true},
			},
			Warnings: []string{"Multiple dates found, using first."},
		},
	}
	r := newTestRouter(uc)

	w := doParse(t, r, `{"text":"Review proposal #work @urgent tomorrow at 2pm p1"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}

	var envelope struct {
		ErrorCode int             `json:"error_code"`
		Message   string          `json:"message"`
		Data      json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if envelope.ErrorCode != 0 {
		t.Fatalf("error_code = %d, want 0", envelope.ErrorCode)
	}

	var data map[string]any
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if got := data["title"]; got != "Review proposal" {
		t.Errorf("title = %v", got)
	}
	if got := data["due_date"]; got != "2026-01-24" {
		t.Errorf("due_date = %v, want 2026-01-24", got)
	}
	if got := data["due_time"]; got != "14:00" {
		t.Errorf("due_time = %v, want 14:00", got)
	}
	if got := data["has_time"]; got != true {
		t.Errorf("has_time = %v, want true", got)
	}
	if got := data["priority"]; got != float64(1) {
		t.Errorf("priority = %v, want 1", got)
	}
	project, ok := data["project"].(map[string]any)
	if !ok {
		t.Fatalf("project = %v, want object", data["project"])
	}
	if project["fullPath"] != "work" {
		t.Errorf("project.fullPath = %v", project["fullPath"])
	}
	hls, ok := data["highlights"].([]any)
	if !ok || len(hls) != 1 {
		t.Fatalf("highlights = %v, want 1 element", data["highlights"])
	}
	hl := hls[0].(map[string]any)
	if hl["type"] != "project" || hl["startPosition"] != float64(16) || hl["endPosition"] != float64(21) {
		t.Errorf("highlight = %v", hl)
	}
}

func TestParse_EmptySlicesNotNull(t *testing.T) {
	uc := &fakeUseCase{result: parser.ParseResult{Title: "just text"}}
	r := newTestRouter(uc)

	w := doParse(t, r, `{"text":"just text"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	for _, field := range []string{`"tags":[]`, `"highlights":[]`, `"warnings":[]`} {
		if !strings.Contains(body, field) {
			t.Errorf("body missing %s: %s", field, body)
		}
	}
	for _, field := range []string{`"due_date":null`, `"due_time":null`, `"project":null`, `"priority":null`} {
		if !strings.Contains(body, field) {
			t.Errorf("body missing %s: %s", field, body)
		}
	}
}

func TestParse_MissingText(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestRouter(uc)

	w := doParse(t, r, `{}`, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestParse_SettingsOverridesAndScope(t *testing.T) {
	uc := &fakeUseCase{result: parser.ParseResult{Title: "x"}}
	r := newTestRouter(uc)

	body := `{"text":"x","timezone":"Europe/Berlin","date_format":"DMY","start_of_week":1}`
	w := doParse(t, r, body, map[string]string{"X-User-ID": "alice"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if uc.gotScope.UserID != "alice" {
		t.Errorf("scope user = %q, want alice", uc.gotScope.UserID)
	}
	got := uc.gotInput.Settings
	if got.Timezone != "Europe/Berlin" || got.DateFormat != model.DateFormatDMY || got.StartOfWeek != model.StartOfWeekMonday {
		t.Errorf("settings = %+v", got)
	}
}

func TestParse_InvalidSettingsMapsTo400(t *testing.T) {
	uc := &fakeUseCase{err: parser.ErrInvalidSettings}
	r := newTestRouter(uc)

	w := doParse(t, r, `{"text":"x","timezone":"Not/AZone"}`, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body %s", w.Code, w.Body.String())
	}
}

func TestParse_UnknownErrorMapsTo500(t *testing.T) {
	uc := &fakeUseCase{err: context.DeadlineExceeded}
	r := newTestRouter(uc)

	w := doParse(t, r, `{"text":"x"}`, nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if strings.Contains(w.Body.String(), "deadline") {
		t.Errorf("internal error leaked to client: %s", w.Body.String())
	}
}
