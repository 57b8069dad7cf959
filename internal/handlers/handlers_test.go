package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/adityawrm/mindbloom-backend/internal/gemini"
	"github.com/adityawrm/mindbloom-backend/internal/models"
	"github.com/adityawrm/mindbloom-backend/internal/ryff"
	"github.com/adityawrm/mindbloom-backend/internal/services"
	"github.com/adityawrm/mindbloom-backend/internal/settings"
	"github.com/adityawrm/mindbloom-backend/internal/store"
)

type fakeKV struct {
	mu   sync.Mutex
	data map[string]string
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string]string)}
}

func (f *fakeKV) Get(ctx context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	val, ok := f.data[key]
	return val, ok, nil
}

func (f *fakeKV) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
	return nil
}

func (f *fakeKV) Del(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
	return nil
}

// fakeAI satisfies every AI collaborator the handlers reach.
type fakeAI struct{}

func (fakeAI) AnalyzeEntry(ctx context.Context, text string) gemini.Analysis {
	return gemini.Analysis{
		SentimentScore: 65,
		SentimentLabel: models.LabelPositive,
		Emotions:       models.Emotions{Joy: 70},
		Insights:       "an insight",
	}
}

func (fakeAI) DimensionAdvice(ctx context.Context, dimension string, score int) string {
	return "advice for " + dimension
}

func (fakeAI) ReportSummary(ctx context.Context, scores map[string]int, feedbacks map[string]string) string {
	return "the summary"
}

func (fakeAI) JournalInsights(ctx context.Context, entries []models.JournalEntry) string {
	return fmt.Sprintf("insight over %d entries", len(entries))
}

func newTestRouter(t *testing.T) (*chi.Mux, *settings.Manager) {
	t.Helper()
	log := zap.NewNop()
	kv := newFakeKV()
	ai := fakeAI{}

	entryStore := store.NewEntryStore(kv, log)
	reportStore := store.NewReportStore(kv, log)
	settingsMgr := settings.NewManager(kv, nil, "env-key", log)

	entrySvc := services.NewEntryService(entryStore, ai, log)
	reportSvc := services.NewReportService(reportStore, ai, log)
	statsSvc := services.NewStatsService(entryStore, reportStore)

	journal := NewJournalHandler(entrySvc, ai, log)
	reports := NewReportHandler(reportSvc, settingsMgr, log)
	sh := NewSettingsHandler(settingsMgr, log)
	stats := NewStatsHandler(statsSvc)
	events := NewEventsHandler(settingsMgr, log)

	r := chi.NewRouter()
	r.Get("/api/journals", journal.List)
	r.Post("/api/journals", journal.Create)
	r.Get("/api/journals/insights", journal.Insights)
	r.Get("/api/journals/{id}", journal.Get)
	r.Put("/api/journals/{id}", journal.Update)
	r.Delete("/api/journals/{id}", journal.Delete)
	r.Get("/api/ryff/questions", reports.Questions)
	r.Get("/api/reports", reports.List)
	r.Post("/api/reports", reports.Submit)
	r.Get("/api/reports/latest", reports.Latest)
	r.Get("/api/reports/{id}", reports.Get)
	r.Delete("/api/reports/{id}", reports.Delete)
	r.Get("/api/reports/{id}/advice", reports.Advice)
	r.Post("/api/reports/{id}/feedback", reports.Feedback)
	r.Get("/api/settings", sh.Get)
	r.Put("/api/settings", sh.Update)
	r.Get("/api/stats", stats.Overview)
	r.Get("/ws/events", events.Serve)
	return r, settingsMgr
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestJournalCRUD(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/journals", map[string]string{"content": "a lovely walk"})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode(t, rec)
	entry := created["entry"].(map[string]any)
	id := entry["id"].(string)
	assert.Equal(t, float64(65), entry["sentiment_score"])
	assert.Equal(t, "an insight", entry["ai_insights"])

	rec = doJSON(t, r, http.MethodGet, "/api/journals", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decode(t, rec)["total"])

	rec = doJSON(t, r, http.MethodPut, "/api/journals/"+id, map[string]string{"content": "an even lovelier walk"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/journals/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode(t, rec)["entry"].(map[string]any)
	assert.Equal(t, "an even lovelier walk", got["content"])

	rec = doJSON(t, r, http.MethodDelete, "/api/journals/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/journals/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestJournalCreateValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/journals", map[string]string{"content": "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, decode(t, rec)["success"])

	req := httptest.NewRequest(http.MethodPost, "/api/journals", strings.NewReader("{broken"))
	rec2 := httptest.NewRecorder()
	r.ServeHTTP(rec2, req)
	assert.Equal(t, http.StatusBadRequest, rec2.Code)
}

func TestJournalInsightsEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	doJSON(t, r, http.MethodPost, "/api/journals", map[string]string{"content": "one"})
	doJSON(t, r, http.MethodPost, "/api/journals", map[string]string{"content": "two"})

	rec := doJSON(t, r, http.MethodGet, "/api/journals/insights", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "insight over 2 entries", decode(t, rec)["insights"])
}

func TestQuestionsFollowLanguageSetting(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/ryff/questions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	questions := decode(t, rec)["questions"].([]any)
	require.Len(t, questions, 42)
	englishFirst := questions[0].(map[string]any)["text"].(string)

	rec = doJSON(t, r, http.MethodPut, "/api/settings", map[string]string{"language": "id"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/ryff/questions", nil)
	indonesianFirst := decode(t, rec)["questions"].([]any)[0].(map[string]any)["text"].(string)
	assert.NotEqual(t, englishFirst, indonesianFirst)
}

func fullAnswerBody() map[string]any {
	answers := make(map[string]int, 42)
	for id := 1; id <= 42; id++ {
		answers[fmt.Sprintf("%d", id)] = 4
	}
	return map[string]any{"answers": answers}
}

func TestReportLifecycle(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/reports", fullAnswerBody())
	require.Equal(t, http.StatusCreated, rec.Code)
	report := decode(t, rec)["report"].(map[string]any)
	id := report["id"].(string)
	scores := report["scores"].(map[string]any)
	assert.Equal(t, float64(50), scores["autonomy"])

	rec = doJSON(t, r, http.MethodGet, "/api/reports/latest", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, decode(t, rec)["report"].(map[string]any)["id"])

	rec = doJSON(t, r, http.MethodGet, "/api/reports/"+id+"/advice?dimension=autonomy", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "advice for autonomy", decode(t, rec)["advice"])

	rec = doJSON(t, r, http.MethodGet, "/api/reports/"+id+"/advice?dimension=charisma", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Feedback for every dimension; summary appears with the last one.
	dims := ryff.Dimensions()
	for i, dim := range dims {
		rec = doJSON(t, r, http.MethodPost, "/api/reports/"+id+"/feedback",
			map[string]string{"dimension": dim, "feedback": "thoughts"})
		require.Equal(t, http.StatusOK, rec.Code)
		summary := decode(t, rec)["report"].(map[string]any)["summary"]
		if i < len(dims)-1 {
			assert.Nil(t, summary)
		} else {
			assert.Equal(t, "the summary", summary)
		}
	}

	rec = doJSON(t, r, http.MethodDelete, "/api/reports/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, r, http.MethodGet, "/api/reports/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitRejectsBadAnswerKeys(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/reports",
		map[string]any{"answers": map[string]int{"not-a-number": 4}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/reports",
		map[string]any{"answers": map[string]int{"43": 4}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFeedbackValidation(t *testing.T) {
	r, _ := newTestRouter(t)
	rec := doJSON(t, r, http.MethodPost, "/api/reports", fullAnswerBody())
	id := decode(t, rec)["report"].(map[string]any)["id"].(string)

	rec = doJSON(t, r, http.MethodPost, "/api/reports/"+id+"/feedback",
		map[string]string{"dimension": "autonomy", "feedback": "  "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/reports/ghost/feedback",
		map[string]string{"dimension": "autonomy", "feedback": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSettingsEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode(t, rec)
	assert.Equal(t, "en", got["language"])
	assert.Equal(t, "auto", got["theme"])
	assert.Equal(t, true, got["api_key_set"])
	assert.Equal(t, true, got["api_key_default"])

	rec = doJSON(t, r, http.MethodPut, "/api/settings",
		map[string]string{"theme": "dark", "api_key": "user-key"})
	require.Equal(t, http.StatusOK, rec.Code)
	got = decode(t, rec)
	assert.Equal(t, "dark", got["theme"])
	assert.Equal(t, false, got["api_key_default"])

	rec = doJSON(t, r, http.MethodPut, "/api/settings", map[string]string{"theme": "sepia"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatsEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	doJSON(t, r, http.MethodPost, "/api/journals", map[string]string{"content": "today"})

	rec := doJSON(t, r, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode(t, rec)["stats"].(map[string]any)
	assert.Equal(t, float64(1), stats["entry_count"])
	assert.Equal(t, float64(1), stats["current_streak"])
	assert.Equal(t, float64(65), stats["latest_sentiment"])
}

func TestEventsStreamSettingsChanges(t *testing.T) {
	r, settingsMgr := newTestRouter(t)
	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/events"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()
	defer resp.Body.Close()

	// Give the handler goroutine time to register its subscription.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, settingsMgr.SetTheme(context.Background(), settings.ThemeDark))

	var evt struct {
		Type    string `json:"type"`
		Setting string `json:"setting"`
		Value   string `json:"value"`
	}
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&evt))
	assert.Equal(t, "settings_changed", evt.Type)
	assert.Equal(t, "theme", evt.Setting)
	assert.Equal(t, "dark", evt.Value)
}

func TestEventsRejectsPlainHTTPRequest(t *testing.T) {
	r, _ := newTestRouter(t)

	// A request without the upgrade handshake is refused, not served.
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws/events", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
