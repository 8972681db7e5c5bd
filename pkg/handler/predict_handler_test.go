package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/yumyai/protfold/logger"
	mydb "github.com/yumyai/protfold/pkg/db"
	"github.com/yumyai/protfold/pkg/nnet"

	_ "modernc.org/sqlite"
)

func TestMain(m *testing.M) {
	logger.InitTestLogger()
	os.Exit(m.Run())
}

// newTestContext wires an in-memory history db and a tiny predictor so
// handler tests stay fast.
func newTestContext(t *testing.T) *AppContext {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	history, err := mydb.NewHistoryDB(conn)
	if err != nil {
		t.Fatalf("init history: %v", err)
	}
	t.Cleanup(func() { history.Close() })

	return &AppContext{
		History: history,
		Results: NewResultStore(8),
		Net:     nnet.Config{MaxLen: 12, VocabSize: 21, NumPoints: 3, Seed: 1},
	}
}

func postPredict(appctx *AppContext, sequence string) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Set("sequence", sequence)

	r := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	appctx.PredictPage(w, r)
	return w
}

func TestPredictPageValidation(t *testing.T) {

	appctx := newTestContext(t)

	tests := []struct {
		name        string
		sequence    string
		wantMessage string
	}{
		{name: "Empty", sequence: "", wantMessage: "Please enter an amino acid sequence"},
		{name: "TooLong", sequence: strings.Repeat("G", 151), wantMessage: "sequence too long"},
		{name: "InvalidResidue", sequence: "ACDB", wantMessage: "invalid residue"},
		{name: "LowercaseRejected", sequence: "acdef", wantMessage: "invalid residue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postPredict(appctx, tt.sequence)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
			if !strings.Contains(w.Body.String(), tt.wantMessage) {
				t.Errorf("expected inline message containing %q, got body:\n%s", tt.wantMessage, w.Body.String())
			}
			if appctx.Results.Len() != 0 {
				t.Error("rejected request must not store a result")
			}
		})
	}
}

func TestPredictPageHappyPath(t *testing.T) {

	appctx := newTestContext(t)

	w := postPredict(appctx, "ACDEFGHIKL")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := w.Body.String()
	if !strings.Contains(body, "ACDEFGHIKL") {
		t.Error("result page should echo the sequence")
	}
	if !strings.Contains(body, "Molecular Weight") {
		t.Error("result page should show the statistics block")
	}

	if appctx.Results.Len() != 1 {
		t.Fatalf("expected 1 stored result, got %d", appctx.Results.Len())
	}

	// History row is written for the same result id.
	records, err := appctx.History.Recent(httptest.NewRequest(http.MethodGet, "/", nil).Context(), 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 1 || records[0].Sequence != "ACDEFGHIKL" {
		t.Errorf("expected one history row for the sequence, got %+v", records)
	}
}

func TestStructurePDBRoundTrip(t *testing.T) {

	appctx := newTestContext(t)

	postPredict(appctx, "ACD")

	records, err := appctx.History.Recent(httptest.NewRequest(http.MethodGet, "/", nil).Context(), 1)
	if err != nil || len(records) != 1 {
		t.Fatalf("expected one history row, got %v (%v)", records, err)
	}

	r := httptest.NewRequest(http.MethodGet, "/structure/"+records[0].ID+".pdb", nil)
	r.SetPathValue("result_id", records[0].ID+".pdb")

	w := httptest.NewRecorder()
	appctx.StructurePDB(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	pdb := w.Body.String()
	if !strings.HasPrefix(pdb, "MODEL\n") || !strings.HasSuffix(pdb, "ENDMDL\n") {
		t.Errorf("PDB block framing wrong:\n%s", pdb)
	}
	if got := strings.Count(pdb, "\nATOM  "); got != appctx.Net.NumPoints {
		t.Errorf("expected %d ATOM lines, got %d", appctx.Net.NumPoints, got)
	}
}

func TestStructurePDBNotFound(t *testing.T) {

	appctx := newTestContext(t)

	r := httptest.NewRequest(http.MethodGet, "/structure/no-such-id.pdb", nil)
	r.SetPathValue("result_id", "no-such-id.pdb")

	w := httptest.NewRecorder()
	appctx.StructurePDB(w, r)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestPredictAPI(t *testing.T) {

	appctx := newTestContext(t)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/predict?sequence=ACD", nil)
	w := httptest.NewRecorder()
	appctx.PredictAPI(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp PredictResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.Status != "ok" || resp.Payload == nil {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(resp.Payload.Points) != appctx.Net.NumPoints {
		t.Errorf("expected %d points, got %d", appctx.Net.NumPoints, len(resp.Payload.Points))
	}
	if resp.Payload.Analysis == nil || resp.Payload.Analysis.Length != 3 {
		t.Errorf("analysis missing or wrong: %+v", resp.Payload.Analysis)
	}
}

func TestPredictAPIRejectsInvalid(t *testing.T) {

	appctx := newTestContext(t)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/predict?sequence=ACD1", nil)
	w := httptest.NewRecorder()
	appctx.PredictAPI(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp PredictResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "error" || resp.Error == "" {
		t.Errorf("expected error response, got %+v", resp)
	}
}

func TestHealthCheck(t *testing.T) {

	r := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	HealthCheck(w, r)

	var resp HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Health != "ok" {
		t.Errorf("expected ok, got %+v", resp)
	}
}
