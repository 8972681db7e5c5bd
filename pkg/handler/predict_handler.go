package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/yumyai/protfold/logger"
	"github.com/yumyai/protfold/pkg/db"
	"github.com/yumyai/protfold/pkg/model"
	"github.com/yumyai/protfold/pkg/render"
	"go.uber.org/zap"
)

// HomePage serves the sequence input form.
func (appctx *AppContext) HomePage(w http.ResponseWriter, r *http.Request) {

	render.RenderHomePage(w, render.HomePageData{
		DefaultSequence: model.Alphabet,
		MaxLength:       model.MaxSequenceLength,
	})
}

// PredictPage handles the form submit: validate, predict, store the result
// and render the result page. Validation failures go back to the form as
// inline messages; nothing past this boundary sees a bad sequence.
func (appctx *AppContext) PredictPage(w http.ResponseWriter, r *http.Request) {

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	sequence := strings.TrimSpace(r.PostFormValue("sequence"))

	if sequence == "" {
		appctx.renderHomeError(w, sequence, "Please enter an amino acid sequence.")
		return
	}

	pred, err := model.RunPrediction(sequence, appctx.Net)
	if err != nil {
		appctx.renderHomeError(w, sequence, err.Error())
		return
	}

	res := appctx.Results.Add(pred)

	// History is best effort: a failed insert must not lose the result.
	histErr := appctx.History.Insert(r.Context(), db.PredictionRecord{
		ID:               res.ID,
		Sequence:         pred.Sequence,
		Length:           len(pred.Sequence),
		MolecularWeight:  pred.Analysis.MolecularWeight,
		InstabilityIndex: pred.Analysis.InstabilityIndex,
		CreatedAt:        res.CreatedAt,
	})
	if histErr != nil {
		logger.Error("Recording prediction history failed", zap.String("result_id", res.ID), zap.Error(histErr))
	}

	logger.Info("Prediction done",
		zap.String("result_id", res.ID),
		zap.Int("sequence_length", len(pred.Sequence)),
		zap.Int("points", len(pred.Points)))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	render.RenderResultPage(w, render.ResultPageData{
		ResultID: res.ID,
		Sequence: pred.Sequence,
		Points:   pred.Points,
		Analysis: pred.Analysis,
		PDBPath:  "/structure/" + res.ID + ".pdb",
	})
}

func (appctx *AppContext) renderHomeError(w http.ResponseWriter, sequence, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusBadRequest)
	render.RenderHomePage(w, render.HomePageData{
		DefaultSequence: sequence,
		MaxLength:       model.MaxSequenceLength,
		ErrorMessage:    message,
	})
}

// HistoryPage lists recent predictions from the history table.
func (appctx *AppContext) HistoryPage(w http.ResponseWriter, r *http.Request) {

	records, err := appctx.History.Recent(r.Context(), 20)
	if err != nil {
		logger.Error("Loading history failed", zap.Error(err))
		http.Error(w, "Could not load prediction history", http.StatusInternalServerError)
		return
	}

	entries := make([]render.HistoryEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, render.HistoryEntry{
			ID:               rec.ID,
			Sequence:         rec.Sequence,
			Length:           rec.Length,
			MolecularWeight:  rec.MolecularWeight,
			InstabilityIndex: rec.InstabilityIndex,
			CreatedAt:        rec.CreatedAt.Format(time.RFC3339),
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	render.RenderHistoryPage(w, render.HistoryPageData{Entries: entries})
}
