package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/yumyai/protfold/pkg/model"
	"github.com/yumyai/protfold/pkg/nnet"
	"github.com/yumyai/protfold/pkg/protparam"
)

// Response struct to hold the payload and status
type PredictResponse struct {
	Status  string          `json:"status"`
	Payload *PredictPayload `json:"payload,omitempty"`
	Error   string          `json:"error,omitempty"`
}

type PredictPayload struct {
	ResultID string              `json:"result_id"`
	Points   []nnet.Point        `json:"points"`
	PDB      string              `json:"pdb"`
	Analysis *protparam.Analysis `json:"analysis"`
}

// PredictAPI runs the same pipeline as the form handler but answers JSON,
// for callers that want coordinates and statistics in one request.
func (appctx *AppContext) PredictAPI(w http.ResponseWriter, r *http.Request) {

	sequence := strings.TrimSpace(r.URL.Query().Get("sequence"))

	if sequence == "" {
		writePredictError(w, "sequence query parameter is required")
		return
	}

	pred, err := model.RunPrediction(sequence, appctx.Net)
	if err != nil {
		writePredictError(w, err.Error())
		return
	}

	res := appctx.Results.Add(pred)

	response := PredictResponse{
		Status: "ok",
		Payload: &PredictPayload{
			ResultID: res.ID,
			Points:   pred.Points,
			PDB:      pred.PDB,
			Analysis: pred.Analysis,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func writePredictError(w http.ResponseWriter, message string) {

	response := PredictResponse{
		Status: "error",
		Error:  message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(400)
	json.NewEncoder(w).Encode(response)
}
