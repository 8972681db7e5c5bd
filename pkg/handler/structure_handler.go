package handler

import (
	"fmt"
	"net/http"
	"strings"
)

// StructurePDB serves the stored PDB block for one result, consumed by the
// embedded 3D viewer and offered as a download. The route carries the id as
// {result_id}.pdb; unknown or evicted ids are a plain 404.
func (appctx *AppContext) StructurePDB(w http.ResponseWriter, r *http.Request) {

	result_id := strings.TrimSuffix(r.PathValue("result_id"), ".pdb")

	res, ok := appctx.Results.Get(result_id)
	if !ok {
		http.Error(w, "Structure not found (results expire after a while)", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "chemical/x-pdb")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", result_id+".pdb"))
	fmt.Fprint(w, res.Prediction.PDB)
}
