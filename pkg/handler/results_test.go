package handler

import (
	"testing"

	"github.com/yumyai/protfold/pkg/model"
)

func storedPrediction(seq string) *model.Prediction {
	return &model.Prediction{Sequence: seq, PDB: "MODEL\nENDMDL\n"}
}

func TestResultStoreAddAndGet(t *testing.T) {

	store := NewResultStore(4)

	res := store.Add(storedPrediction("ACD"))
	if res.ID == "" {
		t.Fatal("expected a generated result id")
	}

	got, ok := store.Get(res.ID)
	if !ok {
		t.Fatal("stored result not found")
	}
	if got.Prediction.Sequence != "ACD" {
		t.Errorf("wrong result returned: %+v", got.Prediction)
	}

	if _, ok := store.Get("missing"); ok {
		t.Error("lookup of unknown id must fail")
	}
}

func TestResultStoreEvictsOldest(t *testing.T) {

	store := NewResultStore(2)

	first := store.Add(storedPrediction("A"))
	second := store.Add(storedPrediction("C"))
	third := store.Add(storedPrediction("D"))

	if _, ok := store.Get(first.ID); ok {
		t.Error("oldest result should have been evicted")
	}
	if _, ok := store.Get(second.ID); !ok {
		t.Error("second result should survive")
	}
	if _, ok := store.Get(third.ID); !ok {
		t.Error("third result should survive")
	}
	if store.Len() != 2 {
		t.Errorf("expected capacity-bounded store of 2, got %d", store.Len())
	}
}

func TestResultStoreIDsAreUnique(t *testing.T) {

	store := NewResultStore(8)

	seen := make(map[string]bool)
	for i := 0; i < 8; i++ {
		res := store.Add(storedPrediction("G"))
		if seen[res.ID] {
			t.Fatalf("duplicate result id %s", res.ID)
		}
		seen[res.ID] = true
	}
}
