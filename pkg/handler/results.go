package handler

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yumyai/protfold/pkg/model"
)

// PredictionResult is one stored prediction, addressable by ID so the 3D
// viewer can fetch the PDB block in a second request.
type PredictionResult struct {
	ID         string
	Prediction *model.Prediction
	CreatedAt  time.Time
}

// ResultStore keeps recent prediction results in memory, indexed by result
// ID. It is bounded: once capacity is reached the oldest result is evicted,
// so viewer links eventually expire instead of the map growing forever.
type ResultStore struct {
	mu       sync.RWMutex
	results  map[string]*PredictionResult
	order    []string
	capacity int
}

// NewResultStore constructs a store holding at most capacity results.
func NewResultStore(capacity int) *ResultStore {
	if capacity < 1 {
		capacity = 1
	}
	return &ResultStore{
		results:  make(map[string]*PredictionResult),
		capacity: capacity,
	}
}

// Add registers pred under a fresh ID and returns the stored result.
func (s *ResultStore) Add(pred *model.Prediction) *PredictionResult {

	res := &PredictionResult{
		ID:         uuid.New().String(),
		Prediction: pred,
		CreatedAt:  time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for len(s.order) >= s.capacity {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.results, oldest)
	}

	s.results[res.ID] = res
	s.order = append(s.order, res.ID)

	return res
}

// Get fetches a result by ID.
func (s *ResultStore) Get(id string) (*PredictionResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res, ok := s.results[id]
	return res, ok
}

// Len reports how many results are currently held.
func (s *ResultStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}
