package main

import (
	"database/sql"
	"net/http"
	"os"
	"path"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/yumyai/protfold/internal/util"
	"github.com/yumyai/protfold/logger"
	mydb "github.com/yumyai/protfold/pkg/db"
	"github.com/yumyai/protfold/pkg/handler"
	"github.com/yumyai/protfold/pkg/middle"
	"github.com/yumyai/protfold/pkg/nnet"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "modernc.org/sqlite"
)

// Most recent results kept around for the viewer to fetch.
const resultStoreCapacity = 256

func main() {

	// Establish logger
	VERSION := "0.1.0"
	LOG_LEVEL := zapcore.InfoLevel

	if err := logger.InitLogger(LOG_LEVEL); err != nil {
		panic(err)
	}

	// Try load env
	dotenvErr := godotenv.Load()

	if dotenvErr != nil {
		logger.Warn("No .env found, using local environment")
	}

	defer logger.Sync() // Make sure that the buffered is flushed.

	protfold_data := util.GetenvDefault("PROTFOLD_DATA", "./data")
	listen_addr := util.GetenvDefault("PROTFOLD_ADDR", "0.0.0.0:8080")

	if !util.DirExists(protfold_data) {
		if err := os.MkdirAll(protfold_data, 0o755); err != nil {
			logger.Fatal("Cannot create data directory", zap.String("dir", protfold_data), zap.Error(err))
		}
	}

	net_cfg := loadNetConfig()

	// Connect to history db
	history_sqlite := path.Join(protfold_data, "history.db")
	conn, err := sql.Open("sqlite", history_sqlite)
	if err != nil {
		logger.Fatal("Cannot open history database", zap.String("DB_LOC", history_sqlite), zap.Error(err))
	}

	history, err := mydb.NewHistoryDB(conn)
	if err != nil {
		logger.Fatal("Cannot prepare history schema", zap.Error(err))
	}
	defer history.Close()

	appctx := &handler.AppContext{
		History: history,
		Results: handler.NewResultStore(resultStoreCapacity),
		Net:     net_cfg,
	}

	logger.Info("Start:", zap.String("Version", VERSION))
	logger.Info("History database on", zap.String("DB_LOC", history_sqlite))
	logger.Info("Predictor shape",
		zap.Int("max_len", net_cfg.MaxLen),
		zap.Int("points", net_cfg.NumPoints),
		zap.Int64("seed", net_cfg.Seed))

	mux := NewRouter(appctx)

	// Apply middleware
	m := middle.LoggingMiddleware(middle.CreateMiddlewareLogger(zapcore.DebugLevel))
	wrapped := middle.RequestIDMiddleware()(m(mux))

	logger.Info("Server starting", zap.String("addr", listen_addr))
	httpErr := http.ListenAndServe(listen_addr, wrapped)
	if httpErr != nil {
		logger.Error("Error starting server:", zap.String("error message", httpErr.Error()))
	}
}

// loadNetConfig starts from the default shape and lets the environment
// override the seed and the output point count.
func loadNetConfig() nnet.Config {

	cfg := nnet.DefaultConfig()

	if raw := os.Getenv("PROTFOLD_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			logger.Warn("Ignoring invalid PROTFOLD_SEED", zap.String("value", raw))
		} else {
			cfg.Seed = seed
		}
	}

	if raw := os.Getenv("PROTFOLD_POINTS"); raw != "" {
		points, err := strconv.Atoi(raw)
		if err != nil || points < 1 {
			logger.Warn("Ignoring invalid PROTFOLD_POINTS", zap.String("value", raw))
		} else {
			cfg.NumPoints = points
		}
	}

	return cfg
}

// Move to router.go in the next iteration
func NewRouter(appctx *handler.AppContext) *http.ServeMux {
	mux := http.NewServeMux()

	// Error route
	mux.HandleFunc("GET /favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	})

	// Main routes
	mux.HandleFunc("GET /", appctx.HomePage)
	mux.HandleFunc("POST /predict", appctx.PredictPage)
	mux.HandleFunc("GET /structure/{result_id}", appctx.StructurePDB)
	mux.HandleFunc("GET /history", appctx.HistoryPage)

	// API routes
	mux.HandleFunc("GET /api/v1/health", handler.HealthCheck)
	mux.HandleFunc("GET /api/v1/predict", appctx.PredictAPI)

	return mux
}
