package handler

// DI for all handlers and models alike.

import (
	"github.com/yumyai/protfold/pkg/db"
	"github.com/yumyai/protfold/pkg/nnet"
)

type AppContext struct {
	History *db.HistoryDB
	Results *ResultStore
	Net     nnet.Config
}
