package verify_controller

import (
	"github.com/sunthewhat/cert-studio-api/api/model/recordModel"
	"github.com/sunthewhat/cert-studio-api/internal/store"
)

// Controller answers public verification lookups by certificate code
type Controller struct {
	store   *store.Store
	records recordModel.IRecordRepository
}

func NewController(st *store.Store, records recordModel.IRecordRepository) *Controller {
	return &Controller{store: st, records: records}
}
