package collection_controller

import (
	"github.com/sunthewhat/cert-studio-api/internal/store"
)

// Controller handles collection-related HTTP requests
type Controller struct {
	store *store.Store
}

func NewController(st *store.Store) *Controller {
	return &Controller{store: st}
}
