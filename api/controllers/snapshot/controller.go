package snapshot_controller

import (
	"github.com/sunthewhat/cert-studio-api/internal/store"
)

// Controller exposes whole-state export and import for backups and
// environment migration
type Controller struct {
	store *store.Store
}

func NewController(st *store.Store) *Controller {
	return &Controller{store: st}
}
