package recipient_controller

import (
	"github.com/sunthewhat/cert-studio-api/internal/store"
)

// Controller handles recipient-related HTTP requests
type Controller struct {
	store *store.Store
	// mirrorAttrs pushes custom attribute documents to mongo; best-effort
	mirrorAttrs bool
}

func NewController(st *store.Store, mirrorAttrs bool) *Controller {
	return &Controller{store: st, mirrorAttrs: mirrorAttrs}
}
