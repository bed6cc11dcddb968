package file_controller

import (
	"github.com/sunthewhat/cert-studio-api/internal/storage"
)

// Controller serves and manages uploaded certificate PDFs
type Controller struct {
	storage storage.Client
}

func NewController(st storage.Client) *Controller {
	return &Controller{storage: st}
}
