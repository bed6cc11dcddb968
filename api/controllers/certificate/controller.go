package certificate_controller

import (
	"github.com/sunthewhat/cert-studio-api/api/model/recordModel"
	"github.com/sunthewhat/cert-studio-api/internal/issuer"
	"github.com/sunthewhat/cert-studio-api/internal/storage"
	"github.com/sunthewhat/cert-studio-api/internal/store"
)

// Controller handles certificate-related HTTP requests
type Controller struct {
	store   *store.Store
	issuer  *issuer.Issuer
	records recordModel.IRecordRepository
	storage storage.Client
}

func NewController(st *store.Store, iss *issuer.Issuer, records recordModel.IRecordRepository, storageClient storage.Client) *Controller {
	return &Controller{
		store:   st,
		issuer:  iss,
		records: records,
		storage: storageClient,
	}
}
