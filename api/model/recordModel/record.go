package recordModel

import (
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/sunthewhat/cert-studio-api/common"
	"github.com/sunthewhat/cert-studio-api/type/shared/model"
)

// Repository persists certificate rows through the shared gorm handle.
type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) Create(record *model.CertificateRecord) error {
	if createErr := common.Gorm.Create(record).Error; createErr != nil {
		slog.Error("Record Create", "error", createErr, "code", record.CertificateCode)
		return createErr
	}
	return nil
}

func (r *Repository) SetPDFURL(code string, url string) error {
	updateErr := common.Gorm.Model(&model.CertificateRecord{}).
		Where("certificate_code = ?", code).
		Update("pdf_url", url).Error
	if updateErr != nil {
		slog.Error("Record SetPDFURL", "error", updateErr, "code", code)
		return updateErr
	}
	return nil
}

func (r *Repository) GetByCode(code string) (*model.CertificateRecord, error) {
	record := new(model.CertificateRecord)
	queryErr := common.Gorm.Where("certificate_code = ?", code).First(record).Error

	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("Record GetByCode", "error", queryErr, "code", code)
		return nil, queryErr
	}

	return record, nil
}

func (r *Repository) Delete(code string) error {
	deleteErr := common.Gorm.Where("certificate_code = ?", code).
		Delete(&model.CertificateRecord{}).Error
	if deleteErr != nil {
		slog.Error("Record Delete", "error", deleteErr, "code", code)
		return deleteErr
	}
	return nil
}
