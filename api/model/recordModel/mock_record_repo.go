package recordModel

import (
	"github.com/sunthewhat/cert-studio-api/type/shared/model"
)

// IRecordRepository defines the interface for certificate record operations
type IRecordRepository interface {
	Create(record *model.CertificateRecord) error
	SetPDFURL(code string, url string) error
	GetByCode(code string) (*model.CertificateRecord, error)
	Delete(code string) error
}

// Ensure Repository implements IRecordRepository
var _ IRecordRepository = (*Repository)(nil)

// MockRecordRepository is a mock implementation for testing
type MockRecordRepository struct {
	CreateFunc    func(record *model.CertificateRecord) error
	SetPDFURLFunc func(code string, url string) error
	GetByCodeFunc func(code string) (*model.CertificateRecord, error)
	DeleteFunc    func(code string) error
}

// Ensure MockRecordRepository implements IRecordRepository
var _ IRecordRepository = (*MockRecordRepository)(nil)

func NewMockRecordRepository() *MockRecordRepository {
	return &MockRecordRepository{}
}

func (m *MockRecordRepository) Create(record *model.CertificateRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(record)
	}
	return nil
}

func (m *MockRecordRepository) SetPDFURL(code string, url string) error {
	if m.SetPDFURLFunc != nil {
		return m.SetPDFURLFunc(code, url)
	}
	return nil
}

func (m *MockRecordRepository) GetByCode(code string) (*model.CertificateRecord, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(code)
	}
	return nil, nil
}

func (m *MockRecordRepository) Delete(code string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(code)
	}
	return nil
}
