package payload

type CreateCollectionPayload struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
	TemplateID  string `json:"templateId,omitempty"`
}

type UpdateCollectionPayload struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
	TemplateID  string `json:"templateId,omitempty"`
}

type CollectionMembershipPayload struct {
	CertificateCodes []string `json:"certificateCodes" validate:"required,min=1"`
}
