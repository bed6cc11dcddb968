package payload

import "time"

type CreateRecipientPayload struct {
	Name             string            `json:"name" validate:"required"`
	Email            string            `json:"email,omitempty" validate:"omitempty,email"`
	Course           string            `json:"course,omitempty"`
	ExternalID       string            `json:"externalId,omitempty"`
	CustomAttributes map[string]string `json:"customAttributes,omitempty"`
	IssueDate        *time.Time        `json:"issueDate,omitempty"`
}

type UpdateRecipientPayload struct {
	Name             string            `json:"name" validate:"required"`
	Email            string            `json:"email,omitempty" validate:"omitempty,email"`
	Course           string            `json:"course,omitempty"`
	ExternalID       string            `json:"externalId,omitempty"`
	CustomAttributes map[string]string `json:"customAttributes,omitempty"`
	IssueDate        *time.Time        `json:"issueDate,omitempty"`
}
