package payload

import "github.com/sunthewhat/cert-studio-api/internal/store"

type CreateTemplatePayload struct {
	Name          string        `json:"name" validate:"required"`
	BackgroundURL string        `json:"backgroundUrl" validate:"required"`
	Fields        []store.Field `json:"fields"`
}

type UpdateTemplatePayload struct {
	Name          string        `json:"name" validate:"required"`
	BackgroundURL string        `json:"backgroundUrl" validate:"required"`
	Fields        []store.Field `json:"fields"`
}
