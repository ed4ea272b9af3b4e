// file: internals/features/finance/fees/dto/fee_category_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/finance/fees/model"
)

type FeeCategoryCreateRequest struct {
	FeeCategoryName        string  `json:"fee_category_name" validate:"required,max=80"`
	FeeCategoryDescription *string `json:"fee_category_description,omitempty" validate:"omitempty,max=500"`
}

type FeeCategoryUpdateRequest struct {
	FeeCategoryName        *string `json:"fee_category_name,omitempty" validate:"omitempty,max=80"`
	FeeCategoryDescription *string `json:"fee_category_description,omitempty" validate:"omitempty,max=500"`
}

type FeeCategoryResponse struct {
	FeeCategoryID          uuid.UUID `json:"fee_category_id"`
	FeeCategoryName        string    `json:"fee_category_name"`
	FeeCategoryDescription *string   `json:"fee_category_description,omitempty"`
	FeeCategoryCreatedAt   time.Time `json:"fee_category_created_at"`
}

func ToFeeCategoryResponse(m model.FeeCategory) FeeCategoryResponse {
	return FeeCategoryResponse{
		FeeCategoryID:          m.FeeCategoryID,
		FeeCategoryName:        m.FeeCategoryName,
		FeeCategoryDescription: m.FeeCategoryDescription,
		FeeCategoryCreatedAt:   m.FeeCategoryCreatedAt,
	}
}
