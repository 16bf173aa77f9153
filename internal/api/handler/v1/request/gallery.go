package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateGalleryItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
}

func (req *CreateGalleryItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.ImageURL, validation.Required),
	)
}
