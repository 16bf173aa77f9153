package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Domain      string `json:"domain"`
	Status      string `json:"status"`
	ImageURL    string `json:"image_url"`
}

func (req *CreateProjectRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.Description, validation.Required),
		validation.Field(&req.Domain, validation.Required),
		validation.Field(&req.Status, validation.In("upcoming", "ongoing", "completed")),
	)
}

type UpdateProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Domain      string `json:"domain"`
	Status      string `json:"status"`
	ImageURL    string `json:"image_url"`
}

func (req *UpdateProjectRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.Description, validation.Required),
		validation.Field(&req.Domain, validation.Required),
		validation.Field(&req.Status, validation.In("upcoming", "ongoing", "completed")),
	)
}
