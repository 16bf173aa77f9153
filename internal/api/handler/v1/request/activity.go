package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateActivityRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Capacity    int       `json:"capacity"`
	ImageURL    string    `json:"image_url"`
}

func (req *CreateActivityRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.Description, validation.Required),
		validation.Field(&req.Type, validation.Required, validation.In("workshop", "hackathon", "formation")),
		validation.Field(&req.Date, validation.Required),
		validation.Field(&req.Location, validation.Required),
		validation.Field(&req.Capacity, validation.Required, validation.Min(1)),
	)
}

type UpdateActivityRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	ImageURL    string    `json:"image_url"`
}

func (req *UpdateActivityRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.Description, validation.Required),
		validation.Field(&req.Type, validation.Required, validation.In("workshop", "hackathon", "formation")),
		validation.Field(&req.Date, validation.Required),
		validation.Field(&req.Location, validation.Required),
	)
}
