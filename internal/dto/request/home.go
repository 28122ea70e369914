package request

type ImageRequest struct {
	URL string `json:"url" validate:"required,url"`
}

type CreateHomeRequest struct {
	Address           string         `json:"address" validate:"required"`
	City              string         `json:"city" validate:"required"`
	Price             float64        `json:"price" validate:"required,gt=0"`
	PropertyType      string         `json:"propertyType" validate:"required,oneof=RESIDENTIAL CONDO"`
	LandSize          float64        `json:"landSize" validate:"required,gt=0"`
	NumberOfBedrooms  int            `json:"numberOfBedrooms" validate:"required,min=1"`
	NumberOfBathrooms float64        `json:"numberOfBathrooms" validate:"required,gt=0"`
	Images            []ImageRequest `json:"images" validate:"omitempty,dive"`
}

// UpdateHomeRequest carries a partial update; nil fields are left untouched.
type UpdateHomeRequest struct {
	Address           *string  `json:"address,omitempty" validate:"omitempty,min=1"`
	City              *string  `json:"city,omitempty" validate:"omitempty,min=1"`
	Price             *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	PropertyType      *string  `json:"propertyType,omitempty" validate:"omitempty,oneof=RESIDENTIAL CONDO"`
	LandSize          *float64 `json:"landSize,omitempty" validate:"omitempty,gt=0"`
	NumberOfBedrooms  *int     `json:"numberOfBedrooms,omitempty" validate:"omitempty,min=1"`
	NumberOfBathrooms *float64 `json:"numberOfBathrooms,omitempty" validate:"omitempty,gt=0"`
}

type InquireRequest struct {
	Message string `json:"message" validate:"required"`
}
