package response

import (
	"time"

	"realtor-listings/internal/data/entity"
)

type ImageResponse struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

type HomeResponse struct {
	ID                int64               `json:"id"`
	RealtorID         int64               `json:"realtor_id"`
	Address           string              `json:"address"`
	City              string              `json:"city"`
	Price             float64             `json:"price"`
	PropertyType      entity.PropertyType `json:"propertyType"`
	LandSize          float64             `json:"landSize"`
	NumberOfBedrooms  int                 `json:"numberOfBedrooms"`
	NumberOfBathrooms float64             `json:"numberOfBathrooms"`
	Images            []ImageResponse     `json:"images"`
	ListedAt          time.Time           `json:"listed_at"`
}

type MessageBuyer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type MessageResponse struct {
	ID        int64        `json:"id"`
	Message   string       `json:"message"`
	HomeID    int64        `json:"home_id"`
	Buyer     MessageBuyer `json:"buyer"`
	CreatedAt time.Time    `json:"created_at"`
}

func HomeToResponse(home *entity.Home, images []*entity.Image) HomeResponse {
	imageResponses := make([]ImageResponse, len(images))
	for i, image := range images {
		imageResponses[i] = ImageResponse{
			ID:  image.ID,
			URL: image.URL,
		}
	}

	return HomeResponse{
		ID:                home.ID,
		RealtorID:         home.RealtorID,
		Address:           home.Address,
		City:              home.City,
		Price:             home.Price,
		PropertyType:      home.PropertyType,
		LandSize:          home.LandSize,
		NumberOfBedrooms:  home.NumberOfBedrooms,
		NumberOfBathrooms: home.NumberOfBathrooms,
		Images:            imageResponses,
		ListedAt:          home.CreatedAt,
	}
}

func MessageToResponse(message *entity.Message, buyer *entity.User) MessageResponse {
	resp := MessageResponse{
		ID:        message.ID,
		Message:   message.Message,
		HomeID:    message.HomeID,
		CreatedAt: message.CreatedAt,
	}

	if buyer != nil {
		resp.Buyer = MessageBuyer{
			Name:  buyer.Name,
			Email: buyer.Email,
			Phone: buyer.Phone,
		}
	}

	return resp
}
