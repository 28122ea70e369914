package entity

type PropertyType string

const (
	PropertyResidential PropertyType = "RESIDENTIAL"
	PropertyCondo       PropertyType = "CONDO"
)

func (p PropertyType) Valid() bool {
	switch p {
	case PropertyResidential, PropertyCondo:
		return true
	default:
		return false
	}
}

// Home is a property listing. RealtorID is set at creation to the creating
// realtor and never changes afterwards.
type Home struct {
	Base
	RealtorID         int64        `db:"realtor_id"`
	Address           string       `db:"address"`
	City              string       `db:"city"`
	Price             float64      `db:"price"`
	PropertyType      PropertyType `db:"property_type"`
	LandSize          float64      `db:"land_size"`
	NumberOfBedrooms  int          `db:"number_of_bedrooms"`
	NumberOfBathrooms float64      `db:"number_of_bathrooms"`
}

type Image struct {
	BaseSimple
	URL    string `db:"url"`
	HomeID int64  `db:"home_id"`
}
