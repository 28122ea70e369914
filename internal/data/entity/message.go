package entity

// Message is a buyer inquiry addressed to the realtor owning a home.
type Message struct {
	BaseSimple
	Message   string `db:"message"`
	HomeID    int64  `db:"home_id"`
	RealtorID int64  `db:"realtor_id"`
	BuyerID   int64  `db:"buyer_id"`
}
