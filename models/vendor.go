package models

type Vendor struct {
	ID             int64    `json:"id" bson:"_id"`
	Name           string   `json:"name" bson:"name"`
	Logo           string   `json:"logo" bson:"logo"`
	Rating         float64  `json:"rating" bson:"rating"`
	Certification  string   `json:"certification,omitempty" bson:"certification,omitempty"`
	Addresses      []string `json:"addresses,omitempty" bson:"addresses,omitempty"`
	PaymentMethods []string `json:"payment_methods,omitempty" bson:"payment_methods,omitempty"`
}
