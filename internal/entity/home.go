package entity

// Home is a property listing. UnitNumber is the only optional attribute.
type Home struct {
	ID            string `json:"id" dynamodbav:"id"`
	StreetAddress string `json:"streetAddress" dynamodbav:"streetAddress"`
	UnitNumber    string `json:"unitNumber,omitempty" dynamodbav:"unitNumber,omitempty"`
	City          string `json:"city" dynamodbav:"city"`
	Province      string `json:"province" dynamodbav:"province"`
	Country       string `json:"country" dynamodbav:"country"`
	PostalCode    string `json:"postalCode" dynamodbav:"postalCode"`
}

// HomeInput is the creation payload. The id is assigned by the repository.
type HomeInput struct {
	StreetAddress string `json:"streetAddress"`
	UnitNumber    string `json:"unitNumber,omitempty"`
	City          string `json:"city"`
	Province      string `json:"province"`
	Country       string `json:"country"`
	PostalCode    string `json:"postalCode"`
}

// HomeUpdateInput names only the fields to change. A nil field is left
// untouched in the stored record.
type HomeUpdateInput struct {
	StreetAddress *string `json:"streetAddress"`
	UnitNumber    *string `json:"unitNumber"`
	City          *string `json:"city"`
	Province      *string `json:"province"`
	Country       *string `json:"country"`
	PostalCode    *string `json:"postalCode"`
}
