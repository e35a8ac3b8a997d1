package entity

// Author of one or more books. Books reference authors by id; the store does
// not enforce the relation.
type Author struct {
	ID        string `json:"id" dynamodbav:"id"`
	FullName  string `json:"fullName" dynamodbav:"fullName"`
	Country   string `json:"country" dynamodbav:"country"`
	BirthDate string `json:"birthDate" dynamodbav:"birthDate"`
}

// AuthorInput is the creation payload.
type AuthorInput struct {
	FullName  string `json:"fullName"`
	Country   string `json:"country"`
	BirthDate string `json:"birthDate"`
}

// AuthorUpdateInput names only the fields to change.
type AuthorUpdateInput struct {
	FullName  *string `json:"fullName"`
	Country   *string `json:"country"`
	BirthDate *string `json:"birthDate"`
}
