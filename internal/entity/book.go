package entity

// Book belongs to an author through AuthorID. The reference is by convention
// only: a book may point at an author that no longer exists.
type Book struct {
	ID          string `json:"id" dynamodbav:"id"`
	FullName    string `json:"fullName" dynamodbav:"fullName"`
	ReleaseDate string `json:"releaseDate" dynamodbav:"releaseDate"`
	AuthorID    string `json:"authorId" dynamodbav:"authorId"`
}

// BookInput is the creation payload.
type BookInput struct {
	FullName    string `json:"fullName"`
	ReleaseDate string `json:"releaseDate"`
	AuthorID    string `json:"authorId"`
}

// BookUpdateInput names only the fields to change. The author reference is
// fixed at creation time and cannot be patched.
type BookUpdateInput struct {
	FullName    *string `json:"fullName"`
	ReleaseDate *string `json:"releaseDate"`
}
