package domain

import "time"

// Author is an account identified by email. There is no password; login
// is performed with an emailed temporary code.
type Author struct {
	AuthorID   int64     `json:"id"`
	Email      string    `json:"email"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`

	// Populated on detail reads for response shaping.
	Recipes  []ShortRecipe `json:"recipes,omitempty"`
	Comments []Comment     `json:"comments,omitempty"`
}

// ShortAuthor is the embedded author shape used inside recipe and
// comment responses.
type ShortAuthor struct {
	AuthorID   int64  `json:"id"`
	AuthorName string `json:"author_name"`
}

func (a *Author) Short() ShortAuthor {
	return ShortAuthor{AuthorID: a.AuthorID, AuthorName: a.AuthorName}
}

type SendCodeRequest struct {
	Email      string `json:"email" validate:"required,email"`
	AuthorName string `json:"author_name"`
}

type VerifyCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

type UpdateAuthorRequest struct {
	AuthorName *string `json:"author_name"`
	Email      *string `json:"email" validate:"omitempty,email"`
}
