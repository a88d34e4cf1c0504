package domain

import "time"

type Comment struct {
	CommentID int64     `json:"id"`
	Content   string    `json:"content"`
	AuthorID  int64     `json:"-"`
	RecipeID  int64     `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Author *ShortAuthor `json:"author,omitempty"`
	Recipe *ShortRecipe `json:"recipe,omitempty"`
}

type CreateCommentRequest struct {
	RecipeID int64  `json:"recipe" validate:"required,min=1"`
	Content  string `json:"content" validate:"required"`
}

type UpdateCommentRequest struct {
	Content *string `json:"content"`
}
