package models

import "time"

// Blog is a blog post. PublishedAt is set the first time the post is
// published and kept from then on.
type Blog struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Content     string     `json:"content"`
	Excerpt     *string    `json:"excerpt"`
	Image       *string    `json:"image"`
	Tags        *string    `json:"tags"`
	Status      string     `json:"status"`
	Views       int64      `json:"views"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateBlogRequest represents a new blog post
type CreateBlogRequest struct {
	Title   string  `json:"title" validate:"filled,max=255"`
	Content string  `json:"content" validate:"filled"`
	Excerpt *string `json:"excerpt" validate:"omitempty,max=500"`
	Image   *string `json:"image" validate:"omitempty,max=2048"`
	Tags    *string `json:"tags" validate:"omitempty,max=1000"`
	Status  *string `json:"status" validate:"omitnil,oneof=draft published"`
}

// UpdateBlogRequest carries the fields to change; nil fields stay as they are
type UpdateBlogRequest struct {
	Title   *string `json:"title" validate:"omitnil,filled,max=255"`
	Content *string `json:"content" validate:"omitnil,filled"`
	Excerpt *string `json:"excerpt" validate:"omitempty,max=500"`
	Image   *string `json:"image" validate:"omitempty,max=2048"`
	Tags    *string `json:"tags" validate:"omitempty,max=1000"`
	Status  *string `json:"status" validate:"omitnil,oneof=draft published"`
}
