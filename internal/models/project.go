package models

import "time"

// Project is a portfolio showcase entry
type Project struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	TechStack   string    `json:"tech_stack"`
	Image       *string   `json:"image"`
	DemoURL     *string   `json:"demo_url"`
	GithubURL   *string   `json:"github_url"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateProjectRequest represents a new project
type CreateProjectRequest struct {
	Title       string  `json:"title" validate:"filled,max=255"`
	Description string  `json:"description" validate:"filled"`
	TechStack   string  `json:"tech_stack" validate:"filled"`
	Image       *string `json:"image" validate:"omitempty,max=2048"`
	DemoURL     *string `json:"demo_url" validate:"omitempty,url,max=2048"`
	GithubURL   *string `json:"github_url" validate:"omitempty,url,max=2048"`
	Status      *string `json:"status" validate:"omitnil,oneof=draft published"`
}

// UpdateProjectRequest carries the fields to change; nil fields stay as they are
type UpdateProjectRequest struct {
	Title       *string `json:"title" validate:"omitnil,filled,max=255"`
	Description *string `json:"description" validate:"omitnil,filled"`
	TechStack   *string `json:"tech_stack" validate:"omitnil,filled"`
	Image       *string `json:"image" validate:"omitempty,max=2048"`
	DemoURL     *string `json:"demo_url" validate:"omitempty,url,max=2048"`
	GithubURL   *string `json:"github_url" validate:"omitempty,url,max=2048"`
	Status      *string `json:"status" validate:"omitnil,oneof=draft published"`
}
