package models

import "time"

// Skill is one entry of the skills chart
type Skill struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Level     int       `json:"level"`
	Category  *string   `json:"category"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateSkillRequest represents a new skill
type CreateSkillRequest struct {
	Name     string  `json:"name" validate:"filled,max=255"`
	Level    *int    `json:"level" validate:"required,min=0,max=100"`
	Category *string `json:"category" validate:"omitempty,max=100"`
	Order    *int    `json:"order"`
}

// UpdateSkillRequest carries the fields to change; nil fields stay as they are
type UpdateSkillRequest struct {
	Name     *string `json:"name" validate:"omitnil,filled,max=255"`
	Level    *int    `json:"level" validate:"omitnil,min=0,max=100"`
	Category *string `json:"category" validate:"omitempty,max=100"`
	Order    *int    `json:"order"`
}
