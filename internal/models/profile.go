package models

import "time"

// Profile is the site owner's singleton profile
type Profile struct {
	Name         *string    `json:"name"`
	JobTitle     *string    `json:"job_title"`
	Bio          *string    `json:"bio"`
	ProfileImage *string    `json:"profile_image"`
	Email        *string    `json:"email"`
	Phone        *string    `json:"phone"`
	Location     *string    `json:"location"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

// DefaultProfile is shown until the owner saves a profile
func DefaultProfile() *Profile {
	name := "John Doe"
	jobTitle := "Full-Stack Developer"
	bio := "Passionate developer creating amazing digital experiences."
	return &Profile{
		Name:     &name,
		JobTitle: &jobTitle,
		Bio:      &bio,
	}
}

// UpdateProfileRequest carries the text fields to change; nil fields stay as they are
type UpdateProfileRequest struct {
	Name     *string `form:"name" json:"name" validate:"omitempty,max=255"`
	JobTitle *string `form:"job_title" json:"job_title" validate:"omitempty,max=255"`
	Bio      *string `form:"bio" json:"bio" validate:"omitempty,max=5000"`
	Email    *string `form:"email" json:"email" validate:"omitempty,email,max=255"`
	Phone    *string `form:"phone" json:"phone" validate:"omitempty,max=50"`
	Location *string `form:"location" json:"location" validate:"omitempty,max=255"`
}

// ImageUpload is an image file received with a profile update
type ImageUpload struct {
	Data        []byte
	ContentType string
	Size        int64
}
