package models

import "time"

// Contact is a message left through the public contact form.
// Only IsRead changes after creation.
type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateContactRequest represents a contact form submission
type CreateContactRequest struct {
	Name    string `json:"name" validate:"filled,max=255"`
	Email   string `json:"email" validate:"filled,email,max=255"`
	Subject string `json:"subject" validate:"filled,max=255"`
	Message string `json:"message" validate:"filled,min=10,max=10000"`

	// Only checked when a captcha verifier is configured
	RecaptchaToken string `json:"recaptcha_token"`
	RemoteIP       string `json:"-"`
}

// MarkContactRequest sets the read flag; an empty body marks the message read
type MarkContactRequest struct {
	IsRead *bool `json:"is_read"`
}
