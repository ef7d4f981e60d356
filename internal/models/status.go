package models

// Publication status of projects and blog posts
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// IsPublished reports whether status marks a record as publicly visible
func IsPublished(status string) bool {
	return status == StatusPublished
}
