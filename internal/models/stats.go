package models

// Stats summarizes stored content for the admin dashboard
type Stats struct {
	TotalProjects     int64 `json:"total_projects"`
	TotalBlogs        int64 `json:"total_blogs"`
	TotalSkills       int64 `json:"total_skills"`
	TotalMessages     int64 `json:"total_messages"`
	PublishedProjects int64 `json:"published_projects"`
	PublishedBlogs    int64 `json:"published_blogs"`
	UnreadMessages    int64 `json:"unread_messages"`
}
