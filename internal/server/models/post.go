package models

// Post is a published item. Unlike registrations, posts are persisted on
// every submission; a fake verdict only clears the status flag.
//
// Status is a pointer so rows written without one stay distinguishable from
// an explicit false: statistics count nil on neither side.
type Post struct {
	ID         string `dynamodbav:"id" json:"id"`
	IdentityID string `dynamodbav:"user_id" json:"user_id"`
	Content    string `dynamodbav:"content" json:"content"`
	ImageURL   string `dynamodbav:"image_url" json:"image_url"`
	Status     *bool  `dynamodbav:"status" json:"status"`
	Timestamp  string `dynamodbav:"timestamp" json:"timestamp"`
}

// Stamp fills the generated identifier and creation timestamp if absent.
func (p *Post) Stamp() {
	stamp(&p.ID, &p.Timestamp)
}
