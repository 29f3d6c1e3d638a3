package models

// FeedEntry is the public projection of a post joined with its owner. The
// owner's credential is never part of the view.
type FeedEntry struct {
	PostID          string `json:"id"`
	IdentityID      string `json:"user_id"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	ProfileImageURL string `json:"user_profile_image_url"`
	Content         string `json:"content"`
	ImageURL        string `json:"post_image_url"`
	Status          *bool  `json:"status"`
	Timestamp       string `json:"timestamp"`
}

// ImageStats is the per-identity tally of posts by authenticity status.
type ImageStats struct {
	RealCount int `json:"real_images"`
	FakeCount int `json:"fake_images"`
}
