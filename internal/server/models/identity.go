// Package models defines the records the gateway persists and the views it
// serves. Attribute names match the existing record store tables, so rows
// written by earlier deployments round-trip unchanged.
package models

// Identity is a registered account. Created only by a registration whose
// display image was classified genuine; never updated or deleted.
//
// Password holds the credential verbatim. This mirrors the rows already in
// the store and is a known defect (see the login service docs).
type Identity struct {
	ID              string `dynamodbav:"id" json:"id"`
	Username        string `dynamodbav:"username" json:"username"`
	Email           string `dynamodbav:"email" json:"email"`
	Password        string `dynamodbav:"password" json:"-"`
	ProfileImageURL string `dynamodbav:"profile_image_url" json:"profile_image_url"`
	Timestamp       string `dynamodbav:"timestamp" json:"timestamp"`
}

// Stamp fills the generated identifier and creation timestamp if absent.
// Call it once, immediately before the record write.
func (i *Identity) Stamp() {
	stamp(&i.ID, &i.Timestamp)
}
