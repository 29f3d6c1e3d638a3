package models

// QuarantinedAttempt records a registration rejected for submitting a fake
// display image. Pure audit trail: the image itself is never persisted and
// the record has no lifecycle beyond creation.
type QuarantinedAttempt struct {
	ID        string `dynamodbav:"id" json:"id"`
	Username  string `dynamodbav:"username" json:"username"`
	Email     string `dynamodbav:"email" json:"email"`
	Password  string `dynamodbav:"password" json:"-"`
	Timestamp string `dynamodbav:"timestamp" json:"timestamp"`
}

// Stamp fills the generated identifier and creation timestamp if absent.
func (q *QuarantinedAttempt) Stamp() {
	stamp(&q.ID, &q.Timestamp)
}
