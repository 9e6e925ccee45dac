package domain

// MatchRecord is a directed edge from the owning user to UserID. Mutuality is
// never stored; it is derived by checking both directions.
type MatchRecord struct {
	UserID string `json:"user_id" bson:"user_id"`
}
