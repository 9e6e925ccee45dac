package domain

import (
	"strings"
	"time"
)

type User struct {
	UserID         string        `json:"user_id" db:"user_id" bson:"user_id"`
	Email          string        `json:"email" db:"email" bson:"email"`
	HashedPassword string        `json:"-" db:"hashed_password" bson:"hashed_password"`
	FirstName      string        `json:"first_name" db:"first_name" bson:"first_name"`
	DobDay         string        `json:"dob_day" db:"dob_day" bson:"dob_day"`
	DobMonth       string        `json:"dob_month" db:"dob_month" bson:"dob_month"`
	DobYear        string        `json:"dob_year" db:"dob_year" bson:"dob_year"`
	ShowGender     bool          `json:"show_gender" db:"show_gender" bson:"show_gender"`
	GenderIdentity string        `json:"gender_identity" db:"gender_identity" bson:"gender_identity"`
	GenderInterest string        `json:"gender_interest" db:"gender_interest" bson:"gender_interest"`
	URL            string        `json:"url" db:"url" bson:"url"`
	About          string        `json:"about" db:"about" bson:"about"`
	Matches        []MatchRecord `json:"matches" db:"-" bson:"matches"`
	CreatedAt      time.Time     `json:"created_at" db:"created_at" bson:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at" db:"updated_at" bson:"updated_at"`
}

// HasMatch reports whether u holds a match record pointing at userID.
func (u *User) HasMatch(userID string) bool {
	for _, m := range u.Matches {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// MatchedUserIDs returns the targets of u's match records in stored order,
// duplicates included.
func (u *User) MatchedUserIDs() []string {
	ids := make([]string, 0, len(u.Matches))
	for _, m := range u.Matches {
		ids = append(ids, m.UserID)
	}
	return ids
}

// ProfileUpdate carries the profile fields a merge-update may set. Nil fields
// are left untouched.
type ProfileUpdate struct {
	FirstName      *string `json:"first_name"`
	DobDay         *string `json:"dob_day"`
	DobMonth       *string `json:"dob_month"`
	DobYear        *string `json:"dob_year"`
	ShowGender     *bool   `json:"show_gender"`
	GenderIdentity *string `json:"gender_identity"`
	GenderInterest *string `json:"gender_interest"`
	URL            *string `json:"url"`
	About          *string `json:"about"`
}

// IsEmpty reports whether the update sets nothing.
func (p *ProfileUpdate) IsEmpty() bool {
	return p.FirstName == nil && p.DobDay == nil && p.DobMonth == nil && p.DobYear == nil &&
		p.ShowGender == nil && p.GenderIdentity == nil && p.GenderInterest == nil &&
		p.URL == nil && p.About == nil
}

// Fields returns the set fields keyed by their stored column/field name.
func (p *ProfileUpdate) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.FirstName != nil {
		fields["first_name"] = *p.FirstName
	}
	if p.DobDay != nil {
		fields["dob_day"] = *p.DobDay
	}
	if p.DobMonth != nil {
		fields["dob_month"] = *p.DobMonth
	}
	if p.DobYear != nil {
		fields["dob_year"] = *p.DobYear
	}
	if p.ShowGender != nil {
		fields["show_gender"] = *p.ShowGender
	}
	if p.GenderIdentity != nil {
		fields["gender_identity"] = *p.GenderIdentity
	}
	if p.GenderInterest != nil {
		fields["gender_interest"] = *p.GenderInterest
	}
	if p.URL != nil {
		fields["url"] = *p.URL
	}
	if p.About != nil {
		fields["about"] = *p.About
	}
	return fields
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UpdateResult mirrors the store's update receipt.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}
