package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Profile is the one-per-user career document. Experience and education are
// embedded JSON lists mutated in memory and written back with the row, the
// same read-modify-write shape a document store would use. There is no
// optimistic concurrency check; concurrent list mutations on the same profile
// can overwrite each other.
type Profile struct {
	ID             uint             `gorm:"primaryKey" json:"id"`
	UserID         uint             `gorm:"uniqueIndex;not null" json:"user_id"`
	User           User             `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
	Status         string           `gorm:"not null" json:"status"`
	Company        string           `json:"company"`
	Location       string           `json:"location"`
	Website        string           `json:"website"`
	Bio            string           `json:"bio"`
	GithubUsername string           `json:"githubusername"`
	Skills         StringList       `gorm:"type:jsonb" json:"skills"`
	Social         SocialLinks      `gorm:"type:jsonb" json:"social"`
	Experience     List[Experience] `gorm:"type:jsonb" json:"experience"`
	Education      List[Education]  `gorm:"type:jsonb" json:"education"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// SocialLinks holds the optional per-network profile URLs. Every non-empty
// value is normalized to an absolute https URL before it is stored.
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Value implements driver.Valuer.
func (s SocialLinks) Value() (driver.Value, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (s *SocialLinks) Scan(value any) error {
	if value == nil {
		*s = SocialLinks{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported column type %T for social links", value)
	}
}

// GormDataType tells GORM which column type to migrate.
func (s SocialLinks) GormDataType() string {
	return "jsonb"
}

// Experience is one career entry. Entries are keyed by a generated ID used
// for targeted removal and kept newest-first.
type Experience struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location,omitempty"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

// Key returns the entry identifier.
func (e Experience) Key() string { return e.ID }

// Education is one schooling entry, keyed like Experience.
type Education struct {
	ID           string     `json:"id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
}

// Key returns the entry identifier.
func (e Education) Key() string { return e.ID }
