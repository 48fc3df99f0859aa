package quests

import "time"

// Quest is a shared quest-log entry. Key is the slug derived from Name
// at creation. Active quests are the ones the log shows; deactivated
// quests stay persisted but drop out of the listing.
type Quest struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	Key         string    `gorm:"column:key;size:191;uniqueIndex;not null" json:"key"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	Description string    `gorm:"column:description" json:"description"`
	ImageRef    string    `gorm:"column:image_ref" json:"image_ref,omitempty"`
	Active      bool      `gorm:"column:active;default:true" json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName overrides the table name.
func (Quest) TableName() string {
	return "quests"
}

// CreateQuestRequest is the body of POST /quests.
type CreateQuestRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageRef    string `json:"image_ref"`
}

// SetActiveRequest is the body of PUT /quests/:key/active.
type SetActiveRequest struct {
	Active bool `json:"active"`
}
