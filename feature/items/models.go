package items

import "time"

// Item is a catalog entry. Key is the slug derived from Name at creation
// and immutable afterwards.
type Item struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	Key         string    `gorm:"column:key;size:191;uniqueIndex;not null" json:"key"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	Description string    `gorm:"column:description" json:"description"`
	ImageRef    string    `gorm:"column:image_ref" json:"image_ref,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName overrides the table name.
func (Item) TableName() string {
	return "items"
}

// CreateItemRequest is the body of POST /items.
type CreateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageRef    string `json:"image_ref"`
}
