package worldmap

import "time"

// Marker is a named point on the shared world map. Coordinates are in
// map units, whatever the client renders them as.
type Marker struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	X         float64   `gorm:"column:x;not null" json:"x"`
	Y         float64   `gorm:"column:y;not null" json:"y"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the table name.
func (Marker) TableName() string {
	return "map_markers"
}

// CreateMarkerRequest is the body of POST /map.
type CreateMarkerRequest struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}
