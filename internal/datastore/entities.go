// entities.go contains the database schema entities for chart persistence.
package datastore

import (
	"time"
)

// BirthProfile is a saved person: the immutable birth data plus a label.
type BirthProfile struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"index"`
	Year      int
	Month     int
	Day       int
	Hour      int
	Minute    int
	Timezone  string
	Latitude  float64
	Longitude float64
	City      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ChartRecord is a persisted calculation result for a profile. Payload holds
// the JSON-serialized pipeline result; the columns outside it exist for
// querying without deserialization.
type ChartRecord struct {
	ID          string `gorm:"primaryKey"`
	ProfileID   string `gorm:"index"`
	CalcVersion string
	Source      string
	BirthUTC    time.Time
	DesignUTC   time.Time
	HDType      string
	HDProfile   string
	Payload     []byte
	CreatedAt   time.Time
}
