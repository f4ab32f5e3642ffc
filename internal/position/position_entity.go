package position

import "time"

// DefaultName is the placeholder role assigned on self-registration until
// HR activates the record and assigns a real position.
const DefaultName = "Administrative Assistant"

type Position struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"size:500"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
