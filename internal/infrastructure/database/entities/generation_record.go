package entities

import "time"

// GenerationRecord is one audit row per generation batch. Creative payloads
// themselves are never persisted, only request shape and outcome.
type GenerationRecord struct {
	ID             string    `gorm:"type:varchar(40);primaryKey"`
	RequestID      string    `gorm:"type:varchar(64);index"`
	Product        string    `gorm:"type:varchar(255);not null"`
	Persona        string    `gorm:"type:text"`
	Variations     int       `gorm:"not null"`
	TextFailures   int       `gorm:"not null"`
	ImageFailures  int       `gorm:"not null"`
	DurationMillis int64     `gorm:"not null"`
	Status         string    `gorm:"type:varchar(16);not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (GenerationRecord) TableName() string {
	return "generation_records"
}
