package worker

import "time"

// Upload is one recorded deployment of a build to Appetize.
type Upload struct {
	ID        int64  `gorm:"primaryKey"`
	PublicKey string `gorm:"index"`
	Platform  string
	Source    string
	Checksum  string
	Note      *string
	CreatedAt time.Time
}
