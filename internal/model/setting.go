package model

import (
	"time"

	"gorm.io/datatypes"
)

// Setting tek bir key altında saklanan serbest JSON değeridir. Tüm sayfa
// içerikleri ve küçük yapısal veriler bu tablodan okunur.
type Setting struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Key       string         `json:"key" gorm:"uniqueIndex;not null"`
	Value     datatypes.JSON `json:"value"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"index"`
}
