package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type JuanPayRecord struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	Date       time.Time       `gorm:"type:date;not null" json:"date"`
	Beginnings pq.Float64Array `gorm:"type:float8[]" json:"beginnings"`
	Ending     float64         `gorm:"default:0" json:"ending"`
	Sales      float64         `gorm:"default:0" json:"sales"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`
}
