package dbmodels

import (
	"time"
)

// тэг с человекочитаемым названием поля для лога изменений
const CommentTag = "comment"

type BaseModel struct {
	ID        string    `gorm:"primaryKey;default:uuid_generate_v4()" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BaseSpaceModel struct {
	BaseModel
	SpaceID string `gorm:"type:varchar(36);index"`
	Space   *Space `gorm:"foreignKey:SpaceID"`
}
