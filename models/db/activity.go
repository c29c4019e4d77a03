package dbmodels

import (
	"recruit-flow-backend/models"
)

// Единица работы рекрутера по этапу подбора.
// Тип после создания не меняется, смена типа ломает связанные записи по кандидатам
type Activity struct {
	BaseSpaceModel
	VacancyID   string `gorm:"type:varchar(36);index"`
	StageID     string `gorm:"type:varchar(36);index"`
	Stage       *SelectionStage     `gorm:"foreignKey:StageID"`
	Type        models.ActivityType `gorm:"type:varchar(50)"`
	Name        string              `gorm:"type:varchar(255)"`
	Description string
	ExamID      *string `gorm:"type:varchar(36)"` // заполняется только для типа test
	Exam        *Exam   `gorm:"foreignKey:ExamID"`
	CreatedBy   string  `gorm:"type:varchar(36)"`
}
