package dbmodels

import (
	"recruit-flow-backend/models"

	"github.com/lib/pq"
)

type Exam struct {
	BaseSpaceModel
	Title         string `gorm:"type:varchar(255)"`
	Code          string `gorm:"type:varchar(50)"`
	Duration      int    // длительность в минутах
	QuestionCount int
	PassingScore  *float64 // проходной балл 0-100, nil - не задан
	Questions     []ExamQuestion `gorm:"foreignKey:ExamID"`
}

// Вопрос теста. Ответы с несколькими значениями храним строкой через запятую,
// для grid значением является ключ ячейки вида "<строка>_<колонка>"
type ExamQuestion struct {
	BaseSpaceModel
	ExamID        string              `gorm:"type:varchar(36);index"`
	QuestionOrder int
	Type          models.QuestionType `gorm:"type:varchar(50)"`
	Content       string
	Options       pq.StringArray `gorm:"type:text[]"` // варианты ответа для multiple-choice/grid
	CorrectAnswer string
}
