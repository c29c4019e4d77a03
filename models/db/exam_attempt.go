package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"recruit-flow-backend/models"
	"time"
)

// Попытка прохождения теста кандидатом.
// Черновик оценки живет только на клиенте, здесь сохраняется итог проверки
type ExamAttempt struct {
	BaseSpaceModel
	ExamID              string     `gorm:"type:varchar(36);index:idx_exam_candidate"`
	Exam                *Exam      `gorm:"foreignKey:ExamID"`
	CandidateID         string     `gorm:"type:varchar(36);index:idx_exam_candidate"`
	Candidate           *Candidate `gorm:"foreignKey:CandidateID"`
	CandidateActivityID string     `gorm:"type:varchar(36);index"`
	Answers             AnswerMap  `gorm:"type:jsonb"` // ответ кандидата по каждому вопросу
	StartedAt           time.Time
	SubmittedAt         time.Time
	IsSubmitted         bool

	// итоги проверки
	IsGraded     bool
	GradingMode  models.GradingMode `gorm:"type:varchar(20)"`
	Scores       ScoreMap           `gorm:"type:jsonb"` // балл по каждому вопросу
	Ticks        TickMap            `gorm:"type:jsonb"` // отметки верно/неверно по вопросам
	TotalScore   float64
	CorrectCount int
	GradedBy     string `gorm:"type:varchar(36)"`
	GradedAt     time.Time
}

type AnswerMap map[string]string

func (j AnswerMap) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *AnswerMap) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}

type ScoreMap map[string]float64

func (j ScoreMap) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *ScoreMap) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}

type TickMap map[string]models.TickMark

func (j TickMap) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *TickMap) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}
