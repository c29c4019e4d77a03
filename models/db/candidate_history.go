package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
)

type CandidateHistory struct {
	BaseSpaceModel
	CandidateID string `gorm:"type:varchar(36);index"`
	VacancyID   string
	Vacancy     *Vacancy `gorm:"foreignKey:VacancyID"`
	UserID      *string
	UserName    string
	ActionType  ActionType       `gorm:"type:varchar(255)"`
	Changes     CandidateChanges `gorm:"type:jsonb"`
}

func (j CandidateChanges) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *CandidateChanges) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}

type CandidateChanges struct {
	Description string            `json:"description"` // Комментрий
	Data        []CandidateChange `json:"data"`        // Список изменений
}

type CandidateChange struct {
	Field    string      `json:"field"`     // Измененное поле
	OldValue interface{} `json:"old_value"` // Старое значение
	NewValue interface{} `json:"new_value"` // Новое значение
}

type ActionType string

const (
	HistoryTypeComment        ActionType = "comment"         // Добавлен комментарий к кандидату
	HistoryTypeAdded          ActionType = "added"           // Кандидат добавлен
	HistoryTypeUpdate         ActionType = "update"          // Кандидат обновлен
	HistoryTypeStageChange    ActionType = "stage_change"    // Кандидат переведен на другой этап
	HistoryTypeReject         ActionType = "reject"          // Кандидат отклонен
	HistoryTypeActivityStatus ActionType = "activity_status" // Изменен статус активности
	HistoryTypeActivityResult ActionType = "activity_result" // Изменен итог активности
	HistoryTypeExamGraded     ActionType = "exam_graded"     // Тест кандидата проверен
)
