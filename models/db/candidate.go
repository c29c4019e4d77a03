package dbmodels

import (
	"fmt"
	"recruit-flow-backend/models"

	"github.com/pkg/errors"
)

type Candidate struct {
	BaseSpaceModel
	VacancyID    string          `gorm:"type:varchar(36);index"`
	Vacancy      *Vacancy        `gorm:"foreignKey:VacancyID"`
	StageID      *string         `gorm:"type:varchar(36);index"` // nil - кандидат не назначен на этап
	Stage        *SelectionStage `gorm:"foreignKey:StageID"`
	Status       models.CandidateStatus `gorm:"type:varchar(100)" comment:"Статус"`
	RejectReason string                 `comment:"Причина отказа"`
	FirstName    string                 `gorm:"type:varchar(255)" comment:"Имя"`
	LastName     string                 `gorm:"type:varchar(255)" comment:"Фамилия"`
	MiddleName   string                 `gorm:"type:varchar(255)" comment:"Отчество"`
	Phone        string                 `gorm:"type:varchar(255)" comment:"Телефон"`
	Email        string                 `gorm:"type:varchar(255)" comment:"Почта"`
	Salary       int                    `comment:"Желаемая ЗП"`
	Comment      string
}

func (c Candidate) GetFIO() string {
	return fmt.Sprintf("%v %v %v", c.LastName, c.FirstName, c.MiddleName)
}

// Кандидата не удаляем, только меняем статус.
// Отклонение требует указания причины
func (c Candidate) IsAllowStatusChange(newStatus models.CandidateStatus, rejectReason string) error {
	if newStatus == "" {
		return errors.New("не указан статус")
	}
	if newStatus == models.CandidateStatusReject && rejectReason == "" {
		return errors.New("не указана причина отказа")
	}
	return nil
}

type CandidateFilter struct {
	VacancyID string `json:"vacancy_id"`
	StageID   string `json:"stage_id"`
	Search    string `json:"search"`
}

func (f CandidateFilter) Validate() error {
	if f.VacancyID == "" && f.StageID == "" {
		return errors.New("не указан идентификатор вакансии или этапа")
	}
	return nil
}
