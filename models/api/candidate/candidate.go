package candidateapimodels

import (
	"recruit-flow-backend/models"
	apimodels "recruit-flow-backend/models/api"
	dbmodels "recruit-flow-backend/models/db"

	"github.com/pkg/errors"
)

type CandidateData struct {
	VacancyID  string `json:"vacancy_id"` // Идентификатор вакансии
	FirstName  string `json:"first_name"` // Имя
	LastName   string `json:"last_name"`  // Фамилия
	MiddleName string `json:"middle_name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Salary     int    `json:"salary"`
	Comment    string `json:"comment"`
}

func (c CandidateData) Validate() error {
	if c.VacancyID == "" {
		return errors.New("не указан идентификатор вакансии")
	}
	if c.FirstName == "" || c.LastName == "" {
		return errors.New("не указаны имя и фамилия кандидата")
	}
	return nil
}

type CandidateStatusData struct {
	Status       models.CandidateStatus `json:"status"`        // Статус в воронке
	RejectReason string                 `json:"reject_reason"` // Причина отказа, обязательна при статусе reject
}

func (c CandidateStatusData) Validate() error {
	if c.Status == "" {
		return errors.New("не указан статус")
	}
	if c.Status == models.CandidateStatusReject && c.RejectReason == "" {
		return errors.New("не указана причина отказа")
	}
	return nil
}

type CandidateFilter struct {
	apimodels.Pagination
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

type CandidateView struct {
	ID           string                 `json:"id"`
	VacancyID    string                 `json:"vacancy_id"`
	StageID      string                 `json:"stage_id,omitempty"` // пусто - кандидат не назначен на этап
	StageName    string                 `json:"stage_name,omitempty"`
	Status       models.CandidateStatus `json:"status"`
	StatusName   string                 `json:"status_name"`
	RejectReason string                 `json:"reject_reason,omitempty"`
	FIO          string                 `json:"fio"`
	Phone        string                 `json:"phone"`
	Email        string                 `json:"email"`
	Salary       int                    `json:"salary"`
	Comment      string                 `json:"comment,omitempty"`
}

func CandidateConvert(rec dbmodels.Candidate) CandidateView {
	result := CandidateView{
		ID:           rec.ID,
		VacancyID:    rec.VacancyID,
		Status:       rec.Status,
		StatusName:   rec.Status.ToHuman(),
		RejectReason: rec.RejectReason,
		FIO:          rec.GetFIO(),
		Phone:        rec.Phone,
		Email:        rec.Email,
		Salary:       rec.Salary,
		Comment:      rec.Comment,
	}
	if rec.StageID != nil {
		result.StageID = *rec.StageID
	}
	if rec.Stage != nil {
		result.StageName = rec.Stage.Name
	}
	return result
}

type CandidateNote struct {
	Note string `json:"note"` // Текст заметки
}

type CandidateHistoryFilter struct {
	apimodels.Pagination
	CommentsOnly bool `json:"comments_only"` // Только комментарии
}

type CandidateHistoryView struct {
	VacancyID   string                    `json:"vacancy_id"`   // Идентификатор вакансии
	VacancyName string                    `json:"vacancy_name"` // Название вакансии
	UserID      string                    `json:"user_id"`      // Идентификатор сотрудника
	UserName    string                    `json:"user_name"`    // Имя сотрудника
	ActionType  dbmodels.ActionType       `json:"action_type"`  // Тип действия
	Changes     dbmodels.CandidateChanges `json:"changes"`      // Изменения
}

func HistoryConvert(rec dbmodels.CandidateHistory) CandidateHistoryView {
	result := CandidateHistoryView{
		VacancyID:  rec.VacancyID,
		UserName:   rec.UserName,
		ActionType: rec.ActionType,
		Changes:    rec.Changes,
	}
	if rec.Vacancy != nil {
		result.VacancyName = rec.Vacancy.VacancyName
	}
	if rec.UserID != nil {
		result.UserID = *rec.UserID
	}
	return result
}
