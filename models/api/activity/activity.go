package activityapimodels

import (
	"recruit-flow-backend/models"
	dbmodels "recruit-flow-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type ActivityData struct {
	VacancyID   string              `json:"vacancy_id"`  // Идентификатор вакансии
	StageID     string              `json:"stage_id"`    // Этап, к которому относится активность
	Type        models.ActivityType `json:"type"`        // call/email/interview/test/task
	Name        string              `json:"name"`        // Название
	Description string              `json:"description"` // Описание
	ExamID      string              `json:"exam_id"`     // Тест, только для типа test
}

func (a ActivityData) Validate() error {
	if a.VacancyID == "" {
		return errors.New("не указан идентификатор вакансии")
	}
	if a.StageID == "" {
		return errors.New("не указан идентификатор этапа")
	}
	if err := a.Type.Validate(); err != nil {
		return err
	}
	if a.Name == "" {
		return errors.New("не указано название активности")
	}
	if a.Type == models.ActivityTypeTest && a.ExamID == "" {
		return errors.New("для активности типа test не указан тест")
	}
	if a.Type != models.ActivityTypeTest && a.ExamID != "" {
		return errors.New("тест указывается только для активности типа test")
	}
	return nil
}

type ActivityAssign struct {
	CandidateIDs []string `json:"candidate_ids"` // Кандидаты, по которым создается активность
}

func (a ActivityAssign) Validate() error {
	if len(a.CandidateIDs) == 0 {
		return errors.New("не указаны кандидаты")
	}
	return nil
}

type StatusData struct {
	Status models.ActivityStatus `json:"status"`
}

func (s StatusData) Validate() error {
	return s.Status.Validate()
}

type ResultData struct {
	Result models.ActivityResult `json:"result"`
}

func (r ResultData) Validate() error {
	return r.Result.Validate()
}

type NoteData struct {
	NoteResult string `json:"noteresult"` // Свободный комментарий по итогу
}

type InterviewData struct {
	InterviewDate     time.Time `json:"interview_date"`
	InterviewLink     string    `json:"interview_link"`
	InterviewLocation string    `json:"interview_location"`
}

func (i InterviewData) Validate() error {
	if i.InterviewDate.IsZero() {
		return errors.New("не указана дата интервью")
	}
	return nil
}

type ActivityView struct {
	ID          string              `json:"id"`
	VacancyID   string              `json:"vacancy_id"`
	StageID     string              `json:"stage_id"`
	Type        models.ActivityType `json:"type"`
	TypeName    string              `json:"type_name"`
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	ExamID      string              `json:"exam_id,omitempty"`
	CreatedBy   string              `json:"created_by"`
	CreatedAt   time.Time           `json:"created_at"`
}

func ActivityConvert(rec dbmodels.Activity) ActivityView {
	result := ActivityView{
		ID:          rec.ID,
		VacancyID:   rec.VacancyID,
		StageID:     rec.StageID,
		Type:        rec.Type,
		TypeName:    rec.Type.ToHuman(),
		Name:        rec.Name,
		Description: rec.Description,
		CreatedBy:   rec.CreatedBy,
		CreatedAt:   rec.CreatedAt,
	}
	if rec.ExamID != nil {
		result.ExamID = *rec.ExamID
	}
	return result
}

type CandidateActivityView struct {
	ID                 string                `json:"id"`
	CandidateID        string                `json:"candidate_id"`
	ActivityID         string                `json:"activity_id"`
	ActivityName       string                `json:"activity_name"`
	ActivityType       models.ActivityType   `json:"activity_type"`
	Status             models.ActivityStatus `json:"status"`
	StatusName         string                `json:"status_name"`
	Result             models.ActivityResult `json:"result"`
	ResultName         string                `json:"result_name"`
	NoteResult         string                `json:"noteresult,omitempty"`
	InterviewDate      *time.Time            `json:"interview_date,omitempty"`
	InterviewLink      string                `json:"interview_link,omitempty"`
	InterviewLocation  string                `json:"interview_location,omitempty"`
	InterviewConfirmed bool                  `json:"interview_confirmed,omitempty"`
	Exam               *ExamSummary          `json:"exam,omitempty"` // только для типа test
}

type ExamSummary struct {
	ExamID       string   `json:"exam_id"`
	Title        string   `json:"title"`
	IsSubmitted  bool     `json:"is_submitted"`
	IsGraded     bool     `json:"is_graded"`
	TotalScore   float64  `json:"total_score"`
	CorrectCount int      `json:"correct_count"`
	Passed       *bool    `json:"passed,omitempty"` // nil - проходной балл не задан, итог неопределен
	TimeTaken    *float64 `json:"time_taken,omitempty"`
}

func CandidateActivityConvert(rec dbmodels.CandidateActivity) CandidateActivityView {
	result := CandidateActivityView{
		ID:                 rec.ID,
		CandidateID:        rec.CandidateID,
		ActivityID:         rec.ActivityID,
		Status:             rec.Status,
		StatusName:         rec.Status.ToHuman(),
		Result:             rec.Result,
		ResultName:         rec.Result.ToHuman(),
		NoteResult:         rec.NoteResult,
		InterviewLink:      rec.InterviewLink,
		InterviewLocation:  rec.InterviewLocation,
		InterviewConfirmed: rec.InterviewConfirmed,
	}
	if !rec.InterviewDate.IsZero() {
		date := rec.InterviewDate
		result.InterviewDate = &date
	}
	if rec.Activity != nil {
		result.ActivityName = rec.Activity.Name
		result.ActivityType = rec.Activity.Type
	}
	return result
}
