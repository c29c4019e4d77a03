package vacancyapimodels

import (
	dbmodels "recruit-flow-backend/models/db"

	"github.com/pkg/errors"
)

type VacancyData struct {
	VacancyName string `json:"vacancy_name"` // Название вакансии
	JobTitle    string `json:"job_title"`    // Должность
}

func (v VacancyData) Validate() error {
	if v.VacancyName == "" {
		return errors.New("не указано название вакансии")
	}
	return nil
}

type VacancyView struct {
	ID          string `json:"id"`
	VacancyName string `json:"vacancy_name"`
	JobTitle    string `json:"job_title"`
	AuthorID    string `json:"author_id"`
	IsActive    bool   `json:"is_active"`
}

func VacancyConvert(rec dbmodels.Vacancy) VacancyView {
	return VacancyView{
		ID:          rec.ID,
		VacancyName: rec.VacancyName,
		JobTitle:    rec.JobTitle,
		AuthorID:    rec.AuthorID,
		IsActive:    rec.IsActive,
	}
}
