package dbmodels

import (
	"recruit-flow-backend/models"
	"time"
)

// Экземпляр активности по конкретному кандидату,
// одна запись на пару (активность, кандидат)
type CandidateActivity struct {
	BaseSpaceModel
	CandidateID string     `gorm:"type:varchar(36);index:idx_candidate_activity"`
	Candidate   *Candidate `gorm:"foreignKey:CandidateID"`
	ActivityID  string     `gorm:"type:varchar(36);index:idx_candidate_activity"`
	Activity    *Activity  `gorm:"foreignKey:ActivityID"`
	Status      models.ActivityStatus `gorm:"type:varchar(50);default:'in_progress'"`
	Result      models.ActivityResult `gorm:"type:varchar(50);default:'pending'"`
	NoteResult  string

	// поля интервью, заполняются только для типа interview
	InterviewDate      time.Time
	InterviewLink      string `gorm:"type:varchar(500)"`
	InterviewLocation  string `gorm:"type:varchar(500)"`
	InterviewConfirmed bool
}

func (c CandidateActivity) IsCompleted() bool {
	return c.Status == models.ActivityStatusCompleted
}
