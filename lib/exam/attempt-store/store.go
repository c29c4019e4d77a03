package examattemptstore

import (
	dbmodels "recruit-flow-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.ExamAttempt) (id string, err error)
	Update(spaceID, id string, updMap map[string]interface{}) error
	GetByID(spaceID, id string) (rec *dbmodels.ExamAttempt, err error)
	FindByCandidateActivity(spaceID, candidateActivityID string) (rec *dbmodels.ExamAttempt, err error)
	ListUngraded(limit int) (list []dbmodels.ExamAttempt, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ExamAttempt) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(spaceID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.ExamAttempt{}).
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Updates(updMap)
	err := tx.Error
	if err != nil {
		return err
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

func (i impl) GetByID(spaceID, id string) (*dbmodels.ExamAttempt, error) {
	rec := dbmodels.ExamAttempt{}
	err := i.db.
		Model(&dbmodels.ExamAttempt{}).
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Preload("Exam").
		Preload("Exam.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("exam_questions.question_order")
		}).
		Preload("Candidate").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// FindByCandidateActivity отдает последнюю попытку по активности кандидата
func (i impl) FindByCandidateActivity(spaceID, candidateActivityID string) (*dbmodels.ExamAttempt, error) {
	rec := dbmodels.ExamAttempt{}
	err := i.db.
		Model(&dbmodels.ExamAttempt{}).
		Where("space_id = ?", spaceID).
		Where("candidate_activity_id = ?", candidateActivityID).
		Order("created_at desc").
		Preload("Exam").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// ListUngraded отдает отправленные, но не проверенные попытки для фоновой предпроверки
func (i impl) ListUngraded(limit int) (list []dbmodels.ExamAttempt, err error) {
	list = []dbmodels.ExamAttempt{}
	err = i.db.
		Model(dbmodels.ExamAttempt{}).
		Where("is_submitted = true").
		Where("is_graded = false").
		Where("ticks = '{}'::jsonb").
		Order("submitted_at").
		Limit(limit).
		Preload("Exam").
		Preload("Exam.Questions").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}
