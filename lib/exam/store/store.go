package examstore

import (
	dbmodels "recruit-flow-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Exam) (id string, err error)
	Update(spaceID, id string, updMap map[string]interface{}) error
	GetByID(spaceID, id string) (rec *dbmodels.Exam, err error)
	List(spaceID string) (list []dbmodels.Exam, err error)
	SaveQuestion(rec dbmodels.ExamQuestion) (id string, err error)
	DeleteQuestions(spaceID, examID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Exam) (id string, err error) {
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
		Model(&dbmodels.Exam{}).
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

func (i impl) GetByID(spaceID, id string) (*dbmodels.Exam, error) {
	rec := dbmodels.Exam{}
	err := i.db.
		Model(&dbmodels.Exam{}).
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("exam_questions.question_order")
		}).
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

func (i impl) List(spaceID string) (list []dbmodels.Exam, err error) {
	list = []dbmodels.Exam{}
	err = i.db.
		Model(dbmodels.Exam{}).
		Where("space_id = ?", spaceID).
		Order("created_at desc").
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

func (i impl) SaveQuestion(rec dbmodels.ExamQuestion) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) DeleteQuestions(spaceID, examID string) error {
	return i.db.
		Where("space_id = ?", spaceID).
		Where("exam_id = ?", examID).
		Delete(&dbmodels.ExamQuestion{}).
		Error
}
