package activitystore

import (
	dbmodels "recruit-flow-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Activity) (id string, err error)
	Update(spaceID, id string, updMap map[string]interface{}) error
	GetByID(spaceID, id string) (rec *dbmodels.Activity, err error)
	ListByStage(spaceID, stageID string) (list []dbmodels.Activity, err error)
	ListByVacancy(spaceID, vacancyID string) (list []dbmodels.Activity, err error)
	Delete(spaceID, id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Activity) (id string, err error) {
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
		Model(&dbmodels.Activity{}).
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

func (i impl) GetByID(spaceID, id string) (*dbmodels.Activity, error) {
	rec := dbmodels.Activity{}
	err := i.db.
		Model(&dbmodels.Activity{}).
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Preload("Exam").
		Preload("Exam.Questions").
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

func (i impl) ListByStage(spaceID, stageID string) (list []dbmodels.Activity, err error) {
	list = []dbmodels.Activity{}
	err = i.db.
		Model(dbmodels.Activity{}).
		Where("space_id = ?", spaceID).
		Where("stage_id = ?", stageID).
		Order("created_at").
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

func (i impl) ListByVacancy(spaceID, vacancyID string) (list []dbmodels.Activity, err error) {
	list = []dbmodels.Activity{}
	err = i.db.
		Model(dbmodels.Activity{}).
		Where("space_id = ?", spaceID).
		Where("vacancy_id = ?", vacancyID).
		Order("created_at").
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

func (i impl) Delete(spaceID, id string) error {
	delRec := dbmodels.Activity{
		BaseSpaceModel: dbmodels.BaseSpaceModel{
			BaseModel: dbmodels.BaseModel{ID: id},
			SpaceID:   spaceID,
		},
	}
	return i.db.
		Delete(&delRec).
		Error
}
