package candidatestore

import (
	"strings"

	dbmodels "recruit-flow-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Candidate) (id string, err error)
	Update(spaceID, id string, updMap map[string]interface{}) error
	GetByID(spaceID, id string) (rec *dbmodels.Candidate, err error)
	List(spaceID string, filter dbmodels.CandidateFilter, page, limit int) (list []dbmodels.Candidate, rowCount int64, err error)
	ListByStage(spaceID, stageID string) (list []dbmodels.Candidate, err error)
	CountByStage(spaceID, stageID string) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Candidate) (id string, err error) {
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
		Model(&dbmodels.Candidate{}).
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

func (i impl) GetByID(spaceID, id string) (*dbmodels.Candidate, error) {
	rec := dbmodels.Candidate{}
	err := i.db.
		Model(&dbmodels.Candidate{}).
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Preload(clause.Associations).
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

func (i impl) List(spaceID string, filter dbmodels.CandidateFilter, page, limit int) (list []dbmodels.Candidate, rowCount int64, err error) {
	list = []dbmodels.Candidate{}
	tx := i.db.
		Model(dbmodels.Candidate{}).
		Where("space_id = ?", spaceID)
	i.addFilter(tx, filter)

	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err = tx.
		Preload(clause.Associations).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, nil
		}
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) ListByStage(spaceID, stageID string) (list []dbmodels.Candidate, err error) {
	list = []dbmodels.Candidate{}
	err = i.db.
		Model(dbmodels.Candidate{}).
		Where("space_id = ?", spaceID).
		Where("stage_id = ?", stageID).
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

func (i impl) CountByStage(spaceID, stageID string) (count int64, err error) {
	err = i.db.
		Model(&dbmodels.Candidate{}).
		Where("space_id = ?", spaceID).
		Where("stage_id = ?", stageID).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) addFilter(tx *gorm.DB, filter dbmodels.CandidateFilter) {
	if filter.VacancyID != "" {
		tx.Where("vacancy_id = ?", filter.VacancyID)
	}
	if filter.StageID != "" {
		tx.Where("stage_id = ?", filter.StageID)
	}
	if filter.Search != "" {
		searchValue := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("LOWER(CONCAT(last_name,' ', first_name, ' ' , middle_name)) like ? or phone like ? or email like ?", searchValue, searchValue, searchValue)
	}
}
