package filesdbstorage

import (
	dbmodels "recruit-flow-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	SaveFile(rec dbmodels.FileStorage) (id string, err error)
	GetByID(spaceID, id string) (rec *dbmodels.FileStorage, err error)
	GetFileIDByType(candidateID string, fileType dbmodels.FileType) (id string, err error)
	GetFileListByType(candidateID string, fileType dbmodels.FileType) (list []dbmodels.FileStorage, err error)
	GetAnswerFile(candidateID, questionID string) (rec *dbmodels.FileStorage, err error)
}

func NewInstance(db *gorm.DB) Provider {
	return &impl{db: db}
}

type impl struct {
	db *gorm.DB
}

func (i impl) SaveFile(rec dbmodels.FileStorage) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(spaceID, id string) (*dbmodels.FileStorage, error) {
	rec := dbmodels.FileStorage{}
	err := i.db.
		Model(&dbmodels.FileStorage{}).
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
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

func (i impl) GetFileIDByType(candidateID string, fileType dbmodels.FileType) (id string, err error) {
	rec := dbmodels.FileStorage{}
	err = i.db.
		Model(&dbmodels.FileStorage{}).
		Where("candidate_id = ? AND type = ?", candidateID, fileType).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetFileListByType(candidateID string, fileType dbmodels.FileType) (list []dbmodels.FileStorage, err error) {
	err = i.db.
		Model(&dbmodels.FileStorage{}).
		Where("candidate_id = ? AND type = ?", candidateID, fileType).
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return list, nil
}

func (i impl) GetAnswerFile(candidateID, questionID string) (*dbmodels.FileStorage, error) {
	rec := dbmodels.FileStorage{}
	err := i.db.
		Model(&dbmodels.FileStorage{}).
		Where("candidate_id = ?", candidateID).
		Where("question_id = ?", questionID).
		Where("type = ?", dbmodels.CandidateExamAnswer).
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
