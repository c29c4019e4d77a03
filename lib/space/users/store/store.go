package spaceusersstore

import (
	dbmodels "recruit-flow-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.SpaceUser) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.SpaceUser, err error)
	FindByEmail(email string) (rec *dbmodels.SpaceUser, err error)
	ListBySpace(spaceID string) (list []dbmodels.SpaceUser, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.SpaceUser) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.SpaceUser{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.SpaceUser, error) {
	rec := dbmodels.SpaceUser{}
	err := i.db.
		Model(&dbmodels.SpaceUser{}).
		Where("id = ?", id).
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

func (i impl) FindByEmail(email string) (*dbmodels.SpaceUser, error) {
	rec := dbmodels.SpaceUser{}
	err := i.db.
		Model(&dbmodels.SpaceUser{}).
		Where("email = ?", email).
		Where("is_active = true").
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

func (i impl) ListBySpace(spaceID string) (list []dbmodels.SpaceUser, err error) {
	list = []dbmodels.SpaceUser{}
	err = i.db.
		Model(&dbmodels.SpaceUser{}).
		Where("space_id = ?", spaceID).
		Where("is_active = true").
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
