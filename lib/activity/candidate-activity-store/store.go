package candidateactivitystore

import (
	dbmodels "recruit-flow-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.CandidateActivity) (id string, err error)
	Update(spaceID, id string, updMap map[string]interface{}) error
	GetByID(spaceID, id string) (rec *dbmodels.CandidateActivity, err error)
	Find(spaceID, candidateID, activityID string) (rec *dbmodels.CandidateActivity, err error)
	ListByCandidate(spaceID, candidateID string) (list []dbmodels.CandidateActivity, err error)
	ListByCandidateStage(spaceID, candidateID, stageID string) (list []dbmodels.CandidateActivity, err error)
	ListByActivity(spaceID, activityID string) (list []dbmodels.CandidateActivity, err error)
	WithTx(tx *gorm.DB) Provider
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// WithTx возвращает экземпляр, работающий в рамках транзакции
func (i impl) WithTx(tx *gorm.DB) Provider {
	return &impl{db: tx}
}

func (i impl) Create(rec dbmodels.CandidateActivity) (id string, err error) {
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
		Model(&dbmodels.CandidateActivity{}).
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

func (i impl) GetByID(spaceID, id string) (*dbmodels.CandidateActivity, error) {
	rec := dbmodels.CandidateActivity{}
	err := i.db.
		Model(&dbmodels.CandidateActivity{}).
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Preload("Activity").
		Preload("Activity.Exam").
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

func (i impl) Find(spaceID, candidateID, activityID string) (*dbmodels.CandidateActivity, error) {
	rec := dbmodels.CandidateActivity{}
	err := i.db.
		Model(&dbmodels.CandidateActivity{}).
		Where("space_id = ?", spaceID).
		Where("candidate_id = ?", candidateID).
		Where("activity_id = ?", activityID).
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

func (i impl) ListByCandidate(spaceID, candidateID string) (list []dbmodels.CandidateActivity, err error) {
	list = []dbmodels.CandidateActivity{}
	err = i.db.
		Model(dbmodels.CandidateActivity{}).
		Where("space_id = ?", spaceID).
		Where("candidate_id = ?", candidateID).
		Preload("Activity").
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

// ListByCandidateStage отдает активности кандидата, привязанные к указанному этапу
func (i impl) ListByCandidateStage(spaceID, candidateID, stageID string) (list []dbmodels.CandidateActivity, err error) {
	list = []dbmodels.CandidateActivity{}
	err = i.db.
		Model(dbmodels.CandidateActivity{}).
		Joins("join activities as a on candidate_activities.activity_id = a.id").
		Where("candidate_activities.space_id = ?", spaceID).
		Where("candidate_activities.candidate_id = ?", candidateID).
		Where("a.stage_id = ?", stageID).
		Preload("Activity").
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

func (i impl) ListByActivity(spaceID, activityID string) (list []dbmodels.CandidateActivity, err error) {
	list = []dbmodels.CandidateActivity{}
	err = i.db.
		Model(dbmodels.CandidateActivity{}).
		Where("space_id = ?", spaceID).
		Where("activity_id = ?", activityID).
		Preload("Candidate").
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
