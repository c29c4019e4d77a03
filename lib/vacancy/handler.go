package vacancyhandler

import (
	"recruit-flow-backend/db"
	stagehandler "recruit-flow-backend/lib/stage"
	"recruit-flow-backend/lib/utils/apperror"
	vacancystore "recruit-flow-backend/lib/vacancy/store"
	vacancyapimodels "recruit-flow-backend/models/api/vacancy"
	dbmodels "recruit-flow-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(spaceID, userID string, data vacancyapimodels.VacancyData) (id string, err error)
	Update(spaceID, id string, data vacancyapimodels.VacancyData) error
	GetByID(spaceID, id string) (view vacancyapimodels.VacancyView, err error)
	List(spaceID string) (list []vacancyapimodels.VacancyView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: vacancystore.NewInstance(db.DB),
	}
}

type impl struct {
	store vacancystore.Provider
}

// Create создает вакансию со стандартным набором этапов подбора
func (i impl) Create(spaceID, userID string, data vacancyapimodels.VacancyData) (id string, err error) {
	logger := log.WithField("space_id", spaceID)
	rec := dbmodels.Vacancy{
		BaseSpaceModel: dbmodels.BaseSpaceModel{
			SpaceID: spaceID,
		},
		VacancyName: data.VacancyName,
		JobTitle:    data.JobTitle,
		AuthorID:    userID,
		IsActive:    true,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("Ошибка создания вакансии")
		return "", errors.Wrap(err, "Ошибка создания вакансии")
	}
	err = stagehandler.Instance.InitDefault(spaceID, id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (i impl) Update(spaceID, id string, data vacancyapimodels.VacancyData) error {
	updMap := map[string]interface{}{
		"vacancy_name": data.VacancyName,
		"job_title":    data.JobTitle,
	}
	err := i.store.Update(spaceID, id, updMap)
	if err != nil {
		log.
			WithField("space_id", spaceID).
			WithField("vacancy_id", id).
			WithError(err).
			Error("Ошибка изменения вакансии")
		return errors.Wrap(err, "Ошибка изменения вакансии")
	}
	return nil
}

func (i impl) GetByID(spaceID, id string) (view vacancyapimodels.VacancyView, err error) {
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		log.
			WithField("space_id", spaceID).
			WithField("vacancy_id", id).
			WithError(err).
			Error("Ошибка получения вакансии")
		return view, errors.Wrap(err, "Ошибка получения вакансии")
	}
	if rec == nil {
		return view, apperror.ErrNotFound
	}
	return vacancyapimodels.VacancyConvert(*rec), nil
}

func (i impl) List(spaceID string) (list []vacancyapimodels.VacancyView, err error) {
	recList, err := i.store.List(spaceID)
	if err != nil {
		log.
			WithField("space_id", spaceID).
			WithError(err).
			Error("Ошибка получения списка вакансий")
		return nil, errors.Wrap(err, "Ошибка получения списка вакансий")
	}
	list = make([]vacancyapimodels.VacancyView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, vacancyapimodels.VacancyConvert(rec))
	}
	return list, nil
}
