package stagehandler

import (
	"recruit-flow-backend/db"
	candidatestore "recruit-flow-backend/lib/candidate/store"
	selectionstagestore "recruit-flow-backend/lib/stage/store"
	"recruit-flow-backend/lib/utils/apperror"
	stageapimodels "recruit-flow-backend/models/api/stage"
	dbmodels "recruit-flow-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(spaceID, vacancyID string, data stageapimodels.SelectionStageAdd) (id string, err error)
	Update(spaceID, vacancyID, id string, data stageapimodels.SelectionStageAdd) error
	List(spaceID, vacancyID string) (list []stageapimodels.SelectionStageView, err error)
	Delete(spaceID, vacancyID, id string) error
	InitDefault(spaceID, vacancyID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:          selectionstagestore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
	}
}

type impl struct {
	store          selectionstagestore.Provider
	candidateStore candidatestore.Provider
}

func (i impl) Create(spaceID, vacancyID string, data stageapimodels.SelectionStageAdd) (id string, err error) {
	logger := log.
		WithField("space_id", spaceID).
		WithField("vacancy_id", vacancyID)

	rec := dbmodels.SelectionStage{
		BaseSpaceModel: dbmodels.BaseSpaceModel{
			SpaceID: spaceID,
		},
		VacancyID: vacancyID,
		Name:      data.Name,
		Color:     data.Color,
		CanDelete: true,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.
			WithError(err).
			Error("Ошибка создания этапа подбора")
		return "", errors.Wrap(err, "Ошибка создания этапа подбора")
	}
	return id, nil
}

func (i impl) Update(spaceID, vacancyID, id string, data stageapimodels.SelectionStageAdd) error {
	updMap := map[string]interface{}{}
	if data.Name != "" {
		updMap["name"] = data.Name
	}
	if data.Color != "" {
		updMap["color"] = data.Color
	}
	err := i.store.Update(spaceID, vacancyID, id, updMap)
	if err != nil {
		log.
			WithField("space_id", spaceID).
			WithField("stage_id", id).
			WithError(err).
			Error("Ошибка изменения этапа подбора")
		return errors.Wrap(err, "Ошибка изменения этапа подбора")
	}
	return nil
}

func (i impl) List(spaceID, vacancyID string) (list []stageapimodels.SelectionStageView, err error) {
	recList, err := i.store.List(spaceID, vacancyID, false)
	if err != nil {
		log.
			WithField("space_id", spaceID).
			WithField("vacancy_id", vacancyID).
			WithError(err).
			Error("Ошибка получения списка этапов подбора")
		return nil, errors.Wrap(err, "Ошибка получения списка этапов подбора")
	}
	list = make([]stageapimodels.SelectionStageView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, stageapimodels.SelectionStageConvert(rec))
	}
	return list, nil
}

// Delete удаляет этап. Этап с прикрепленными кандидатами удалить нельзя
func (i impl) Delete(spaceID, vacancyID, id string) error {
	logger := log.
		WithField("space_id", spaceID).
		WithField("stage_id", id)

	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		logger.
			WithError(err).
			Error("Ошибка получения этапа подбора")
		return errors.Wrap(err, "Ошибка получения этапа подбора")
	}
	if rec == nil {
		return apperror.ErrNotFound
	}
	if !rec.CanDelete {
		return apperror.NewValidation("Нельзя удалить стандартный этап подбора")
	}
	count, err := i.candidateStore.CountByStage(spaceID, id)
	if err != nil {
		logger.
			WithError(err).
			Error("Ошибка проверки этапа подбора перед удалением")
		return errors.Wrap(err, "Ошибка проверки этапа подбора перед удалением")
	}
	if count > 0 {
		return apperror.NewValidation("Нельзя удалить этап, на котором есть кандидаты")
	}
	err = i.store.Delete(spaceID, vacancyID, id)
	if err != nil {
		logger.
			WithError(err).
			Error("Ошибка удаления этапа подбора")
		return errors.Wrap(err, "Ошибка удаления этапа подбора")
	}
	return nil
}

// InitDefault создает стандартный набор этапов для новой вакансии.
// Стандартные этапы удалить нельзя
func (i impl) InitDefault(spaceID, vacancyID string) error {
	for _, name := range dbmodels.DefaultSelectionStages {
		rec := dbmodels.SelectionStage{
			BaseSpaceModel: dbmodels.BaseSpaceModel{
				SpaceID: spaceID,
			},
			VacancyID: vacancyID,
			Name:      name,
		}
		_, err := i.store.Create(rec)
		if err != nil {
			log.
				WithField("space_id", spaceID).
				WithField("vacancy_id", vacancyID).
				WithError(err).
				Error("Ошибка создания стандартных этапов подбора")
			return errors.Wrap(err, "Ошибка создания стандартных этапов подбора")
		}
	}
	return nil
}
