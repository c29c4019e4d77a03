package candidatehistoryhandler

import (
	"recruit-flow-backend/db"
	candidatehistorystore "recruit-flow-backend/lib/candidate-history/store"
	candidatestore "recruit-flow-backend/lib/candidate/store"
	spaceusersstore "recruit-flow-backend/lib/space/users/store"
	"recruit-flow-backend/models"
	candidateapimodels "recruit-flow-backend/models/api/candidate"
	dbmodels "recruit-flow-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	List(spaceID, candidateID string, filter candidateapimodels.CandidateHistoryFilter) ([]candidateapimodels.CandidateHistoryView, int64, error)
	Save(spaceID, candidateID, vacancyID, userID string, action dbmodels.ActionType, changes dbmodels.CandidateChanges)
	SaveNote(spaceID, candidateID, userID string, note candidateapimodels.CandidateNote) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:          candidatehistorystore.NewInstance(db.DB),
		userStore:      spaceusersstore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
	}
}

type impl struct {
	store          candidatehistorystore.Provider
	userStore      spaceusersstore.Provider
	candidateStore candidatestore.Provider
}

func (i impl) List(spaceID, candidateID string, filter candidateapimodels.CandidateHistoryFilter) ([]candidateapimodels.CandidateHistoryView, int64, error) {
	rowCount, err := i.store.ListCount(spaceID, candidateID, filter)
	if err != nil {
		return nil, 0, err
	}

	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []candidateapimodels.CandidateHistoryView{}, rowCount, nil
	}

	list, err := i.store.List(spaceID, candidateID, filter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка действий")
		return nil, 0, errors.New("ошибка получения списка действий")
	}
	result := make([]candidateapimodels.CandidateHistoryView, 0, len(list))
	for _, rec := range list {
		result = append(result, candidateapimodels.HistoryConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) Save(spaceID, candidateID, vacancyID, userID string, action dbmodels.ActionType, changes dbmodels.CandidateChanges) {
	logger := log.WithField("space_id", spaceID).
		WithField("candidate_id", candidateID).
		WithField("vacancy_id", vacancyID).
		WithField("action", action).
		WithField("description", changes.Description)
	rec := dbmodels.CandidateHistory{
		BaseSpaceModel: dbmodels.BaseSpaceModel{
			SpaceID: spaceID,
		},
		CandidateID: candidateID,
		VacancyID:   vacancyID,
		ActionType:  action,
		Changes:     changes,
	}
	if userID != "" {
		rec.UserID = &userID
		user, err := i.userStore.GetByID(userID)
		if err != nil {
			logger.WithError(err).Error("ошибка сохранения истории действий по кандидату, не удалось получить автора изменений")
			return
		}
		if user == nil {
			logger.Error("ошибка сохранения истории действий по кандидату, автор изменений не найден")
			return
		}
		rec.UserName = user.GetFullName()
	} else {
		rec.UserName = models.SystemUser
	}
	_, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения истории действий по кандидату")
	}
}

func (i impl) SaveNote(spaceID, candidateID, userID string, note candidateapimodels.CandidateNote) error {
	logger := log.WithField("space_id", spaceID).
		WithField("candidate_id", candidateID).
		WithField("action", dbmodels.HistoryTypeComment).
		WithField("description", note.Note)

	candidateRec, err := i.candidateStore.GetByID(spaceID, candidateID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения кандидата")
		return errors.New("ошибка получения кандидата")
	}
	if candidateRec == nil {
		return errors.New("кандидат не найден")
	}
	logger = logger.WithField("vacancy_id", candidateRec.VacancyID)
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения комментария по кандидату, не удалось получить автора изменений")
		return errors.New("ошибка сохранения комментария по кандидату, не удалось получить автора изменений")
	}
	if user == nil {
		logger.Error("ошибка сохранения комментария по кандидату, автор изменений не найден")
		return errors.New("ошибка сохранения комментария по кандидату, автор изменений не найден")
	}

	rec := dbmodels.CandidateHistory{
		BaseSpaceModel: dbmodels.BaseSpaceModel{SpaceID: spaceID},
		CandidateID:    candidateID,
		VacancyID:      candidateRec.VacancyID,
		UserID:         &userID,
		UserName:       user.GetFullName(),
		ActionType:     dbmodels.HistoryTypeComment,
		Changes:        dbmodels.CandidateChanges{Description: note.Note},
	}
	_, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения комментария по кандидату")
		return errors.New("ошибка сохранения комментария по кандидату")
	}
	return nil
}
