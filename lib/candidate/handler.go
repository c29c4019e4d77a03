package candidatehandler

import (
	"recruit-flow-backend/db"
	candidateactivitystore "recruit-flow-backend/lib/activity/candidate-activity-store"
	candidatehistoryhandler "recruit-flow-backend/lib/candidate-history"
	candidatestore "recruit-flow-backend/lib/candidate/store"
	pushhandler "recruit-flow-backend/lib/space/push/handler"
	selectionstagestore "recruit-flow-backend/lib/stage/store"
	"recruit-flow-backend/lib/utils/apperror"
	"recruit-flow-backend/models"
	candidateapimodels "recruit-flow-backend/models/api/candidate"
	dbmodels "recruit-flow-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(spaceID, userID string, data candidateapimodels.CandidateData) (id string, err error)
	Update(spaceID, userID, id string, data candidateapimodels.CandidateData) error
	GetByID(spaceID, id string) (view candidateapimodels.CandidateView, err error)
	List(spaceID string, filter candidateapimodels.CandidateFilter) (list []candidateapimodels.CandidateView, rowCount int64, err error)
	UpdateStatus(spaceID, userID, id string, data candidateapimodels.CandidateStatusData) error
	ChangeStage(spaceID, userID, id, stageID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         candidatestore.NewInstance(db.DB),
		stageStore:    selectionstagestore.NewInstance(db.DB),
		activityStore: candidateactivitystore.NewInstance(db.DB),
	}
}

type impl struct {
	store         candidatestore.Provider
	stageStore    selectionstagestore.Provider
	activityStore candidateactivitystore.Provider
}

func (i impl) getLogger(spaceID, candidateID string) *log.Entry {
	logger := log.WithField("space_id", spaceID)
	if candidateID != "" {
		logger = logger.WithField("candidate_id", candidateID)
	}
	return logger
}

func (i impl) Create(spaceID, userID string, data candidateapimodels.CandidateData) (id string, err error) {
	logger := i.getLogger(spaceID, "").
		WithField("vacancy_id", data.VacancyID)
	rec := dbmodels.Candidate{
		BaseSpaceModel: dbmodels.BaseSpaceModel{
			SpaceID: spaceID,
		},
		VacancyID:  data.VacancyID,
		Status:     models.CandidateStatusPending,
		FirstName:  data.FirstName,
		LastName:   data.LastName,
		MiddleName: data.MiddleName,
		Phone:      data.Phone,
		Email:      data.Email,
		Salary:     data.Salary,
		Comment:    data.Comment,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("Ошибка создания кандидата")
		return "", errors.Wrap(err, "Ошибка создания кандидата")
	}
	rec.ID = id
	changes := candidatehistoryhandler.GetCreateChanges("Кандидат добавлен", rec)
	candidatehistoryhandler.Instance.Save(spaceID, id, data.VacancyID, userID, dbmodels.HistoryTypeAdded, changes)
	return id, nil
}

func (i impl) Update(spaceID, userID, id string, data candidateapimodels.CandidateData) error {
	logger := i.getLogger(spaceID, id)
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		logger.WithError(err).Error("Ошибка получения кандидата")
		return errors.Wrap(err, "Ошибка получения кандидата")
	}
	if rec == nil {
		return apperror.ErrNotFound
	}
	updMap := map[string]interface{}{
		"first_name":  data.FirstName,
		"last_name":   data.LastName,
		"middle_name": data.MiddleName,
		"phone":       data.Phone,
		"email":       data.Email,
		"salary":      data.Salary,
		"comment":     data.Comment,
	}
	err = i.store.Update(spaceID, id, updMap)
	if err != nil {
		logger.WithError(err).Error("Ошибка изменения кандидата")
		return errors.Wrap(err, "Ошибка изменения кандидата")
	}
	changes := candidatehistoryhandler.GetUpdateChanges("Данные кандидата изменены", *rec, updMap)
	candidatehistoryhandler.Instance.Save(spaceID, id, rec.VacancyID, userID, dbmodels.HistoryTypeUpdate, changes)
	return nil
}

func (i impl) GetByID(spaceID, id string) (view candidateapimodels.CandidateView, err error) {
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		i.getLogger(spaceID, id).WithError(err).Error("Ошибка получения кандидата")
		return view, errors.Wrap(err, "Ошибка получения кандидата")
	}
	if rec == nil {
		return view, apperror.ErrNotFound
	}
	return candidateapimodels.CandidateConvert(*rec), nil
}

func (i impl) List(spaceID string, filter candidateapimodels.CandidateFilter) (list []candidateapimodels.CandidateView, rowCount int64, err error) {
	page, limit := filter.GetPage()
	dbFilter := dbmodels.CandidateFilter{
		VacancyID: filter.VacancyID,
		StageID:   filter.StageID,
		Search:    filter.Search,
	}
	recList, rowCount, err := i.store.List(spaceID, dbFilter, page, limit)
	if err != nil {
		i.getLogger(spaceID, "").WithError(err).Error("Ошибка получения списка кандидатов")
		return nil, 0, errors.Wrap(err, "Ошибка получения списка кандидатов")
	}
	list = make([]candidateapimodels.CandidateView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, candidateapimodels.CandidateConvert(rec))
	}
	return list, rowCount, nil
}

// UpdateStatus меняет статус кандидата в воронке.
// Отклонение требует указания причины
func (i impl) UpdateStatus(spaceID, userID, id string, data candidateapimodels.CandidateStatusData) error {
	logger := i.getLogger(spaceID, id)
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		logger.WithError(err).Error("Ошибка получения кандидата")
		return errors.Wrap(err, "Ошибка получения кандидата")
	}
	if rec == nil {
		return apperror.ErrNotFound
	}
	err = rec.IsAllowStatusChange(data.Status, data.RejectReason)
	if err != nil {
		return apperror.NewValidation(err.Error())
	}
	updMap := map[string]interface{}{
		"status":        data.Status,
		"reject_reason": data.RejectReason,
	}
	err = i.store.Update(spaceID, id, updMap)
	if err != nil {
		logger.WithError(err).Error("Ошибка изменения статуса кандидата")
		return errors.Wrap(err, "Ошибка изменения статуса кандидата")
	}
	if data.Status == models.CandidateStatusReject {
		changes := candidatehistoryhandler.GetRejectChange(data.RejectReason)
		candidatehistoryhandler.Instance.Save(spaceID, id, rec.VacancyID, userID, dbmodels.HistoryTypeReject, changes)
		vacancyName := ""
		if rec.Vacancy != nil {
			vacancyName = rec.Vacancy.VacancyName
		}
		pushhandler.Instance.SendToSpace(spaceID, models.PushCandidateRejected, rec.GetFIO(), vacancyName, data.RejectReason)
		return nil
	}
	changes := candidatehistoryhandler.GetStatusChange(data.Status)
	candidatehistoryhandler.Instance.Save(spaceID, id, rec.VacancyID, userID, dbmodels.HistoryTypeUpdate, changes)
	return nil
}

// ChangeStage переводит кандидата на другой этап.
// Перевод разрешен, только если все активности текущего этапа завершены.
// Проверка и смена этапа выполняются в одной транзакции
func (i impl) ChangeStage(spaceID, userID, id, stageID string) error {
	logger := i.getLogger(spaceID, id).
		WithField("stage_id", stageID)
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		logger.WithError(err).Error("Ошибка получения кандидата")
		return errors.Wrap(err, "Ошибка получения кандидата")
	}
	if rec == nil {
		return apperror.ErrNotFound
	}
	var stageRec *dbmodels.SelectionStage
	if stageID != "" {
		stageRec, err = i.stageStore.GetByID(spaceID, stageID)
		if err != nil {
			logger.WithError(err).Error("Ошибка получения этапа подбора")
			return errors.Wrap(err, "Ошибка получения этапа подбора")
		}
		if stageRec == nil {
			return apperror.ErrNotFound
		}
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if rec.StageID != nil {
			activities, txErr := i.activityStore.WithTx(tx).ListByCandidateStage(spaceID, id, *rec.StageID)
			if txErr != nil {
				return txErr
			}
			if !CanMove(activities) {
				return apperror.NewTransitionDenied("Не все активности текущего этапа завершены")
			}
		}
		var newStageID *string
		if stageID != "" {
			newStageID = &stageID
		}
		return candidatestore.NewInstance(tx).Update(spaceID, id, map[string]interface{}{"stage_id": newStageID})
	})
	if err != nil {
		if apperror.IsTransitionDenied(err) {
			return err
		}
		logger.WithError(err).Error("Ошибка перевода кандидата на этап")
		return errors.Wrap(err, "Ошибка перевода кандидата на этап")
	}

	stageName := "без этапа"
	if stageRec != nil {
		stageName = stageRec.Name
	}
	changes := candidatehistoryhandler.GetStageChange(stageName)
	candidatehistoryhandler.Instance.Save(spaceID, id, rec.VacancyID, userID, dbmodels.HistoryTypeStageChange, changes)
	vacancyName := ""
	if rec.Vacancy != nil {
		vacancyName = rec.Vacancy.VacancyName
	}
	pushhandler.Instance.SendToSpace(spaceID, models.PushCandidateNewStage, rec.GetFIO(), stageName, vacancyName)
	return nil
}
