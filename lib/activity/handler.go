package activityhandler

import (
	"fmt"

	"recruit-flow-backend/config"
	"recruit-flow-backend/db"
	candidateactivitystore "recruit-flow-backend/lib/activity/candidate-activity-store"
	activitystore "recruit-flow-backend/lib/activity/store"
	candidatehistoryhandler "recruit-flow-backend/lib/candidate-history"
	candidatestore "recruit-flow-backend/lib/candidate/store"
	examattemptstore "recruit-flow-backend/lib/exam/attempt-store"
	"recruit-flow-backend/lib/exam/grading"
	examstore "recruit-flow-backend/lib/exam/store"
	"recruit-flow-backend/lib/smtp"
	pushhandler "recruit-flow-backend/lib/space/push/handler"
	"recruit-flow-backend/lib/utils/apperror"
	"recruit-flow-backend/models"
	activityapimodels "recruit-flow-backend/models/api/activity"
	dbmodels "recruit-flow-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(spaceID, userID string, data activityapimodels.ActivityData) (id string, err error)
	Update(spaceID, id string, data activityapimodels.ActivityData) error
	GetByID(spaceID, id string) (view activityapimodels.ActivityView, err error)
	ListByStage(spaceID, stageID string) (list []activityapimodels.ActivityView, err error)
	Delete(spaceID, id string) error
	Assign(spaceID, userID, activityID string, data activityapimodels.ActivityAssign) error
	SetStatus(spaceID, userID, candidateActivityID string, data activityapimodels.StatusData) error
	SetResult(spaceID, userID, candidateActivityID string, data activityapimodels.ResultData) error
	SetNote(spaceID, candidateActivityID string, data activityapimodels.NoteData) error
	SetInterview(spaceID, candidateActivityID string, data activityapimodels.InterviewData) error
	ConfirmInterview(spaceID, candidateActivityID string) error
	ListByCandidate(spaceID, candidateID string) (list []activityapimodels.CandidateActivityView, err error)
	ConvertList(spaceID string, recList []dbmodels.CandidateActivity) (list []activityapimodels.CandidateActivityView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:          activitystore.NewInstance(db.DB),
		caStore:        candidateactivitystore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
		examStore:      examstore.NewInstance(db.DB),
		attemptStore:   examattemptstore.NewInstance(db.DB),
	}
}

type impl struct {
	store          activitystore.Provider
	caStore        candidateactivitystore.Provider
	candidateStore candidatestore.Provider
	examStore      examstore.Provider
	attemptStore   examattemptstore.Provider
}

func (i impl) getLogger(spaceID, id string) *log.Entry {
	logger := log.WithField("space_id", spaceID)
	if id != "" {
		logger = logger.WithField("activity_id", id)
	}
	return logger
}

func (i impl) Create(spaceID, userID string, data activityapimodels.ActivityData) (id string, err error) {
	logger := i.getLogger(spaceID, "").
		WithField("vacancy_id", data.VacancyID).
		WithField("stage_id", data.StageID)
	rec := dbmodels.Activity{
		BaseSpaceModel: dbmodels.BaseSpaceModel{
			SpaceID: spaceID,
		},
		VacancyID:   data.VacancyID,
		StageID:     data.StageID,
		Type:        data.Type,
		Name:        data.Name,
		Description: data.Description,
		CreatedBy:   userID,
	}
	if data.Type == models.ActivityTypeTest {
		examRec, err := i.examStore.GetByID(spaceID, data.ExamID)
		if err != nil {
			logger.WithError(err).Error("Ошибка получения теста")
			return "", errors.Wrap(err, "Ошибка получения теста")
		}
		if examRec == nil {
			return "", apperror.NewValidation("указанный тест не найден")
		}
		rec.ExamID = &data.ExamID
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("Ошибка создания активности")
		return "", errors.Wrap(err, "Ошибка создания активности")
	}
	return id, nil
}

// Update меняет название и описание. Тип активности после создания не меняется
func (i impl) Update(spaceID, id string, data activityapimodels.ActivityData) error {
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		i.getLogger(spaceID, id).WithError(err).Error("Ошибка получения активности")
		return errors.Wrap(err, "Ошибка получения активности")
	}
	if rec == nil {
		return apperror.ErrNotFound
	}
	if data.Type != "" && data.Type != rec.Type {
		return apperror.NewValidation("тип активности изменить нельзя")
	}
	updMap := map[string]interface{}{
		"name":        data.Name,
		"description": data.Description,
	}
	err = i.store.Update(spaceID, id, updMap)
	if err != nil {
		i.getLogger(spaceID, id).WithError(err).Error("Ошибка изменения активности")
		return errors.Wrap(err, "Ошибка изменения активности")
	}
	return nil
}

func (i impl) GetByID(spaceID, id string) (view activityapimodels.ActivityView, err error) {
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		i.getLogger(spaceID, id).WithError(err).Error("Ошибка получения активности")
		return view, errors.Wrap(err, "Ошибка получения активности")
	}
	if rec == nil {
		return view, apperror.ErrNotFound
	}
	return activityapimodels.ActivityConvert(*rec), nil
}

func (i impl) ListByStage(spaceID, stageID string) (list []activityapimodels.ActivityView, err error) {
	recList, err := i.store.ListByStage(spaceID, stageID)
	if err != nil {
		i.getLogger(spaceID, "").
			WithField("stage_id", stageID).
			WithError(err).
			Error("Ошибка получения списка активностей")
		return nil, errors.Wrap(err, "Ошибка получения списка активностей")
	}
	list = make([]activityapimodels.ActivityView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, activityapimodels.ActivityConvert(rec))
	}
	return list, nil
}

// Delete удаляет активность, если по ней нет записей по кандидатам
func (i impl) Delete(spaceID, id string) error {
	caList, err := i.caStore.ListByActivity(spaceID, id)
	if err != nil {
		i.getLogger(spaceID, id).WithError(err).Error("Ошибка проверки активности перед удалением")
		return errors.Wrap(err, "Ошибка проверки активности перед удалением")
	}
	if len(caList) > 0 {
		return apperror.NewValidation("Нельзя удалить активность, назначенную кандидатам")
	}
	err = i.store.Delete(spaceID, id)
	if err != nil {
		i.getLogger(spaceID, id).WithError(err).Error("Ошибка удаления активности")
		return errors.Wrap(err, "Ошибка удаления активности")
	}
	return nil
}

// Assign создает экземпляры активности по кандидатам.
// Повторное назначение той же пары (активность, кандидат) пропускается
func (i impl) Assign(spaceID, userID, activityID string, data activityapimodels.ActivityAssign) error {
	logger := i.getLogger(spaceID, activityID)
	activityRec, err := i.store.GetByID(spaceID, activityID)
	if err != nil {
		logger.WithError(err).Error("Ошибка получения активности")
		return errors.Wrap(err, "Ошибка получения активности")
	}
	if activityRec == nil {
		return apperror.ErrNotFound
	}
	for _, candidateID := range data.CandidateIDs {
		candidateRec, err := i.candidateStore.GetByID(spaceID, candidateID)
		if err != nil {
			logger.WithError(err).Error("Ошибка получения кандидата")
			return errors.Wrap(err, "Ошибка получения кандидата")
		}
		if candidateRec == nil {
			return apperror.NewValidation(fmt.Sprintf("кандидат %v не найден", candidateID))
		}
		existRec, err := i.caStore.Find(spaceID, candidateID, activityID)
		if err != nil {
			logger.WithError(err).Error("Ошибка проверки назначения активности")
			return errors.Wrap(err, "Ошибка проверки назначения активности")
		}
		if existRec != nil {
			continue
		}
		rec := dbmodels.CandidateActivity{
			BaseSpaceModel: dbmodels.BaseSpaceModel{
				SpaceID: spaceID,
			},
			CandidateID: candidateID,
			ActivityID:  activityID,
			Status:      models.ActivityStatusInProgress,
			Result:      models.ActivityResultPending,
		}
		_, err = i.caStore.Create(rec)
		if err != nil {
			logger.WithError(err).Error("Ошибка назначения активности кандидату")
			return errors.Wrap(err, "Ошибка назначения активности кандидату")
		}
	}
	return nil
}

func (i impl) SetStatus(spaceID, userID, candidateActivityID string, data activityapimodels.StatusData) error {
	logger := i.getLogger(spaceID, "").
		WithField("candidate_activity_id", candidateActivityID)
	rec, err := i.caStore.GetByID(spaceID, candidateActivityID)
	if err != nil {
		logger.WithError(err).Error("Ошибка получения активности кандидата")
		return errors.Wrap(err, "Ошибка получения активности кандидата")
	}
	if rec == nil {
		return apperror.ErrNotFound
	}
	err = i.caStore.Update(spaceID, candidateActivityID, map[string]interface{}{"status": data.Status})
	if err != nil {
		logger.WithError(err).Error("Ошибка изменения статуса активности")
		return errors.Wrap(err, "Ошибка изменения статуса активности")
	}
	activityName := ""
	vacancyID := ""
	if rec.Activity != nil {
		activityName = rec.Activity.Name
		vacancyID = rec.Activity.VacancyID
	}
	changes := candidatehistoryhandler.GetActivityStatusChange(activityName, data.Status)
	candidatehistoryhandler.Instance.Save(spaceID, rec.CandidateID, vacancyID, userID, dbmodels.HistoryTypeActivityStatus, changes)
	candidateName := ""
	if rec.Candidate != nil {
		candidateName = rec.Candidate.GetFIO()
	}
	pushhandler.Instance.SendToSpace(spaceID, models.PushActivityStatusChanged, activityName, candidateName, data.Status.ToHuman())
	return nil
}

func (i impl) SetResult(spaceID, userID, candidateActivityID string, data activityapimodels.ResultData) error {
	logger := i.getLogger(spaceID, "").
		WithField("candidate_activity_id", candidateActivityID)
	rec, err := i.caStore.GetByID(spaceID, candidateActivityID)
	if err != nil {
		logger.WithError(err).Error("Ошибка получения активности кандидата")
		return errors.Wrap(err, "Ошибка получения активности кандидата")
	}
	if rec == nil {
		return apperror.ErrNotFound
	}
	err = i.caStore.Update(spaceID, candidateActivityID, map[string]interface{}{"result": data.Result})
	if err != nil {
		logger.WithError(err).Error("Ошибка изменения итога активности")
		return errors.Wrap(err, "Ошибка изменения итога активности")
	}
	activityName := ""
	vacancyID := ""
	if rec.Activity != nil {
		activityName = rec.Activity.Name
		vacancyID = rec.Activity.VacancyID
	}
	changes := candidatehistoryhandler.GetActivityResultChange(activityName, data.Result)
	candidatehistoryhandler.Instance.Save(spaceID, rec.CandidateID, vacancyID, userID, dbmodels.HistoryTypeActivityResult, changes)
	return nil
}

func (i impl) SetNote(spaceID, candidateActivityID string, data activityapimodels.NoteData) error {
	err := i.caStore.Update(spaceID, candidateActivityID, map[string]interface{}{"note_result": data.NoteResult})
	if err != nil {
		i.getLogger(spaceID, "").
			WithField("candidate_activity_id", candidateActivityID).
			WithError(err).
			Error("Ошибка сохранения комментария по активности")
		return errors.Wrap(err, "Ошибка сохранения комментария по активности")
	}
	return nil
}

// SetInterview назначает интервью и отправляет кандидату приглашение на почту
func (i impl) SetInterview(spaceID, candidateActivityID string, data activityapimodels.InterviewData) error {
	logger := i.getLogger(spaceID, "").
		WithField("candidate_activity_id", candidateActivityID)
	rec, err := i.caStore.GetByID(spaceID, candidateActivityID)
	if err != nil {
		logger.WithError(err).Error("Ошибка получения активности кандидата")
		return errors.Wrap(err, "Ошибка получения активности кандидата")
	}
	if rec == nil {
		return apperror.ErrNotFound
	}
	if rec.Activity == nil || rec.Activity.Type != models.ActivityTypeInterview {
		return apperror.NewValidation("интервью назначается только для активности типа interview")
	}
	updMap := map[string]interface{}{
		"interview_date":      data.InterviewDate,
		"interview_link":      data.InterviewLink,
		"interview_location":  data.InterviewLocation,
		"interview_confirmed": false,
	}
	err = i.caStore.Update(spaceID, candidateActivityID, updMap)
	if err != nil {
		logger.WithError(err).Error("Ошибка назначения интервью")
		return errors.Wrap(err, "Ошибка назначения интервью")
	}
	if rec.Candidate != nil && rec.Candidate.Email != "" {
		msg := fmt.Sprintf("Здравствуйте, %v!\nВы приглашены на интервью «%v» %v.",
			rec.Candidate.GetFIO(), rec.Activity.Name, data.InterviewDate.Format("02.01.2006 15:04"))
		if data.InterviewLink != "" {
			msg += fmt.Sprintf("\nСсылка: %v", data.InterviewLink)
		}
		if data.InterviewLocation != "" {
			msg += fmt.Sprintf("\nМесто проведения: %v", data.InterviewLocation)
		}
		err = smtp.Instance.SendEMail(config.Conf.Smtp.User, rec.Candidate.Email, msg, "Приглашение на интервью")
		if err != nil {
			logger.WithError(err).Error("Ошибка отправки приглашения на интервью")
		}
	}
	return nil
}

func (i impl) ConfirmInterview(spaceID, candidateActivityID string) error {
	err := i.caStore.Update(spaceID, candidateActivityID, map[string]interface{}{"interview_confirmed": true})
	if err != nil {
		i.getLogger(spaceID, "").
			WithField("candidate_activity_id", candidateActivityID).
			WithError(err).
			Error("Ошибка подтверждения интервью")
		return errors.Wrap(err, "Ошибка подтверждения интервью")
	}
	return nil
}

func (i impl) ListByCandidate(spaceID, candidateID string) (list []activityapimodels.CandidateActivityView, err error) {
	recList, err := i.caStore.ListByCandidate(spaceID, candidateID)
	if err != nil {
		i.getLogger(spaceID, "").
			WithField("candidate_id", candidateID).
			WithError(err).
			Error("Ошибка получения активностей кандидата")
		return nil, errors.Wrap(err, "Ошибка получения активностей кандидата")
	}
	return i.ConvertList(spaceID, recList)
}

// ConvertList собирает представления активностей кандидата,
// для активностей типа test дополнительно подтягивается итог по тесту
func (i impl) ConvertList(spaceID string, recList []dbmodels.CandidateActivity) (list []activityapimodels.CandidateActivityView, err error) {
	list = make([]activityapimodels.CandidateActivityView, 0, len(recList))
	for _, rec := range recList {
		view := activityapimodels.CandidateActivityConvert(rec)
		if rec.Activity != nil && rec.Activity.Type == models.ActivityTypeTest {
			summary, err := i.buildExamSummary(spaceID, rec)
			if err != nil {
				return nil, err
			}
			view.Exam = summary
		}
		list = append(list, view)
	}
	return list, nil
}

func (i impl) buildExamSummary(spaceID string, rec dbmodels.CandidateActivity) (*activityapimodels.ExamSummary, error) {
	if rec.Activity == nil || rec.Activity.ExamID == nil {
		return nil, nil
	}
	attempt, err := i.attemptStore.FindByCandidateActivity(spaceID, rec.ID)
	if err != nil {
		i.getLogger(spaceID, rec.ActivityID).
			WithError(err).
			Error("Ошибка получения попытки теста")
		return nil, errors.Wrap(err, "Ошибка получения попытки теста")
	}
	summary := activityapimodels.ExamSummary{
		ExamID: *rec.Activity.ExamID,
	}
	if rec.Activity.Exam != nil {
		summary.Title = rec.Activity.Exam.Title
	}
	if attempt == nil {
		return &summary, nil
	}
	if summary.Title == "" && attempt.Exam != nil {
		summary.Title = attempt.Exam.Title
	}
	summary.IsSubmitted = attempt.IsSubmitted
	summary.IsGraded = attempt.IsGraded
	summary.TotalScore = attempt.TotalScore
	summary.CorrectCount = attempt.CorrectCount
	if attempt.IsSubmitted {
		timeTaken := grading.TimeTakenMinutes(attempt.StartedAt, attempt.SubmittedAt)
		summary.TimeTaken = &timeTaken
	}
	if attempt.IsGraded && attempt.Exam != nil {
		summary.Passed = grading.Passed(attempt.TotalScore, attempt.Exam.PassingScore)
	}
	return &summary, nil
}
