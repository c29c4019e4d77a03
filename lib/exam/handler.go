package examhandler

import (
	"time"

	"recruit-flow-backend/db"
	candidateactivitystore "recruit-flow-backend/lib/activity/candidate-activity-store"
	candidatehistoryhandler "recruit-flow-backend/lib/candidate-history"
	examattemptstore "recruit-flow-backend/lib/exam/attempt-store"
	"recruit-flow-backend/lib/exam/grading"
	examstore "recruit-flow-backend/lib/exam/store"
	pushhandler "recruit-flow-backend/lib/space/push/handler"
	"recruit-flow-backend/lib/utils/apperror"
	"recruit-flow-backend/models"
	examapimodels "recruit-flow-backend/models/api/exam"
	dbmodels "recruit-flow-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(spaceID string, data examapimodels.ExamData) (id string, err error)
	Update(spaceID, id string, data examapimodels.ExamData) error
	GetByID(spaceID, id string) (view examapimodels.ExamView, err error)
	List(spaceID string) (list []examapimodels.ExamView, err error)
	StartAttempt(spaceID, examID string, data examapimodels.AttemptStartData) (view examapimodels.AttemptView, err error)
	SubmitAttempt(spaceID, attemptID string, data examapimodels.AttemptSubmitData) error
	GetAttempt(spaceID, attemptID string) (view examapimodels.AttemptView, err error)
	SaveGrading(spaceID, userID, attemptID string, data examapimodels.GradingData) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:        examstore.NewInstance(db.DB),
		attemptStore: examattemptstore.NewInstance(db.DB),
		caStore:      candidateactivitystore.NewInstance(db.DB),
	}
}

type impl struct {
	store        examstore.Provider
	attemptStore examattemptstore.Provider
	caStore      candidateactivitystore.Provider
}

func (i impl) getLogger(spaceID, id string) *log.Entry {
	logger := log.WithField("space_id", spaceID)
	if id != "" {
		logger = logger.WithField("exam_id", id)
	}
	return logger
}

func (i impl) Create(spaceID string, data examapimodels.ExamData) (id string, err error) {
	logger := i.getLogger(spaceID, "")
	rec := dbmodels.Exam{
		BaseSpaceModel: dbmodels.BaseSpaceModel{
			SpaceID: spaceID,
		},
		Title:         data.Title,
		Code:          data.Code,
		Duration:      data.Duration,
		QuestionCount: len(data.Questions),
		PassingScore:  data.PassingScore,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("Ошибка создания теста")
		return "", errors.Wrap(err, "Ошибка создания теста")
	}
	err = i.saveQuestions(spaceID, id, data.Questions)
	if err != nil {
		logger.WithError(err).Error("Ошибка сохранения вопросов теста")
		return "", errors.Wrap(err, "Ошибка сохранения вопросов теста")
	}
	return id, nil
}

// Update пересоздает вопросы целиком, частичное изменение вопросов не поддерживается
func (i impl) Update(spaceID, id string, data examapimodels.ExamData) error {
	logger := i.getLogger(spaceID, id)
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		logger.WithError(err).Error("Ошибка получения теста")
		return errors.Wrap(err, "Ошибка получения теста")
	}
	if rec == nil {
		return apperror.ErrNotFound
	}
	updMap := map[string]interface{}{
		"title":          data.Title,
		"code":           data.Code,
		"duration":       data.Duration,
		"question_count": len(data.Questions),
		"passing_score":  data.PassingScore,
	}
	err = i.store.Update(spaceID, id, updMap)
	if err != nil {
		logger.WithError(err).Error("Ошибка изменения теста")
		return errors.Wrap(err, "Ошибка изменения теста")
	}
	err = i.store.DeleteQuestions(spaceID, id)
	if err != nil {
		logger.WithError(err).Error("Ошибка удаления вопросов теста")
		return errors.Wrap(err, "Ошибка удаления вопросов теста")
	}
	err = i.saveQuestions(spaceID, id, data.Questions)
	if err != nil {
		logger.WithError(err).Error("Ошибка сохранения вопросов теста")
		return errors.Wrap(err, "Ошибка сохранения вопросов теста")
	}
	return nil
}

func (i impl) saveQuestions(spaceID, examID string, questions []examapimodels.QuestionData) error {
	for idx, q := range questions {
		rec := dbmodels.ExamQuestion{
			BaseSpaceModel: dbmodels.BaseSpaceModel{
				SpaceID: spaceID,
			},
			ExamID:        examID,
			QuestionOrder: idx + 1,
			Type:          q.Type,
			Content:       q.Content,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		}
		_, err := i.store.SaveQuestion(rec)
		if err != nil {
			return err
		}
	}
	return nil
}

func (i impl) GetByID(spaceID, id string) (view examapimodels.ExamView, err error) {
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		i.getLogger(spaceID, id).WithError(err).Error("Ошибка получения теста")
		return view, errors.Wrap(err, "Ошибка получения теста")
	}
	if rec == nil {
		return view, apperror.ErrNotFound
	}
	return examapimodels.ExamConvert(*rec), nil
}

func (i impl) List(spaceID string) (list []examapimodels.ExamView, err error) {
	recList, err := i.store.List(spaceID)
	if err != nil {
		i.getLogger(spaceID, "").WithError(err).Error("Ошибка получения списка тестов")
		return nil, errors.Wrap(err, "Ошибка получения списка тестов")
	}
	list = make([]examapimodels.ExamView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, examapimodels.ExamConvert(rec))
	}
	return list, nil
}

func (i impl) StartAttempt(spaceID, examID string, data examapimodels.AttemptStartData) (view examapimodels.AttemptView, err error) {
	logger := i.getLogger(spaceID, examID).
		WithField("candidate_id", data.CandidateID)
	examRec, err := i.store.GetByID(spaceID, examID)
	if err != nil {
		logger.WithError(err).Error("Ошибка получения теста")
		return view, errors.Wrap(err, "Ошибка получения теста")
	}
	if examRec == nil {
		return view, apperror.ErrNotFound
	}
	rec := dbmodels.ExamAttempt{
		BaseSpaceModel: dbmodels.BaseSpaceModel{
			SpaceID: spaceID,
		},
		ExamID:              examID,
		CandidateID:         data.CandidateID,
		CandidateActivityID: data.CandidateActivityID,
		Answers:             dbmodels.AnswerMap{},
		Scores:              dbmodels.ScoreMap{},
		Ticks:               dbmodels.TickMap{},
		StartedAt:           time.Now(),
	}
	id, err := i.attemptStore.Create(rec)
	if err != nil {
		logger.WithError(err).Error("Ошибка создания попытки теста")
		return view, errors.Wrap(err, "Ошибка создания попытки теста")
	}
	rec.ID = id
	rec.Exam = examRec
	return i.convertAttempt(rec, false), nil
}

func (i impl) SubmitAttempt(spaceID, attemptID string, data examapimodels.AttemptSubmitData) error {
	logger := i.getLogger(spaceID, "").
		WithField("attempt_id", attemptID)
	rec, err := i.attemptStore.GetByID(spaceID, attemptID)
	if err != nil {
		logger.WithError(err).Error("Ошибка получения попытки теста")
		return errors.Wrap(err, "Ошибка получения попытки теста")
	}
	if rec == nil {
		return apperror.ErrNotFound
	}
	if rec.IsSubmitted {
		return apperror.NewValidation("ответы по попытке уже отправлены")
	}
	answers := dbmodels.AnswerMap{}
	for questionID, answer := range data.Answers {
		answers[questionID] = answer
	}
	updMap := map[string]interface{}{
		"answers":      answers,
		"is_submitted": true,
		"submitted_at": time.Now(),
	}
	err = i.attemptStore.Update(spaceID, attemptID, updMap)
	if err != nil {
		logger.WithError(err).Error("Ошибка сохранения ответов")
		return errors.Wrap(err, "Ошибка сохранения ответов")
	}
	return nil
}

func (i impl) GetAttempt(spaceID, attemptID string) (view examapimodels.AttemptView, err error) {
	rec, err := i.attemptStore.GetByID(spaceID, attemptID)
	if err != nil {
		i.getLogger(spaceID, "").
			WithField("attempt_id", attemptID).
			WithError(err).
			Error("Ошибка получения попытки теста")
		return view, errors.Wrap(err, "Ошибка получения попытки теста")
	}
	if rec == nil {
		return view, apperror.ErrNotFound
	}
	return i.convertAttempt(*rec, true), nil
}

// SaveGrading сохраняет итог проверки теста.
// Итог пересчитывается на сервере, значения с клиента только сверяются
func (i impl) SaveGrading(spaceID, userID, attemptID string, data examapimodels.GradingData) error {
	logger := i.getLogger(spaceID, "").
		WithField("attempt_id", attemptID)
	rec, err := i.attemptStore.GetByID(spaceID, attemptID)
	if err != nil {
		logger.WithError(err).Error("Ошибка получения попытки теста")
		return errors.Wrap(err, "Ошибка получения попытки теста")
	}
	if rec == nil {
		return apperror.ErrNotFound
	}
	if !rec.IsSubmitted {
		return apperror.NewValidation("попытка еще не отправлена на проверку")
	}
	if rec.Exam == nil {
		return apperror.NewValidation("тест попытки не найден")
	}

	session := grading.NewSession(data.Mode)
	switch data.Mode {
	case models.GradingModeManual:
		for questionID, score := range data.Scores {
			err = session.SetManualScore(questionID, score)
			if err != nil {
				return err
			}
		}
	case models.GradingModeTick:
		for questionID, mark := range data.Ticks {
			session.Toggle(questionID, mark)
		}
	}
	total, correctCount := session.Totals(rec.Exam.QuestionCount)
	err = grading.ValidateTotal(total)
	if err != nil {
		return err
	}
	if data.TotalScore != nil && grading.Round2(*data.TotalScore) != total {
		return apperror.NewValidation("итоговый балл с клиента не совпадает с расчетом")
	}
	if data.CorrectCount != nil && *data.CorrectCount != correctCount {
		return apperror.NewValidation("количество верных ответов с клиента не совпадает с расчетом")
	}

	updMap := map[string]interface{}{
		"is_graded":     true,
		"grading_mode":  data.Mode,
		"scores":        dbmodels.ScoreMap(session.Scores),
		"ticks":         dbmodels.TickMap(session.Ticks),
		"total_score":   total,
		"correct_count": correctCount,
		"graded_by":     userID,
		"graded_at":     time.Now(),
	}
	err = i.attemptStore.Update(spaceID, attemptID, updMap)
	if err != nil {
		logger.WithError(err).Error("Ошибка сохранения итога проверки")
		return errors.Wrap(err, "Ошибка сохранения итога проверки")
	}

	passed := grading.Passed(total, rec.Exam.PassingScore)
	i.applyGradingResult(spaceID, userID, *rec, total, passed)
	return nil
}

// Итог переносится на активность кандидата: статус завершен,
// результат pass/fail заполняется только при заданном проходном балле
func (i impl) applyGradingResult(spaceID, userID string, rec dbmodels.ExamAttempt, total float64, passed *bool) {
	logger := i.getLogger(spaceID, rec.ExamID).
		WithField("attempt_id", rec.ID)
	if rec.CandidateActivityID != "" {
		updMap := map[string]interface{}{
			"status": models.ActivityStatusCompleted,
		}
		if passed != nil {
			if *passed {
				updMap["result"] = models.ActivityResultPass
			} else {
				updMap["result"] = models.ActivityResultFail
			}
		}
		err := i.caStore.Update(spaceID, rec.CandidateActivityID, updMap)
		if err != nil {
			logger.WithError(err).Error("Ошибка обновления активности кандидата по итогу теста")
		}
	}
	examName := ""
	if rec.Exam != nil {
		examName = rec.Exam.Title
	}
	vacancyID := ""
	candidateName := ""
	if rec.Candidate != nil {
		vacancyID = rec.Candidate.VacancyID
		candidateName = rec.Candidate.GetFIO()
	}
	changes := candidatehistoryhandler.GetExamGradedChange(examName, total, passed)
	candidatehistoryhandler.Instance.Save(spaceID, rec.CandidateID, vacancyID, userID, dbmodels.HistoryTypeExamGraded, changes)
	pushhandler.Instance.SendToSpace(spaceID, models.PushExamGraded, examName, candidateName, total)
}

func (i impl) convertAttempt(rec dbmodels.ExamAttempt, withQuestions bool) examapimodels.AttemptView {
	view := examapimodels.AttemptView{
		ID:           rec.ID,
		ExamID:       rec.ExamID,
		CandidateID:  rec.CandidateID,
		IsSubmitted:  rec.IsSubmitted,
		IsGraded:     rec.IsGraded,
		GradingMode:  rec.GradingMode,
		Scores:       rec.Scores,
		Ticks:        rec.Ticks,
		TotalScore:   rec.TotalScore,
		CorrectCount: rec.CorrectCount,
		StartedAt:    rec.StartedAt,
	}
	if rec.IsSubmitted {
		submittedAt := rec.SubmittedAt
		view.SubmittedAt = &submittedAt
		timeTaken := grading.TimeTakenMinutes(rec.StartedAt, rec.SubmittedAt)
		view.TimeTaken = &timeTaken
	}
	if rec.IsGraded && rec.Exam != nil {
		view.Passed = grading.Passed(rec.TotalScore, rec.Exam.PassingScore)
	}
	if withQuestions && rec.Exam != nil {
		for _, q := range rec.Exam.Questions {
			view.Questions = append(view.Questions, examapimodels.QuestionView{
				ID:            q.ID,
				QuestionOrder: q.QuestionOrder,
				Type:          q.Type,
				Content:       q.Content,
				Options:       q.Options,
				CorrectAnswer: q.CorrectAnswer,
				Answer:        rec.Answers[q.ID],
			})
		}
	}
	return view
}
