package aicheckhandler

import (
	"fmt"

	"recruit-flow-backend/config"
	"recruit-flow-backend/db"
	yagptclient "recruit-flow-backend/lib/exam/ai-check/yagpt-client"
	examattemptstore "recruit-flow-backend/lib/exam/attempt-store"
	"recruit-flow-backend/lib/exam/grading"
	"recruit-flow-backend/lib/utils/apperror"
	"recruit-flow-backend/models"
	examapimodels "recruit-flow-backend/models/api/exam"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Подсказка проверяющему по текстовым ответам.
// Модель только предлагает балл, итоговую оценку выставляет человек

const suggestPromt = "Ты помогаешь рекрутеру проверять ответы кандидатов на вопросы теста. " +
	"Оцени ответ кандидата по шкале от 0 до %v и кратко обоснуй оценку."

type Provider interface {
	Suggest(spaceID, attemptID string, data examapimodels.AISuggestData) (view examapimodels.AISuggestView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		attemptStore: examattemptstore.NewInstance(db.DB),
	}
}

type impl struct {
	attemptStore examattemptstore.Provider
}

func (i impl) Suggest(spaceID, attemptID string, data examapimodels.AISuggestData) (view examapimodels.AISuggestView, err error) {
	logger := log.
		WithField("space_id", spaceID).
		WithField("attempt_id", attemptID).
		WithField("question_id", data.QuestionID)
	if config.Conf.YaGPT.Enabled == nil || !*config.Conf.YaGPT.Enabled {
		return view, apperror.NewValidation("проверка с помощью YandexGPT отключена")
	}
	rec, err := i.attemptStore.GetByID(spaceID, attemptID)
	if err != nil {
		logger.WithError(err).Error("Ошибка получения попытки теста")
		return view, errors.Wrap(err, "Ошибка получения попытки теста")
	}
	if rec == nil {
		return view, apperror.ErrNotFound
	}
	if !rec.IsSubmitted {
		return view, apperror.NewValidation("попытка еще не отправлена на проверку")
	}
	if rec.Exam == nil {
		return view, apperror.NewValidation("тест попытки не найден")
	}
	for _, q := range rec.Exam.Questions {
		if q.ID != data.QuestionID {
			continue
		}
		if q.Type != models.QuestionTypeText {
			return view, apperror.NewValidation("подсказка доступна только для текстовых вопросов")
		}
		text := fmt.Sprintf("Вопрос: %v\nЭталонный ответ: %v\nОтвет кандидата: %v",
			q.Content, q.CorrectAnswer, rec.Answers[q.ID])
		suggestion, err := yagptclient.
			NewClient(config.Conf.YaGPT.Token, config.Conf.YaGPT.Catalog).
			GenerateByPromtAndText(fmt.Sprintf(suggestPromt, grading.MaxQuestionScore), text)
		if err != nil {
			logger.WithError(err).Error("Ошибка получения подсказки через YandexGPT")
			return view, errors.Wrap(err, "Ошибка получения подсказки через YandexGPT")
		}
		view.QuestionID = q.ID
		view.Suggestion = suggestion
		return view, nil
	}
	return view, apperror.NewValidation("вопрос не найден в тесте попытки")
}
