package autocheckworker

import (
	"context"
	"time"

	"recruit-flow-backend/db"
	examattemptstore "recruit-flow-backend/lib/exam/attempt-store"
	"recruit-flow-backend/lib/exam/grading"
	baseworker "recruit-flow-backend/lib/utils/base-worker"
	"recruit-flow-backend/lib/utils/helpers"
	"recruit-flow-backend/models"
	dbmodels "recruit-flow-backend/models/db"
)

const attemptsPerRun = 50

// Фоновая предпроверка отправленных попыток: по вопросам с автопроверкой
// заранее проставляются отметки верно/неверно, проверяющему остается
// подтвердить итог и оценить вопросы с ручной проверкой
func StartWorker(ctx context.Context) {
	i := &impl{
		BaseImpl:     *baseworker.NewInstance("ExamAutoCheckWorker", 30*time.Second, 5*time.Minute),
		attemptStore: examattemptstore.NewInstance(db.DB),
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	attemptStore examattemptstore.Provider
}

func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	list, err := i.attemptStore.ListUngraded(attemptsPerRun)
	if err != nil {
		logger.WithError(err).Error("Ошибка получения списка попыток для предпроверки")
		return
	}
	for _, attempt := range list {
		if helpers.IsContextDone(ctx) {
			break
		}
		i.precheck(attempt)
	}
}

func (i impl) precheck(attempt dbmodels.ExamAttempt) {
	logger := i.GetLogger().
		WithField("space_id", attempt.SpaceID).
		WithField("attempt_id", attempt.ID)
	if attempt.Exam == nil {
		return
	}
	ticks := dbmodels.TickMap{}
	for _, q := range attempt.Exam.Questions {
		correct, manual := grading.AutoCheck(grading.Question{
			ID:            q.ID,
			Type:          q.Type,
			Answer:        attempt.Answers[q.ID],
			CorrectAnswer: q.CorrectAnswer,
		})
		if manual {
			continue
		}
		if correct {
			ticks[q.ID] = models.TickMarkCorrect
		} else {
			ticks[q.ID] = models.TickMarkIncorrect
		}
	}
	if len(ticks) == 0 {
		return
	}
	err := i.attemptStore.Update(attempt.SpaceID, attempt.ID, map[string]interface{}{"ticks": ticks})
	if err != nil {
		logger.WithError(err).Error("Ошибка сохранения предпроверки попытки")
	}
}
