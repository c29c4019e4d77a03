package grading

import (
	"fmt"
	"math"
	"recruit-flow-backend/models"
	"strings"
	"time"

	"recruit-flow-backend/lib/utils/apperror"
)

// Чистый расчет оценки теста. Одна и та же логика используется
// при сохранении оценки, в фоновой автопроверке и в выгрузках

const (
	MaxQuestionScore = 10  // максимум баллов за вопрос в ручном режиме
	MaxTotalScore    = 100 // максимум итогового балла
)

type Question struct {
	ID            string
	Type          models.QuestionType
	Answer        string // ответ кандидата, для множественного выбора и grid - значения через запятую
	CorrectAnswer string
}

// Черновик оценки, живет только в памяти до сохранения
type Session struct {
	Mode   models.GradingMode
	Scores map[string]float64
	Ticks  map[string]models.TickMark
}

func NewSession(mode models.GradingMode) *Session {
	return &Session{
		Mode:   mode,
		Scores: map[string]float64{},
		Ticks:  map[string]models.TickMark{},
	}
}

// Ручной балл по вопросу. Значение вне [0,10] отбрасывается,
// прежний балл остается без изменений
func (s *Session) SetManualScore(questionID string, score float64) error {
	if score < 0 || score > MaxQuestionScore {
		return apperror.NewValidation(fmt.Sprintf("балл за вопрос должен быть в диапазоне от 0 до %v", MaxQuestionScore))
	}
	s.Scores[questionID] = score
	return nil
}

// Отметка верно/неверно. Повторная установка той же отметки снимает ее
func (s *Session) Toggle(questionID string, mark models.TickMark) {
	if s.Ticks[questionID] == mark {
		delete(s.Ticks, questionID)
		return
	}
	s.Ticks[questionID] = mark
}

// Вес вопроса в режиме отметок: 10 / количество вопросов
func Weight(questionCount int) float64 {
	if questionCount == 0 {
		return 0
	}
	return float64(MaxQuestionScore) / float64(questionCount)
}

// Итог по черновику оценки: суммарный балл и количество верных ответов
func (s *Session) Totals(questionCount int) (total float64, correctCount int) {
	switch s.Mode {
	case models.GradingModeTick:
		for _, mark := range s.Ticks {
			if mark == models.TickMarkCorrect {
				correctCount++
			}
		}
		total = Round2(float64(correctCount) * Weight(questionCount))
	case models.GradingModeManual:
		for _, score := range s.Scores {
			total += score
			if score > 0 {
				correctCount++
			}
		}
		total = Round2(total)
	}
	return total, correctCount
}

// Проверка итога перед сохранением, вне диапазона - оценка не сохраняется
func ValidateTotal(total float64) error {
	if total < 0 || total > MaxTotalScore {
		return apperror.NewValidation(fmt.Sprintf("итоговый балл должен быть в диапазоне от 0 до %v", MaxTotalScore))
	}
	return nil
}

// Автопроверка ответа. Для file и grid автоматической проверки нет,
// такие вопросы всегда требуют ручной отметки проверяющего
func AutoCheck(q Question) (correct bool, manual bool) {
	switch q.Type {
	case models.QuestionTypeMultipleChoice:
		return setEqual(answerSet(q.Answer), answerSet(q.CorrectAnswer)), false
	case models.QuestionTypeText:
		return q.Answer == q.CorrectAnswer, false
	}
	return false, true
}

// Сравнение ответа по ячейкам grid, только для отображения.
// Ячейка считается совпавшей, если есть и в ответе кандидата, и в верном
func GridCellMatches(q Question) (matched []string) {
	submitted := answerSet(q.Answer)
	for cell := range answerSet(q.CorrectAnswer) {
		if _, ok := submitted[cell]; ok {
			matched = append(matched, cell)
		}
	}
	return matched
}

// Множество значений из строки через запятую,
// порядок и дубликаты не влияют на сравнение
func answerSet(answer string) map[string]struct{} {
	result := map[string]struct{}{}
	for _, token := range strings.Split(answer, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		result[token] = struct{}{}
	}
	return result
}

func setEqual(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for key := range a {
		if _, ok := b[key]; !ok {
			return false
		}
	}
	return true
}

// Итог прохождения: nil - проходной балл не задан, итог неопределен
func Passed(total float64, passingScore *float64) *bool {
	if passingScore == nil {
		return nil
	}
	passed := total >= *passingScore
	return &passed
}

// Затраченное время в минутах, 2 знака.
// Отрицательная длительность обрезается до нуля, сами метки времени не правим
func TimeTakenMinutes(startedAt, submittedAt time.Time) float64 {
	minutes := submittedAt.Sub(startedAt).Minutes()
	if minutes < 0 {
		minutes = 0
	}
	return Round2(minutes)
}

func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
