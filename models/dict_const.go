package models

import "github.com/pkg/errors"

// Статус кандидата в воронке подбора.
// Список расширяемый, храним как строку, известные значения ниже
type CandidateStatus string

const (
	CandidateStatusPending    CandidateStatus = "pending"
	CandidateStatusInterview  CandidateStatus = "interviewing"
	CandidateStatusTesting    CandidateStatus = "testing"
	CandidateStatusTested     CandidateStatus = "tested"
	CandidateStatusAssessment CandidateStatus = "accepted_assessment"
	CandidateStatusReject     CandidateStatus = "reject"
	CandidateStatusHired      CandidateStatus = "hired"
)

var candidateStatusHumanName = map[CandidateStatus]string{
	CandidateStatusPending:    "Новый",
	CandidateStatusInterview:  "Интервью",
	CandidateStatusTesting:    "Тестирование",
	CandidateStatusTested:     "Тест пройден",
	CandidateStatusAssessment: "Допущен к оценке",
	CandidateStatusReject:     "Отклонен",
	CandidateStatusHired:      "Принят",
}

func (s CandidateStatus) ToHuman() string {
	if human, exist := candidateStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

type ActivityType string

const (
	ActivityTypeCall      ActivityType = "call"
	ActivityTypeEmail     ActivityType = "email"
	ActivityTypeInterview ActivityType = "interview"
	ActivityTypeTest      ActivityType = "test"
	ActivityTypeTask      ActivityType = "task"
)

var activityTypeHumanName = map[ActivityType]string{
	ActivityTypeCall:      "Звонок",
	ActivityTypeEmail:     "Письмо",
	ActivityTypeInterview: "Интервью",
	ActivityTypeTest:      "Тестирование",
	ActivityTypeTask:      "Задание",
}

func (t ActivityType) Validate() error {
	if _, exist := activityTypeHumanName[t]; !exist {
		return errors.Errorf("неизвестный тип активности: %v", t)
	}
	return nil
}

func (t ActivityType) ToHuman() string {
	if human, exist := activityTypeHumanName[t]; exist {
		return human
	}
	return string(t)
}

// Статус выполнения активности по кандидату.
// Машина намеренно без ограничений, допустим возврат из любого статуса в любой
type ActivityStatus string

const (
	ActivityStatusInProgress ActivityStatus = "in_progress"
	ActivityStatusCompleted  ActivityStatus = "completed"
	ActivityStatusCancelled  ActivityStatus = "cancelled"
)

var activityStatusHumanName = map[ActivityStatus]string{
	ActivityStatusInProgress: "В работе",
	ActivityStatusCompleted:  "Завершена",
	ActivityStatusCancelled:  "Отменена",
}

func (s ActivityStatus) Validate() error {
	if _, exist := activityStatusHumanName[s]; !exist {
		return errors.Errorf("неизвестный статус активности: %v", s)
	}
	return nil
}

func (s ActivityStatus) ToHuman() string {
	if human, exist := activityStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// Итог активности по кандидату, не зависит от статуса выполнения
type ActivityResult string

const (
	ActivityResultPending ActivityResult = "pending"
	ActivityResultPass    ActivityResult = "pass"
	ActivityResultFail    ActivityResult = "fail"
)

var activityResultHumanName = map[ActivityResult]string{
	ActivityResultPending: "Ожидает",
	ActivityResultPass:    "Пройдена",
	ActivityResultFail:    "Не пройдена",
}

func (r ActivityResult) Validate() error {
	if _, exist := activityResultHumanName[r]; !exist {
		return errors.Errorf("неизвестный итог активности: %v", r)
	}
	return nil
}

func (r ActivityResult) ToHuman() string {
	if human, exist := activityResultHumanName[r]; exist {
		return human
	}
	return string(r)
}

type QuestionType string

const (
	QuestionTypeText           QuestionType = "text"
	QuestionTypeMultipleChoice QuestionType = "multiple-choice"
	QuestionTypeFile           QuestionType = "file"
	QuestionTypeGrid           QuestionType = "grid"
)

func (t QuestionType) Validate() error {
	switch t {
	case QuestionTypeText, QuestionTypeMultipleChoice, QuestionTypeFile, QuestionTypeGrid:
		return nil
	}
	return errors.Errorf("неизвестный тип вопроса: %v", t)
}

// Режим оценки теста
type GradingMode string

const (
	GradingModeManual GradingMode = "manual" // проверяющий выставляет баллы по каждому вопросу
	GradingModeTick   GradingMode = "tick"   // проверяющий отмечает верно/неверно, баллы считаются по весу вопроса
)

func (m GradingMode) Validate() error {
	if m != GradingModeManual && m != GradingModeTick {
		return errors.Errorf("неизвестный режим оценки: %v", m)
	}
	return nil
}

// Отметка проверяющего по вопросу, третье состояние - отметка снята
type TickMark string

const (
	TickMarkCorrect   TickMark = "correct"
	TickMarkIncorrect TickMark = "incorrect"
)

func (m TickMark) Validate() error {
	if m != TickMarkCorrect && m != TickMarkIncorrect {
		return errors.Errorf("неизвестная отметка: %v", m)
	}
	return nil
}

func (m TickMark) ToHuman() string {
	switch m {
	case TickMarkCorrect:
		return "Верно"
	case TickMarkIncorrect:
		return "Неверно"
	}
	return string(m)
}
