package examapimodels

import (
	"recruit-flow-backend/models"
	dbmodels "recruit-flow-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type ExamView struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Code          string         `json:"code"`
	Duration      int            `json:"duration"` // минуты
	QuestionCount int            `json:"question_count"`
	PassingScore  *float64       `json:"passing_score,omitempty"` // nil - проходной балл не задан
	Questions     []QuestionView `json:"questions,omitempty"`
}

type QuestionView struct {
	ID            string              `json:"id"`
	QuestionOrder int                 `json:"question_order"`
	Type          models.QuestionType `json:"type"`
	Content       string              `json:"content"`
	Options       []string            `json:"options,omitempty"`
	CorrectAnswer string              `json:"correct_answer"`
	Answer        string              `json:"answer,omitempty"` // ответ кандидата, если запрошена попытка
}

func ExamConvert(rec dbmodels.Exam) ExamView {
	result := ExamView{
		ID:            rec.ID,
		Title:         rec.Title,
		Code:          rec.Code,
		Duration:      rec.Duration,
		QuestionCount: rec.QuestionCount,
		PassingScore:  rec.PassingScore,
	}
	for _, q := range rec.Questions {
		result.Questions = append(result.Questions, QuestionView{
			ID:            q.ID,
			QuestionOrder: q.QuestionOrder,
			Type:          q.Type,
			Content:       q.Content,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		})
	}
	return result
}

type ExamData struct {
	Title        string         `json:"title"`
	Code         string         `json:"code"`
	Duration     int            `json:"duration"`
	PassingScore *float64       `json:"passing_score"`
	Questions    []QuestionData `json:"questions"`
}

type QuestionData struct {
	Type          models.QuestionType `json:"type"`
	Content       string              `json:"content"`
	Options       []string            `json:"options"`
	CorrectAnswer string              `json:"correct_answer"`
}

func (e ExamData) Validate() error {
	if e.Title == "" {
		return errors.New("не указано название теста")
	}
	if len(e.Questions) == 0 {
		return errors.New("тест без вопросов")
	}
	if e.PassingScore != nil && (*e.PassingScore < 0 || *e.PassingScore > 100) {
		return errors.New("проходной балл должен быть в диапазоне от 0 до 100")
	}
	for _, q := range e.Questions {
		if err := q.Type.Validate(); err != nil {
			return err
		}
		if q.Content == "" {
			return errors.New("вопрос без текста")
		}
	}
	return nil
}

type AttemptStartData struct {
	CandidateID         string `json:"candidate_id"`
	CandidateActivityID string `json:"candidate_activity_id"`
}

func (a AttemptStartData) Validate() error {
	if a.CandidateID == "" {
		return errors.New("не указан идентификатор кандидата")
	}
	return nil
}

type AttemptSubmitData struct {
	Answers map[string]string `json:"answers"` // ответ кандидата по идентификатору вопроса
}

type AttemptView struct {
	ID           string              `json:"id"`
	ExamID       string              `json:"exam_id"`
	CandidateID  string              `json:"candidate_id"`
	IsSubmitted  bool                `json:"is_submitted"`
	IsGraded     bool                `json:"is_graded"`
	GradingMode  models.GradingMode  `json:"grading_mode,omitempty"`
	Scores       map[string]float64  `json:"scores,omitempty"`
	Ticks        dbmodels.TickMap    `json:"ticks,omitempty"`
	TotalScore   float64             `json:"total_score"`
	CorrectCount int                 `json:"correct_count"`
	Passed       *bool               `json:"passed,omitempty"`
	StartedAt    time.Time           `json:"started_at"`
	SubmittedAt  *time.Time          `json:"submitted_at,omitempty"`
	TimeTaken    *float64            `json:"time_taken,omitempty"` // минуты, 2 знака
	Questions    []QuestionView      `json:"questions,omitempty"`
}

// Оценка теста, черновик оценки на сервере не хранится -
// сохраняется только итог проверки целиком
type GradingData struct {
	CandidateID  string                     `json:"candidate_id"`
	Mode         models.GradingMode         `json:"mode"`
	Scores       map[string]float64         `json:"scores,omitempty"` // режим manual: балл по вопросу
	Ticks        map[string]models.TickMark `json:"ticks,omitempty"`  // режим tick: отметки по вопросам
	TotalScore   *float64                   `json:"total_score,omitempty"`   // итог с клиента, сверяется с расчетом
	CorrectCount *int                       `json:"correct_count,omitempty"` // кол-во верных с клиента, сверяется с расчетом
}

func (g GradingData) Validate() error {
	if g.CandidateID == "" {
		return errors.New("не указан идентификатор кандидата")
	}
	if err := g.Mode.Validate(); err != nil {
		return err
	}
	for _, mark := range g.Ticks {
		if err := mark.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type AISuggestData struct {
	QuestionID  string `json:"question_id"`
	CandidateID string `json:"candidate_id"`
}

func (a AISuggestData) Validate() error {
	if a.QuestionID == "" {
		return errors.New("не указан идентификатор вопроса")
	}
	if a.CandidateID == "" {
		return errors.New("не указан идентификатор кандидата")
	}
	return nil
}

type AISuggestView struct {
	QuestionID string `json:"question_id"`
	Suggestion string `json:"suggestion"` // комментарий модели с предложением оценки
}
