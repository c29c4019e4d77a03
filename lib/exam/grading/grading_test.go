package grading

import (
	"testing"
	"time"

	"recruit-flow-backend/models"

	"github.com/stretchr/testify/require"
)

func TestTickGrading(t *testing.T) {
	t.Run(`все ответы верные - итог 10 при 4 вопросах`, func(t *testing.T) {
		session := NewSession(models.GradingModeTick)
		session.Toggle("q1", models.TickMarkCorrect)
		session.Toggle("q2", models.TickMarkCorrect)
		session.Toggle("q3", models.TickMarkCorrect)
		session.Toggle("q4", models.TickMarkCorrect)

		total, correctCount := session.Totals(4)
		require.Equal(t, 10.0, total)
		require.Equal(t, 4, correctCount)
	})

	t.Run(`неверные отметки не добавляют баллов`, func(t *testing.T) {
		session := NewSession(models.GradingModeTick)
		session.Toggle("q1", models.TickMarkCorrect)
		session.Toggle("q2", models.TickMarkIncorrect)
		session.Toggle("q3", models.TickMarkIncorrect)

		total, correctCount := session.Totals(3)
		require.Equal(t, 3.33, total)
		require.Equal(t, 1, correctCount)
	})

	t.Run(`повторная отметка снимает ее`, func(t *testing.T) {
		session := NewSession(models.GradingModeTick)
		session.Toggle("q1", models.TickMarkCorrect)
		session.Toggle("q1", models.TickMarkCorrect)

		require.Empty(t, session.Ticks)
		total, correctCount := session.Totals(4)
		require.Equal(t, 0.0, total)
		require.Equal(t, 0, correctCount)
	})

	t.Run(`смена отметки заменяет значение`, func(t *testing.T) {
		session := NewSession(models.GradingModeTick)
		session.Toggle("q1", models.TickMarkCorrect)
		session.Toggle("q1", models.TickMarkIncorrect)

		require.Equal(t, models.TickMarkIncorrect, session.Ticks["q1"])
	})
}

func TestManualGrading(t *testing.T) {
	t.Run(`итог - сумма баллов по вопросам`, func(t *testing.T) {
		session := NewSession(models.GradingModeManual)
		require.Nil(t, session.SetManualScore("q1", 3))
		require.Nil(t, session.SetManualScore("q2", 2.5))
		require.Nil(t, session.SetManualScore("q3", 0))
		require.Nil(t, session.SetManualScore("q4", 4))

		total, correctCount := session.Totals(4)
		require.Equal(t, 9.5, total)
		require.Equal(t, 3, correctCount)
	})

	t.Run(`балл вне диапазона отбрасывается, прежний остается`, func(t *testing.T) {
		session := NewSession(models.GradingModeManual)
		require.Nil(t, session.SetManualScore("q1", 7))

		err := session.SetManualScore("q1", 11)
		require.NotNil(t, err)
		require.Equal(t, 7.0, session.Scores["q1"])

		err = session.SetManualScore("q1", -1)
		require.NotNil(t, err)
		require.Equal(t, 7.0, session.Scores["q1"])
	})
}

func TestWeight(t *testing.T) {
	require.Equal(t, 2.5, Weight(4))
	require.Equal(t, 0.0, Weight(0))
}

func TestValidateTotal(t *testing.T) {
	require.Nil(t, ValidateTotal(0))
	require.Nil(t, ValidateTotal(100))
	require.NotNil(t, ValidateTotal(105))
	require.NotNil(t, ValidateTotal(-1))
}

func TestAutoCheck(t *testing.T) {
	t.Run(`множественный выбор - порядок и дубликаты не важны`, func(t *testing.T) {
		correct, manual := AutoCheck(Question{
			Type:          models.QuestionTypeMultipleChoice,
			Answer:        "b, a, b",
			CorrectAnswer: "a,b",
		})
		require.False(t, manual)
		require.True(t, correct)

		correct, _ = AutoCheck(Question{
			Type:          models.QuestionTypeMultipleChoice,
			Answer:        "a,b,c",
			CorrectAnswer: "a,b",
		})
		require.False(t, correct)
	})

	t.Run(`текст - точное совпадение`, func(t *testing.T) {
		correct, manual := AutoCheck(Question{
			Type:          models.QuestionTypeText,
			Answer:        "42",
			CorrectAnswer: "42",
		})
		require.False(t, manual)
		require.True(t, correct)

		correct, _ = AutoCheck(Question{
			Type:          models.QuestionTypeText,
			Answer:        "42 ",
			CorrectAnswer: "42",
		})
		require.False(t, correct)
	})

	t.Run(`file и grid только ручная проверка`, func(t *testing.T) {
		_, manual := AutoCheck(Question{Type: models.QuestionTypeFile})
		require.True(t, manual)

		_, manual = AutoCheck(Question{Type: models.QuestionTypeGrid})
		require.True(t, manual)
	})
}

func TestGridCellMatches(t *testing.T) {
	matched := GridCellMatches(Question{
		Type:          models.QuestionTypeGrid,
		Answer:        "r1c1,r2c2,r3c3",
		CorrectAnswer: "r1c1,r3c3,r4c4",
	})
	require.ElementsMatch(t, []string{"r1c1", "r3c3"}, matched)
}

func TestPassed(t *testing.T) {
	require.Nil(t, Passed(50, nil))

	passingScore := 60.0
	result := Passed(60, &passingScore)
	require.NotNil(t, result)
	require.True(t, *result)

	result = Passed(59.99, &passingScore)
	require.NotNil(t, result)
	require.False(t, *result)
}

func TestTimeTakenMinutes(t *testing.T) {
	startedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	submittedAt := startedAt.Add(12*time.Minute + 30*time.Second)
	require.Equal(t, 12.5, TimeTakenMinutes(startedAt, submittedAt))

	// отправка раньше старта - время обрезается до нуля
	require.Equal(t, 0.0, TimeTakenMinutes(submittedAt, startedAt))
}
