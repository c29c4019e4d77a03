package candidatehistoryhandler

import (
	"testing"

	"recruit-flow-backend/models"
	dbmodels "recruit-flow-backend/models/db"

	"github.com/stretchr/testify/require"
)

func TestGetCreateChanges(t *testing.T) {
	rec := dbmodels.Candidate{
		VacancyID: "vac-1",
		Status:    models.CandidateStatusPending,
		FirstName: "Иван",
		LastName:  "Иванов",
		Salary:    100000,
	}
	changes := GetCreateChanges("Кандидат создан", rec)
	require.Equal(t, "Кандидат создан", changes.Description)

	fields := map[interface{}]interface{}{}
	for _, change := range changes.Data {
		fields[change.Field] = change.NewValue
	}
	// служебные поля и привязка к вакансии в историю не попадают
	require.NotContains(t, fields, "vacancy_id")
	require.NotContains(t, fields, "space_id")
	// пустые поля пропускаются
	require.NotContains(t, fields, "Отчество")

	require.Equal(t, "Иван", fields["Имя"])
	require.Equal(t, "Иванов", fields["Фамилия"])
	require.Equal(t, "100000", fields["Желаемая ЗП"])
	require.Equal(t, models.CandidateStatusPending.ToHuman(), fields["Статус"])
}

func TestGetUpdateChanges(t *testing.T) {
	rec := dbmodels.Candidate{
		FirstName: "Иван",
		Phone:     "+70000000000",
	}
	updMap := map[string]interface{}{
		"first_name": "Петр",
		"phone":      "+70000000000",
		"vacancy_id": "vac-2",
	}
	changes := GetUpdateChanges("Данные кандидата изменены", rec, updMap)

	require.Len(t, changes.Data, 1)
	require.Equal(t, "Имя", changes.Data[0].Field)
	require.Equal(t, "Иван", changes.Data[0].OldValue)
	require.Equal(t, "Петр", changes.Data[0].NewValue)
}

func TestGetExamGradedChange(t *testing.T) {
	passed := true
	changes := GetExamGradedChange("Тест по Go", 72.5, &passed)
	require.Contains(t, changes.Description, "Тест «Тест по Go» проверен")
	require.Contains(t, changes.Description, "проходной балл набран")

	changes = GetExamGradedChange("Тест по Go", 72.5, nil)
	require.NotContains(t, changes.Description, "проходной балл")
}
