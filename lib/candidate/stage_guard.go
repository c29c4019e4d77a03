package candidatehandler

import (
	dbmodels "recruit-flow-backend/models/db"
)

// CanMove проверяет готовность кандидата к переводу на следующий этап:
// все активности текущего этапа должны быть завершены.
// Этап без активностей перевод не блокирует
func CanMove(activities []dbmodels.CandidateActivity) bool {
	for _, rec := range activities {
		if !rec.IsCompleted() {
			return false
		}
	}
	return true
}
