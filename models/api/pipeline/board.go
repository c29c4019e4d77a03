package pipelineapimodels

import (
	activityapimodels "recruit-flow-backend/models/api/activity"
	candidateapimodels "recruit-flow-backend/models/api/candidate"
	stageapimodels "recruit-flow-backend/models/api/stage"
)

// Доска подбора: этапы с кандидатами и их активностями.
// Собирается на каждый запрос заново, ничего не мутирует
type BoardView struct {
	VacancyID string           `json:"vacancy_id"`
	Stages    []BoardStageView `json:"stages"`
}

type BoardStageView struct {
	stageapimodels.SelectionStageView
	Candidates []BoardCandidateView `json:"candidates"`
}

type BoardCandidateView struct {
	candidateapimodels.CandidateView
	Activities []activityapimodels.CandidateActivityView `json:"activities"`
	CanMove    bool                                      `json:"can_move"` // все активности текущего этапа завершены
}
