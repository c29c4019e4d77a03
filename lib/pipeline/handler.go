package pipelinehandler

import (
	"recruit-flow-backend/db"
	activityhandler "recruit-flow-backend/lib/activity"
	candidateactivitystore "recruit-flow-backend/lib/activity/candidate-activity-store"
	candidatehandler "recruit-flow-backend/lib/candidate"
	candidatestore "recruit-flow-backend/lib/candidate/store"
	selectionstagestore "recruit-flow-backend/lib/stage/store"
	candidateapimodels "recruit-flow-backend/models/api/candidate"
	pipelineapimodels "recruit-flow-backend/models/api/pipeline"
	stageapimodels "recruit-flow-backend/models/api/stage"
	dbmodels "recruit-flow-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	GetBoard(spaceID, vacancyID, stageID string) (view pipelineapimodels.BoardView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		stageStore:     selectionstagestore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
		caStore:        candidateactivitystore.NewInstance(db.DB),
	}
}

type impl struct {
	stageStore     selectionstagestore.Provider
	candidateStore candidatestore.Provider
	caStore        candidateactivitystore.Provider
}

// GetBoard собирает доску подбора: этапы с кандидатами, их активностями
// и признаком готовности к переводу. Доска собирается на каждый запрос заново.
// Пустой stageID - сводная доска по всем этапам, этапы идут от поздних к ранним
func (i impl) GetBoard(spaceID, vacancyID, stageID string) (view pipelineapimodels.BoardView, err error) {
	logger := log.
		WithField("space_id", spaceID).
		WithField("vacancy_id", vacancyID)
	view.VacancyID = vacancyID

	stages, err := i.stageStore.List(spaceID, vacancyID, true)
	if err != nil {
		logger.WithError(err).Error("Ошибка получения этапов подбора")
		return view, errors.Wrap(err, "Ошибка получения этапов подбора")
	}
	view.Stages = make([]pipelineapimodels.BoardStageView, 0, len(stages))
	for _, stage := range stages {
		if stageID != "" && stage.ID != stageID {
			continue
		}
		stageView, err := i.buildStage(spaceID, stage)
		if err != nil {
			logger.
				WithField("stage_id", stage.ID).
				WithError(err).
				Error("Ошибка сборки этапа доски")
			return view, errors.Wrap(err, "Ошибка сборки этапа доски")
		}
		view.Stages = append(view.Stages, stageView)
	}
	return view, nil
}

func (i impl) buildStage(spaceID string, stage dbmodels.SelectionStage) (view pipelineapimodels.BoardStageView, err error) {
	view.SelectionStageView = stageapimodels.SelectionStageConvert(stage)
	candidates, err := i.candidateStore.ListByStage(spaceID, stage.ID)
	if err != nil {
		return view, err
	}
	view.Candidates = make([]pipelineapimodels.BoardCandidateView, 0, len(candidates))
	for _, candidate := range candidates {
		activities, err := i.caStore.ListByCandidateStage(spaceID, candidate.ID, stage.ID)
		if err != nil {
			return view, err
		}
		activityViews, err := activityhandler.Instance.ConvertList(spaceID, activities)
		if err != nil {
			return view, err
		}
		view.Candidates = append(view.Candidates, pipelineapimodels.BoardCandidateView{
			CandidateView: candidateapimodels.CandidateConvert(candidate),
			Activities:    activityViews,
			CanMove:       candidatehandler.CanMove(activities),
		})
	}
	return view, nil
}
