package stageapimodels

import (
	dbmodels "recruit-flow-backend/models/db"

	"github.com/pkg/errors"
)

type SelectionStageAdd struct {
	Name  string `json:"name"`  // Название этапа
	Color string `json:"color"` // Цвет колонки на доске
}

func (s SelectionStageAdd) Validate() error {
	if s.Name == "" {
		return errors.New("не указано название этапа подбора кандидата")
	}
	return nil
}

type SelectionStageView struct {
	ID         string `json:"id"`          // Идентификатор этапа подбора кандидата
	StageOrder int    `json:"stage_order"` // Порядковый номер этапа
	Name       string `json:"name"`        // Название этапа
	Color      string `json:"color"`       // Цвет колонки на доске
	CanDelete  bool   `json:"can_delete"`  // Возможность удаления этапа
}

func SelectionStageConvert(rec dbmodels.SelectionStage) SelectionStageView {
	return SelectionStageView{
		ID:         rec.ID,
		StageOrder: rec.StageOrder,
		Name:       rec.Name,
		Color:      rec.Color,
		CanDelete:  rec.CanDelete,
	}
}
