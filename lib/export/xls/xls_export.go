package xlsexport

import (
	"bytes"
	"fmt"

	"recruit-flow-backend/models"
	pipelineapimodels "recruit-flow-backend/models/api/pipeline"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportBoard(board pipelineapimodels.BoardView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var boardHeaders = []string{"Этап", "ФИО", "Контакты", "Статус", "Активности", "Готов к переводу"}

// ExportBoard выгружает доску подбора в xlsx, по строке на кандидата
func (i impl) ExportBoard(board pipelineapimodels.BoardView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, boardHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	row, err = writeBoardData(f, sheet, board, row)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
	}
	f.SetSheetName(sheet, "Воронка")
	return f.WriteToBuffer()
}

func writeBoardData(f *excelize.File, sheet string, board pipelineapimodels.BoardView, row int) (int, error) {
	rowCount := 0
	for _, stage := range board.Stages {
		rowCount += len(stage.Candidates)
	}
	if rowCount == 0 {
		return row, nil
	}
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(boardHeaders), rowCount+1); err != nil {
		return row, err
	}
	for _, stage := range board.Stages {
		for _, candidate := range stage.Candidates {
			row++
			// "Этап"
			col := 1
			if err := writeColumn(f, sheet, col, row, stage.Name); err != nil {
				return row, err
			}

			// "ФИО"
			col++
			if err := writeColumn(f, sheet, col, row, candidate.FIO); err != nil {
				return row, err
			}

			// "Контакты"
			col++
			if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%v\r%v", candidate.Phone, candidate.Email)); err != nil {
				return row, err
			}

			// "Статус"
			col++
			if err := writeColumn(f, sheet, col, row, candidate.StatusName); err != nil {
				return row, err
			}

			// "Активности"
			col++
			completed := 0
			for _, activity := range candidate.Activities {
				if activity.Status == models.ActivityStatusCompleted {
					completed++
				}
			}
			if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%v из %v", completed, len(candidate.Activities))); err != nil {
				return row, err
			}

			// "Готов к переводу"
			col++
			canMove := "нет"
			if candidate.CanMove {
				canMove = "да"
			}
			if err := writeColumn(f, sheet, col, row, canMove); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
