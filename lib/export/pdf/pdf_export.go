package pdfexport

import (
	"bytes"
	"fmt"

	examapimodels "recruit-flow-backend/models/api/exam"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// GenerateGradingReport формирует отчет о проверке теста кандидата
func GenerateGradingReport(candidateName, examTitle string, attempt examapimodels.AttemptView) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateGradingReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "static/font/")
	pdf.AddPage()
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	pdf.SetFont("Arial", "B", 14)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	_, lineHt := pdf.GetFontSize()
	html := pdf.HTMLBasicNew()
	html.Write(lineHt, fmt.Sprintf("Отчет о проверке теста «%v»<br><br>", examTitle))

	pdf.SetFont("Arial", "", 12)
	_, lineHt = pdf.GetFontSize()
	htmlStr := fmt.Sprintf("Кандидат: %v<br>", candidateName) +
		fmt.Sprintf("Итоговый балл: %v<br>", attempt.TotalScore) +
		fmt.Sprintf("Верных ответов: %v<br>", attempt.CorrectCount)
	if attempt.Passed != nil {
		if *attempt.Passed {
			htmlStr += "Итог: проходной балл набран<br>"
		} else {
			htmlStr += "Итог: проходной балл не набран<br>"
		}
	}
	if attempt.TimeTaken != nil {
		htmlStr += fmt.Sprintf("Затраченное время: %v мин.<br>", *attempt.TimeTaken)
	}
	htmlStr += "<br>"
	html = pdf.HTMLBasicNew()
	html.Write(lineHt, htmlStr)

	for _, q := range attempt.Questions {
		htmlStr = fmt.Sprintf("<b>Вопрос %v.</b> %v<br>", q.QuestionOrder, q.Content) +
			fmt.Sprintf("Ответ кандидата: %v<br>", q.Answer)
		if score, ok := attempt.Scores[q.ID]; ok {
			htmlStr += fmt.Sprintf("Балл: %v<br>", score)
		}
		if mark, ok := attempt.Ticks[q.ID]; ok {
			htmlStr += fmt.Sprintf("Отметка: %v<br>", mark.ToHuman())
		}
		htmlStr += "<br>"
		html = pdf.HTMLBasicNew()
		html.Write(lineHt, htmlStr)
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
