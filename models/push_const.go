package models

type PushCode string

const (
	PushCandidateNewStage     PushCode = "candidate_new_stage"
	PushCandidateRejected     PushCode = "candidate_rejected"
	PushActivityStatusChanged PushCode = "activity_status_changed"
	PushExamGraded            PushCode = "exam_graded"
)

type PushTpl struct {
	Name  string
	Title string
	Msg   string
}

var PushCodeMap = map[PushCode]PushTpl{
	PushCandidateNewStage:     {Name: "Кандидат переведён на другой этап", Title: "Кандидат переведен на другой этап", Msg: "Кандидат %v переведён на этап «%v» по вакансии «%v»."},
	PushCandidateRejected:     {Name: "Кандидат отклонен", Title: "Кандидат отклонен", Msg: "Кандидат %v отклонен по вакансии «%v». Причина: %v."},
	PushActivityStatusChanged: {Name: "Изменение статуса активности", Title: "Изменён статус активности", Msg: "Активность «%v» по кандидату %v: %v."},
	PushExamGraded:            {Name: "Тест проверен", Title: "Тест проверен", Msg: "Тест «%v» кандидата %v проверен, балл: %v."},
}
