package candidatehistoryhandler

import (
	"fmt"
	"reflect"
	"time"

	"recruit-flow-backend/lib/utils/helpers"
	"recruit-flow-backend/models"
	dbmodels "recruit-flow-backend/models/db"
)

func GetStageChange(stageName string) dbmodels.CandidateChanges {
	return dbmodels.CandidateChanges{
		Description: fmt.Sprintf("Перевод на этап %v", stageName),
	}
}

func GetRejectChange(reason string) dbmodels.CandidateChanges {
	return dbmodels.CandidateChanges{
		Description: fmt.Sprintf("Кандидат отклонен по причине: %v", reason),
	}
}

func GetStatusChange(status models.CandidateStatus) dbmodels.CandidateChanges {
	return dbmodels.CandidateChanges{
		Description: fmt.Sprintf("Статус кандидата изменен на «%v»", status.ToHuman()),
	}
}

func GetActivityStatusChange(activityName string, status models.ActivityStatus) dbmodels.CandidateChanges {
	return dbmodels.CandidateChanges{
		Description: fmt.Sprintf("Статус активности «%v» изменен на «%v»", activityName, status.ToHuman()),
		Data: []dbmodels.CandidateChange{
			{
				Field:    "status",
				NewValue: string(status),
			},
		},
	}
}

func GetActivityResultChange(activityName string, result models.ActivityResult) dbmodels.CandidateChanges {
	return dbmodels.CandidateChanges{
		Description: fmt.Sprintf("Итог активности «%v»: %v", activityName, result.ToHuman()),
		Data: []dbmodels.CandidateChange{
			{
				Field:    "result",
				NewValue: string(result),
			},
		},
	}
}

func GetExamGradedChange(examName string, totalScore float64, passed *bool) dbmodels.CandidateChanges {
	descr := fmt.Sprintf("Тест «%v» проверен, итоговый балл: %v", examName, totalScore)
	if passed != nil {
		if *passed {
			descr += ", проходной балл набран"
		} else {
			descr += ", проходной балл не набран"
		}
	}
	return dbmodels.CandidateChanges{
		Description: descr,
		Data: []dbmodels.CandidateChange{
			{
				Field:    "total_score",
				NewValue: totalScore,
			},
		},
	}
}

func GetCreateChanges(descr string, rec dbmodels.Candidate) dbmodels.CandidateChanges {
	result := dbmodels.CandidateChanges{
		Description: descr,
		Data:        make([]dbmodels.CandidateChange, 0),
	}
	rType := reflect.TypeOf(rec)
	vType := reflect.ValueOf(rec)
	for k := 0; k < rType.NumField(); k++ {
		field := rType.Field(k)
		fieldName := helpers.ToSnakeCase(field.Name)
		if ignoreFields[fieldName] {
			// пропускаем не нужные поля
			continue
		}
		if vType.Field(k).IsZero() {
			// пропускаем пустые поля
			continue
		}
		comment := field.Tag.Get(dbmodels.CommentTag)
		value := getValue(vType.Field(k).Interface())
		change := dbmodels.CandidateChange{
			Field:    fieldName,
			OldValue: "",
			NewValue: value,
		}
		if comment != "" {
			change.Field = comment
		}
		result.Data = append(result.Data, change)
	}
	return result
}

func GetUpdateChanges(descr string, rec dbmodels.Candidate, updMap map[string]interface{}) dbmodels.CandidateChanges {
	result := dbmodels.CandidateChanges{
		Description: descr,
		Data:        make([]dbmodels.CandidateChange, 0, len(updMap)),
	}
	if len(updMap) == 0 {
		return result
	}
	recMap := map[string]interface{}{}
	recCommentMap := map[string]string{}
	rType := reflect.TypeOf(rec)
	vType := reflect.ValueOf(rec)
	for k := 0; k < rType.NumField(); k++ {
		field := rType.Field(k)
		fieldName := helpers.ToSnakeCase(field.Name)
		recCommentMap[fieldName] = field.Tag.Get(dbmodels.CommentTag)
		recMap[fieldName] = getValue(vType.Field(k).Interface())
	}

	for key, value := range updMap {
		fieldName := helpers.ToSnakeCase(key)
		if ignoreFields[fieldName] {
			continue
		}
		change := dbmodels.CandidateChange{
			Field:    fieldName,
			OldValue: "",
			NewValue: getValue(value),
		}
		oldValue, ok := recMap[fieldName]
		if ok {
			change.OldValue = oldValue
		}
		if change.OldValue == change.NewValue {
			// пропускаем поля без изменений
			continue
		}
		comment, ok := recCommentMap[fieldName]
		if ok && comment != "" {
			change.Field = comment
		}
		result.Data = append(result.Data, change)
	}
	return result
}

var ignoreFields = map[string]bool{"base_space_model": true, "vacancy": true, "stage": true,
	"space_id": true, "vacancy_id": true}

func getValue(value interface{}) interface{} {
	xType := fmt.Sprintf("%T", value)
	switch xType {
	case "models.CandidateStatus":
		return value.(models.CandidateStatus).ToHuman()
	case "bool":
		if value.(bool) {
			return "да"
		}
		return "нет"
	case "time.Time":
		return value.(time.Time).Format("02.01.2006")
	case "*string":
		v := value.(*string)
		if v == nil {
			return ""
		}
		return *v
	}
	return fmt.Sprintf("%+v", value)
}
