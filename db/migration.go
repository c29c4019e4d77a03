package db

import (
	dbmodels "recruit-flow-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Space{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Space")
	}
	if err := DB.AutoMigrate(&dbmodels.SpaceUser{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры SpaceUser")
	}
	if err := DB.AutoMigrate(&dbmodels.Vacancy{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Vacancy")
	}
	if err := DB.AutoMigrate(&dbmodels.SelectionStage{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры SelectionStage")
	}
	if err := DB.AutoMigrate(&dbmodels.Candidate{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Candidate")
	}
	if err := DB.AutoMigrate(&dbmodels.Activity{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Activity")
	}
	if err := DB.AutoMigrate(&dbmodels.CandidateActivity{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры CandidateActivity")
	}
	if err := DB.AutoMigrate(&dbmodels.Exam{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Exam")
	}
	if err := DB.AutoMigrate(&dbmodels.ExamQuestion{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ExamQuestion")
	}
	if err := DB.AutoMigrate(&dbmodels.ExamAttempt{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ExamAttempt")
	}
	if err := DB.AutoMigrate(&dbmodels.CandidateHistory{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры CandidateHistory")
	}
	if err := DB.AutoMigrate(&dbmodels.FileStorage{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры FileStorage")
	}
	if err := DB.AutoMigrate(&dbmodels.PushData{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры PushData")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
