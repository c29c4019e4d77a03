package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"recruit-flow-backend/config"
	"recruit-flow-backend/db"
	filesdbstorage "recruit-flow-backend/lib/file-storage/store"
	"recruit-flow-backend/lib/utils/apperror"
	filesapimodels "recruit-flow-backend/models/api/files"
	dbmodels "recruit-flow-backend/models/db"
	s3client "recruit-flow-backend/s3"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	UploadResume(ctx context.Context, spaceID, candidateID string, file []byte, fileName string) error
	UploadAnswerFile(ctx context.Context, spaceID, candidateID, questionID string, file []byte, fileName string) error
	GetFile(ctx context.Context, spaceID, fileID string) (body []byte, fileName string, err error)
	GetAnswerFile(ctx context.Context, spaceID, candidateID, questionID string) (body []byte, fileName string, err error)
	GetDocList(ctx context.Context, candidateID string) ([]filesapimodels.FileView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: filesdbstorage.NewInstance(db.DB),
	}
}

type impl struct {
	store filesdbstorage.Provider
}

func (i impl) UploadResume(ctx context.Context, spaceID, candidateID string, file []byte, fileName string) error {
	rec := dbmodels.FileStorage{
		BaseSpaceModel: dbmodels.BaseSpaceModel{SpaceID: spaceID},
		Name:           fileName,
		CandidateID:    candidateID,
		Type:           dbmodels.CandidateResume,
	}
	return i.upload(ctx, rec, file)
}

func (i impl) UploadAnswerFile(ctx context.Context, spaceID, candidateID, questionID string, file []byte, fileName string) error {
	rec := dbmodels.FileStorage{
		BaseSpaceModel: dbmodels.BaseSpaceModel{SpaceID: spaceID},
		Name:           fileName,
		CandidateID:    candidateID,
		QuestionID:     questionID,
		Type:           dbmodels.CandidateExamAnswer,
	}
	return i.upload(ctx, rec, file)
}

func (i impl) GetFile(ctx context.Context, spaceID, fileID string) ([]byte, string, error) {
	rec, err := i.store.GetByID(spaceID, fileID)
	if err != nil {
		log.WithError(err).Error("ошибка получения данных файла")
		return nil, "", errors.New("ошибка получения данных файла")
	}
	if rec == nil {
		return nil, "", apperror.ErrNotFound
	}
	body, err := i.download(ctx, objectName(*rec))
	if err != nil {
		return nil, "", err
	}
	return body, rec.Name, nil
}

func (i impl) GetAnswerFile(ctx context.Context, spaceID, candidateID, questionID string) ([]byte, string, error) {
	rec, err := i.store.GetAnswerFile(candidateID, questionID)
	if err != nil {
		log.WithError(err).Error("ошибка получения данных файла-ответа")
		return nil, "", errors.New("ошибка получения данных файла-ответа")
	}
	if rec == nil {
		return nil, "", apperror.ErrNotFound
	}
	body, err := i.download(ctx, objectName(*rec))
	if err != nil {
		return nil, "", err
	}
	return body, rec.Name, nil
}

func (i impl) GetDocList(ctx context.Context, candidateID string) ([]filesapimodels.FileView, error) {
	list, err := i.store.GetFileListByType(candidateID, dbmodels.CandidateDoc)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка документов кандидата")
		return nil, errors.New("ошибка получения списка документов кандидата")
	}
	result := make([]filesapimodels.FileView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModel())
	}
	return result, nil
}

func (i impl) upload(ctx context.Context, rec dbmodels.FileStorage, file []byte) error {
	rec.ID = uuid.NewString()
	if _, err := i.store.SaveFile(rec); err != nil {
		log.WithError(err).Error("ошибка сохранения данных файла")
		return errors.New("ошибка сохранения данных файла")
	}
	reader := bytes.NewReader(file)
	_, err := s3client.Client.PutObject(ctx, config.Conf.S3.BucketName, objectName(rec), reader, int64(len(file)), minio.PutObjectOptions{})
	if err != nil {
		log.WithError(err).Error("ошибка загрузки файла в хранилище")
		return errors.New("ошибка загрузки файла в хранилище")
	}
	return nil
}

func (i impl) download(ctx context.Context, objectName string) ([]byte, error) {
	object, err := s3client.Client.GetObject(ctx, config.Conf.S3.BucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		log.WithError(err).Error("ошибка получения файла из хранилища")
		return nil, errors.New("ошибка получения файла из хранилища")
	}
	defer object.Close()
	body, err := io.ReadAll(object)
	if err != nil {
		log.WithError(err).Error("ошибка чтения файла из хранилища")
		return nil, errors.New("ошибка чтения файла из хранилища")
	}
	return body, nil
}

func objectName(rec dbmodels.FileStorage) string {
	return fmt.Sprintf("%v/%v/%v", rec.SpaceID, rec.CandidateID, rec.ID)
}
