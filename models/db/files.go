package dbmodels

import filesapimodels "recruit-flow-backend/models/api/files"

type FileStorage struct {
	BaseSpaceModel
	Name        string
	CandidateID string
	QuestionID  string `gorm:"type:varchar(36)"` // для файлов-ответов на вопрос теста
	Type        FileType
	ContentType string
}

func (f FileStorage) ToModel() filesapimodels.FileView {
	return filesapimodels.FileView{
		ID:          f.ID,
		Name:        f.Name,
		CandidateID: f.CandidateID,
		QuestionID:  f.QuestionID,
		SpaceID:     f.SpaceID,
		ContentType: f.ContentType,
	}
}

type FileType string

const (
	CandidateResume     FileType = "candidate_resume"
	CandidateDoc        FileType = "candidate_doc"
	CandidateExamAnswer FileType = "candidate_exam_answer"
)
