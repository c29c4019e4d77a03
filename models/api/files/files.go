package filesapimodels

type FileView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CandidateID string `json:"candidate_id"`
	QuestionID  string `json:"question_id,omitempty"`
	SpaceID     string `json:"space_id"`
	ContentType string `json:"content_type"`
}
