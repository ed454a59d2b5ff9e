package models

type JobApplicationResponse struct {
	Message       string `json:"message"`
	ApplicationID string `json:"application_id"`
	SubmittedAt   string `json:"submitted_at"`
}

// TextToSpeechRequest carries the text and voice parameters forwarded to the
// speech provider. Stability and similarity boost are pointers so an explicit
// zero survives default filling; out-of-range values are forwarded as-is.
type TextToSpeechRequest struct {
	Text            string   `json:"text"`
	VoiceID         string   `json:"voice_id,omitempty"`
	Stability       *float64 `json:"stability,omitempty"`
	SimilarityBoost *float64 `json:"similarity_boost,omitempty"`
}

type GenerateQuestionsRequest struct {
	Position     string   `json:"position"`
	NumQuestions int      `json:"num_questions"`
	Difficulty   string   `json:"difficulty,omitempty"`
	Categories   []string `json:"categories,omitempty"`
}

type GenerateQuestionsResponse struct {
	SessionID string              `json:"session_id"`
	Position  string              `json:"position"`
	Questions []InterviewQuestion `json:"questions"`
}

type QuestionAnswer struct {
	QuestionID int    `json:"question_id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
}

type InterviewSubmission struct {
	ApplicationID string           `json:"application_id"`
	Position      string           `json:"position"`
	Answers       []QuestionAnswer `json:"answers"`
}

type EvaluationResponse struct {
	ApplicationID       string          `json:"application_id"`
	OverallScore        float64         `json:"overall_score"`
	DetailedScores      []DetailedScore `json:"detailed_scores"`
	Strengths           []string        `json:"strengths"`
	AreasForImprovement []string        `json:"areas_for_improvement"`
	Recommendation      string          `json:"recommendation"`
	Summary             string          `json:"summary"`
}

// ResumeInfo is one row of the resume listing. DownloadURL is null when the
// backing file is gone from disk.
type ResumeInfo struct {
	ApplicationID string  `json:"application_id"`
	ApplicantName string  `json:"applicant_name"`
	Position      string  `json:"position"`
	Filename      string  `json:"filename"`
	FileSize      int     `json:"file_size"`
	FileExists    bool    `json:"file_exists"`
	DownloadURL   *string `json:"download_url"`
	SubmittedAt   string  `json:"submitted_at"`
}
