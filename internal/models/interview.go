package models

// InterviewQuestion is a single generated question. The question_id comes from
// the language model's own output and is stored as-is.
type InterviewQuestion struct {
	QuestionID int    `json:"question_id"`
	Question   string `json:"question"`
	Category   string `json:"category,omitempty"`
}

// InterviewSession holds the questions generated for a position and, once
// submitted, the evaluation of the candidate's answers. A session created
// implicitly by an evaluation has no questions and no created_at.
type InterviewSession struct {
	Position   string              `json:"position,omitempty"`
	Difficulty string              `json:"difficulty,omitempty"`
	Questions  []InterviewQuestion `json:"questions,omitempty"`
	CreatedAt  string              `json:"created_at,omitempty"`
	Evaluation *Evaluation         `json:"evaluation,omitempty"`
}

// DetailedScore is the per-question grade returned by the model.
type DetailedScore struct {
	QuestionID int     `json:"question_id"`
	Score      float64 `json:"score"`
	Feedback   string  `json:"feedback"`
}

// Evaluation is the model's assessment of a full set of answers. Score ranges
// (overall 0-100, per question 0-10) are whatever the model returned; they are
// not enforced locally.
type Evaluation struct {
	OverallScore        float64         `json:"overall_score"`
	DetailedScores      []DetailedScore `json:"detailed_scores"`
	Strengths           []string        `json:"strengths"`
	AreasForImprovement []string        `json:"areas_for_improvement"`
	Recommendation      string          `json:"recommendation"`
	Summary             string          `json:"summary"`
	EvaluatedAt         string          `json:"evaluated_at,omitempty"`
}
