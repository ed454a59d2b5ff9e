package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"job-application-api/internal/models"
	"job-application-api/internal/repositories"
)

// InterviewService drives the two language-model flows: generating questions
// for a position and grading a candidate's answers. All interviewing
// intelligence lives upstream; this service does prompt construction,
// transport and envelope parsing.
type InterviewService interface {
	GenerateQuestions(ctx context.Context, req *models.GenerateQuestionsRequest) (*models.GenerateQuestionsResponse, error)
	EvaluateAnswers(ctx context.Context, submission *models.InterviewSubmission) (*models.EvaluationResponse, error)
}

type interviewService struct {
	sessionRepo   repositories.SessionRepository
	gemini        GeminiService
	promptBuilder *PromptBuilder
}

func NewInterviewService(sessionRepo repositories.SessionRepository, gemini GeminiService) InterviewService {
	return &interviewService{
		sessionRepo:   sessionRepo,
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
	}
}

type questionsEnvelope struct {
	Questions []models.InterviewQuestion `json:"questions"`
}

type evaluationEnvelope struct {
	OverallScore        *float64               `json:"overall_score"`
	DetailedScores      []models.DetailedScore `json:"detailed_scores"`
	Strengths           []string               `json:"strengths"`
	AreasForImprovement []string               `json:"areas_for_improvement"`
	Recommendation      string                 `json:"recommendation"`
	Summary             string                 `json:"summary"`
}

// GenerateQuestions implements InterviewService. The model's count, numbering
// and categorization are stored verbatim; only the envelope shape is checked.
func (s *interviewService) GenerateQuestions(ctx context.Context, req *models.GenerateQuestionsRequest) (*models.GenerateQuestionsResponse, error) {
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "medium"
	}

	prompt := s.promptBuilder.BuildQuestionPrompt(req)

	log.Printf("Generating %d questions for %s (%s)", req.NumQuestions, req.Position, difficulty)

	response, err := s.gemini.GenerateText(ctx, prompt, 0.7)
	if err != nil {
		return nil, fmt.Errorf("failed to generate questions: %w", err)
	}

	var envelope questionsEnvelope
	if err := parseModelJSON(response, &envelope); err != nil {
		return nil, err
	}

	if len(envelope.Questions) == 0 {
		return nil, &MalformedResponseError{Err: fmt.Errorf("response contains no questions")}
	}

	sessionID := s.sessionRepo.Create(req.Position, difficulty, envelope.Questions)

	log.Printf("Created interview session %s with %d questions", sessionID, len(envelope.Questions))

	return &models.GenerateQuestionsResponse{
		SessionID: sessionID,
		Position:  req.Position,
		Questions: envelope.Questions,
	}, nil
}

// EvaluateAnswers implements InterviewService. The evaluation is attached
// under the submitted identifier whether or not a session exists for it; an
// unknown identifier gets a bare session, a known one has any prior
// evaluation overwritten.
func (s *interviewService) EvaluateAnswers(ctx context.Context, submission *models.InterviewSubmission) (*models.EvaluationResponse, error) {
	prompt := s.promptBuilder.BuildEvaluationPrompt(submission)

	log.Printf("Evaluating %d answers for %s (%s)", len(submission.Answers), submission.ApplicationID, submission.Position)

	response, err := s.gemini.GenerateText(ctx, prompt, 0.3)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate answers: %w", err)
	}

	var envelope evaluationEnvelope
	if err := parseModelJSON(response, &envelope); err != nil {
		return nil, err
	}

	if envelope.OverallScore == nil {
		return nil, &MalformedResponseError{Err: fmt.Errorf("response is missing overall_score")}
	}

	evaluation := &models.Evaluation{
		OverallScore:        *envelope.OverallScore,
		DetailedScores:      envelope.DetailedScores,
		Strengths:           envelope.Strengths,
		AreasForImprovement: envelope.AreasForImprovement,
		Recommendation:      envelope.Recommendation,
		Summary:             envelope.Summary,
		EvaluatedAt:         time.Now().Format(time.RFC3339),
	}

	s.sessionRepo.AttachEvaluation(submission.ApplicationID, evaluation)

	return &models.EvaluationResponse{
		ApplicationID:       submission.ApplicationID,
		OverallScore:        evaluation.OverallScore,
		DetailedScores:      evaluation.DetailedScores,
		Strengths:           evaluation.Strengths,
		AreasForImprovement: evaluation.AreasForImprovement,
		Recommendation:      evaluation.Recommendation,
		Summary:             evaluation.Summary,
	}, nil
}
