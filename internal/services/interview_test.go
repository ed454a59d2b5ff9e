package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"job-application-api/internal/models"
	"job-application-api/internal/repositories"
)

// fakeGemini returns a canned response (or error) and records the prompt it
// was called with.
type fakeGemini struct {
	response string
	err      error
	prompt   string
}

func (f *fakeGemini) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

const questionsJSON = `{
	"questions": [
		{"question_id": 1, "question": "What is a slice?", "category": "technical"},
		{"question_id": 2, "question": "Describe a conflict you resolved.", "category": "behavioral"},
		{"question_id": 3, "question": "A deploy fails at 5pm. What do you do?", "category": "situational"}
	]
}`

const evaluationJSON = `{
	"overall_score": 78.5,
	"detailed_scores": [
		{"question_id": 1, "score": 8.0, "feedback": "Solid answer."},
		{"question_id": 2, "score": 7.5, "feedback": "Good structure."},
		{"question_id": 3, "score": 8.0, "feedback": "Pragmatic."}
	],
	"strengths": ["clear communication"],
	"areas_for_improvement": ["more depth on internals"],
	"recommendation": "hire",
	"summary": "Strong candidate overall."
}`

func TestInterviewService_GenerateQuestions(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{name: "bare JSON response", response: questionsJSON},
		{name: "markdown fenced response", response: "```json\n" + questionsJSON + "\n```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessionRepo := repositories.NewSessionRepository()
			gemini := &fakeGemini{response: tt.response}
			svc := NewInterviewService(sessionRepo, gemini)

			resp, err := svc.GenerateQuestions(context.Background(), &models.GenerateQuestionsRequest{
				Position:     "Software Engineer",
				NumQuestions: 3,
			})
			require.NoError(t, err)

			assert.Equal(t, "SESSION-00001", resp.SessionID)
			assert.Equal(t, "Software Engineer", resp.Position)
			require.Len(t, resp.Questions, 3)
			for _, q := range resp.Questions {
				assert.NotEmpty(t, q.Question)
			}

			// The questions were stored under the new session.
			session, err := sessionRepo.FindByID(resp.SessionID)
			require.NoError(t, err)
			assert.Equal(t, resp.Questions, session.Questions)
			assert.Equal(t, "medium", session.Difficulty)

			assert.Contains(t, gemini.prompt, "Generate exactly 3 interview questions")
		})
	}
}

func TestInterviewService_GenerateQuestions_Errors(t *testing.T) {
	tests := []struct {
		name          string
		gemini        *fakeGemini
		wantMalformed bool
	}{
		{
			name:          "unparseable response",
			gemini:        &fakeGemini{response: "I cannot answer that."},
			wantMalformed: true,
		},
		{
			name:          "empty questions list",
			gemini:        &fakeGemini{response: `{"questions": []}`},
			wantMalformed: true,
		},
		{
			name:   "upstream failure",
			gemini: &fakeGemini{err: errors.New("connection reset")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessionRepo := repositories.NewSessionRepository()
			svc := NewInterviewService(sessionRepo, tt.gemini)

			resp, err := svc.GenerateQuestions(context.Background(), &models.GenerateQuestionsRequest{
				Position:     "Software Engineer",
				NumQuestions: 3,
			})
			require.Error(t, err)
			assert.Nil(t, resp)

			var malformed *MalformedResponseError
			assert.Equal(t, tt.wantMalformed, errors.As(err, &malformed))

			// No session was allocated for a failed generation.
			assert.Equal(t, 0, sessionRepo.Count())
		})
	}
}

func TestInterviewService_EvaluateAnswers(t *testing.T) {
	sessionRepo := repositories.NewSessionRepository()
	gemini := &fakeGemini{response: "```json\n" + evaluationJSON + "\n```"}
	svc := NewInterviewService(sessionRepo, gemini)

	submission := &models.InterviewSubmission{
		ApplicationID: "SESSION-00001",
		Position:      "Software Engineer",
		Answers: []models.QuestionAnswer{
			{QuestionID: 1, Question: "What is a slice?", Answer: "A view over an array."},
			{QuestionID: 2, Question: "Describe a conflict you resolved.", Answer: "We talked it out."},
			{QuestionID: 3, Question: "A deploy fails at 5pm. What do you do?", Answer: "Roll back."},
		},
	}

	resp, err := svc.EvaluateAnswers(context.Background(), submission)
	require.NoError(t, err)

	assert.Equal(t, "SESSION-00001", resp.ApplicationID)
	assert.Equal(t, 78.5, resp.OverallScore)
	require.Len(t, resp.DetailedScores, 3)
	assert.Equal(t, "hire", resp.Recommendation)

	// Evaluation attached under the submitted id, with a timestamp.
	session, err := sessionRepo.FindByID("SESSION-00001")
	require.NoError(t, err)
	require.NotNil(t, session.Evaluation)
	assert.Equal(t, 78.5, session.Evaluation.OverallScore)
	assert.NotEmpty(t, session.Evaluation.EvaluatedAt)

	// Transcript made it into the prompt.
	assert.Contains(t, gemini.prompt, "Q1: What is a slice?\nAnswer: A view over an array.")
}

func TestInterviewService_EvaluateAnswers_UnknownIDCreatesSession(t *testing.T) {
	sessionRepo := repositories.NewSessionRepository()
	svc := NewInterviewService(sessionRepo, &fakeGemini{response: evaluationJSON})

	_, err := svc.EvaluateAnswers(context.Background(), &models.InterviewSubmission{
		ApplicationID: "APP-00007",
		Position:      "Software Engineer",
		Answers:       []models.QuestionAnswer{{QuestionID: 1, Question: "Q", Answer: "A"}},
	})
	require.NoError(t, err)

	session, err := sessionRepo.FindByID("APP-00007")
	require.NoError(t, err)
	require.NotNil(t, session.Evaluation)
	assert.Empty(t, session.Questions)
}

func TestInterviewService_EvaluateAnswers_Errors(t *testing.T) {
	tests := []struct {
		name          string
		gemini        *fakeGemini
		wantMalformed bool
	}{
		{
			name:          "unparseable response",
			gemini:        &fakeGemini{response: "no json here"},
			wantMalformed: true,
		},
		{
			name:          "missing overall_score",
			gemini:        &fakeGemini{response: `{"summary": "fine", "recommendation": "hire"}`},
			wantMalformed: true,
		},
		{
			name:   "upstream failure",
			gemini: &fakeGemini{err: errors.New("503 unavailable")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessionRepo := repositories.NewSessionRepository()
			svc := NewInterviewService(sessionRepo, tt.gemini)

			resp, err := svc.EvaluateAnswers(context.Background(), &models.InterviewSubmission{
				ApplicationID: "APP-00001",
				Position:      "Software Engineer",
				Answers:       []models.QuestionAnswer{{QuestionID: 1, Question: "Q", Answer: "A"}},
			})
			require.Error(t, err)
			assert.Nil(t, resp)

			var malformed *MalformedResponseError
			assert.Equal(t, tt.wantMalformed, errors.As(err, &malformed))

			// A failed evaluation attaches nothing.
			assert.Equal(t, 0, sessionRepo.Count())
		})
	}
}
