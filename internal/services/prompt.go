package services

import (
	"fmt"
	"strings"

	"job-application-api/internal/models"
)

const defaultCategories = "technical, behavioral, and situational"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildQuestionPrompt creates the prompt for interview question generation.
// The model is asked for a bare JSON envelope; fence stripping downstream
// handles providers that wrap it in markdown anyway.
func (pb *PromptBuilder) BuildQuestionPrompt(req *models.GenerateQuestionsRequest) string {
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "medium"
	}

	categories := defaultCategories
	if len(req.Categories) > 0 {
		categories = strings.Join(req.Categories, ", ")
	}

	return fmt.Sprintf(`Generate exactly %d interview questions for a %s position.

Difficulty level: %s
Question categories: %s

Requirements:
1. Generate diverse questions covering different aspects of the role
2. Include a mix of: %s
3. Questions should be clear, professional, and relevant to %s
4. Difficulty should be %s

Return the response in the following JSON format ONLY (no markdown, no extra text):
{
    "questions": [
        {
            "question_id": 1,
            "question": "Question text here",
            "category": "technical/behavioral/situational"
        }
    ]
}`,
		req.NumQuestions, req.Position, difficulty, categories,
		categories, req.Position, difficulty)
}

// BuildEvaluationPrompt creates the grading prompt from the candidate's
// question/answer transcript.
func (pb *PromptBuilder) BuildEvaluationPrompt(submission *models.InterviewSubmission) string {
	var transcript []string
	for _, ans := range submission.Answers {
		transcript = append(transcript, fmt.Sprintf("Q%d: %s\nAnswer: %s", ans.QuestionID, ans.Question, ans.Answer))
	}

	return fmt.Sprintf(`You are an expert technical interviewer evaluating a candidate for a %s position.

Interview Answers:
%s

Please provide a comprehensive evaluation in the following JSON format ONLY (no markdown, no extra text):
{
    "overall_score": 0.0,
    "detailed_scores": [
        {
            "question_id": 1,
            "score": 0.0,
            "feedback": "Specific feedback for this answer"
        }
    ],
    "strengths": ["List key strengths demonstrated"],
    "areas_for_improvement": ["List areas that need improvement"],
    "recommendation": "hire/maybe/reject with brief explanation",
    "summary": "Brief overall assessment of the candidate"
}

Scoring Guidelines:
- overall_score: 0-100 scale
- question scores: 0-10 scale
- Be fair, objective, and constructive
- Consider technical accuracy, communication skills, problem-solving approach
- Provide specific, actionable feedback`,
		submission.Position, strings.Join(transcript, "\n\n"))
}
