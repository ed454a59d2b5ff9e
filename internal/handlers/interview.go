package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"job-application-api/internal/models"
	"job-application-api/internal/repositories"
	"job-application-api/internal/services"
)

type InterviewHandler struct {
	interviewService services.InterviewService
	sessionRepo      repositories.SessionRepository
	upstreamTimeout  time.Duration
}

func NewInterviewHandler(
	interviewService services.InterviewService,
	sessionRepo repositories.SessionRepository,
	upstreamTimeout time.Duration,
) *InterviewHandler {
	return &InterviewHandler{
		interviewService: interviewService,
		sessionRepo:      sessionRepo,
		upstreamTimeout:  upstreamTimeout,
	}
}

// HandleGenerateQuestions handles POST /api/interview/generate-questions
func (h *InterviewHandler) HandleGenerateQuestions(c *fiber.Ctx) error {
	var req models.GenerateQuestionsRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Position == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "position is required",
		})
	}

	if req.NumQuestions == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "num_questions is required",
		})
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), h.upstreamTimeout)
	defer cancel()

	resp, err := h.interviewService.GenerateQuestions(ctx, &req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(resp)
}

// HandleEvaluate handles POST /api/interview/evaluate
func (h *InterviewHandler) HandleEvaluate(c *fiber.Ctx) error {
	var submission models.InterviewSubmission

	if err := c.BodyParser(&submission); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if submission.ApplicationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "application_id is required",
		})
	}

	if submission.Position == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "position is required",
		})
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), h.upstreamTimeout)
	defer cancel()

	resp, err := h.interviewService.EvaluateAnswers(ctx, &submission)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(resp)
}

// HandleGetSession handles GET /api/interview/session/:id
func (h *InterviewHandler) HandleGetSession(c *fiber.Ctx) error {
	session, err := h.sessionRepo.FindByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Interview session not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(session)
}

// HandleListSessions handles GET /api/interview/sessions
func (h *InterviewHandler) HandleListSessions(c *fiber.Ctx) error {
	sessions := h.sessionRepo.All()

	return c.JSON(fiber.Map{
		"total":    len(sessions),
		"sessions": sessions,
	})
}
