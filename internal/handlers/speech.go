package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"job-application-api/internal/models"
	"job-application-api/internal/services"
)

type SpeechHandler struct {
	ttsService services.TTSService
}

func NewSpeechHandler(ttsService services.TTSService) *SpeechHandler {
	return &SpeechHandler{
		ttsService: ttsService,
	}
}

// HandleTextToSpeech handles POST /api/text-to-speech. The upstream audio
// bytes stream back verbatim; an upstream failure is proxied with its own
// status code and body.
func (h *SpeechHandler) HandleTextToSpeech(c *fiber.Ctx) error {
	var req models.TextToSpeechRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "text is required",
		})
	}

	audio, err := h.ttsService.Synthesize(c.UserContext(), &req)
	if err != nil {
		var upstreamErr *services.UpstreamError
		if errors.As(err, &upstreamErr) {
			return c.Status(upstreamErr.StatusCode).JSON(fiber.Map{
				"error": fmt.Sprintf("ElevenLabs API error: %s", upstreamErr.Body),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, "audio/mpeg")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename=speech.mp3")
	return c.Send(audio)
}
