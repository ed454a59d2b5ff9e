package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"job-application-api/internal/repositories"
)

type AdminHandler struct {
	appRepo     repositories.ApplicationRepository
	sessionRepo repositories.SessionRepository
}

func NewAdminHandler(
	appRepo repositories.ApplicationRepository,
	sessionRepo repositories.SessionRepository,
) *AdminHandler {
	return &AdminHandler{
		appRepo:     appRepo,
		sessionRepo: sessionRepo,
	}
}

// HandleStorageSnapshot handles GET /api/admin/storage
func (h *AdminHandler) HandleStorageSnapshot(c *fiber.Ctx) error {
	apps := h.appRepo.FindAll()
	sessions := h.sessionRepo.All()

	evaluated := 0
	for _, session := range sessions {
		if session.Evaluation != nil {
			evaluated++
		}
	}

	return c.JSON(fiber.Map{
		"applications": fiber.Map{
			"count": len(apps),
			"data":  apps,
		},
		"interview_sessions": fiber.Map{
			"count": len(sessions),
			"data":  sessions,
		},
		"summary": fiber.Map{
			"total_applications":            len(apps),
			"total_interview_sessions":      len(sessions),
			"applications_with_evaluations": evaluated,
		},
	})
}

// HandleReset handles DELETE /api/admin/storage/reset. Resume files on disk
// are left alone; only the in-memory stores are cleared.
func (h *AdminHandler) HandleReset(c *fiber.Ctx) error {
	clearedApps := h.appRepo.Reset()
	clearedSessions := h.sessionRepo.Reset()

	log.Printf("Storage reset: cleared %d applications, %d sessions", clearedApps, clearedSessions)

	return c.JSON(fiber.Map{
		"message": "Storage reset successfully",
		"cleared": fiber.Map{
			"applications": clearedApps,
			"sessions":     clearedSessions,
		},
	})
}
