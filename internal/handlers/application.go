package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"job-application-api/internal/models"
	"job-application-api/internal/repositories"
	"job-application-api/internal/services"
)

type ApplicationHandler struct {
	appRepo        repositories.ApplicationRepository
	storageService services.StorageService
	pdfInspector   services.PDFInspector
}

func NewApplicationHandler(
	appRepo repositories.ApplicationRepository,
	storageService services.StorageService,
	pdfInspector services.PDFInspector,
) *ApplicationHandler {
	return &ApplicationHandler{
		appRepo:        appRepo,
		storageService: storageService,
		pdfInspector:   pdfInspector,
	}
}

// HandleSubmit handles POST /api/job-application
func (h *ApplicationHandler) HandleSubmit(c *fiber.Ctx) error {
	fullName := c.FormValue("full_name")
	email := c.FormValue("email")
	phone := c.FormValue("phone")
	position := c.FormValue("position")
	coverLetter := c.FormValue("cover_letter")

	required := []struct {
		name  string
		value string
	}{
		{"full_name", fullName},
		{"email", email},
		{"phone", phone},
		{"position", position},
	}
	for _, field := range required {
		if field.value == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("%s is required", field.name),
			})
		}
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume is required",
		})
	}

	// Extension check happens before the body is even read.
	if err := h.storageService.ValidateExtension(fileHeader.Filename); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to open resume: %v", err),
		})
	}
	defer file.Close()

	resumeContent, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to read resume: %v", err),
		})
	}

	applicationID := h.appRepo.NextID()

	resumePath, err := h.storageService.SaveResume(applicationID, fileHeader.Filename, resumeContent)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume: %v", err),
		})
	}

	app := &models.JobApplication{
		ApplicationID:  applicationID,
		FullName:       fullName,
		Email:          email,
		Phone:          phone,
		Position:       position,
		CoverLetter:    coverLetter,
		ResumeFilename: fileHeader.Filename,
		ResumePath:     resumePath,
		ResumeSize:     len(resumeContent),
		SubmittedAt:    time.Now().Format(time.RFC3339),
	}

	// Best effort: a PDF that won't parse is stored without a page count.
	if strings.EqualFold(filepath.Ext(fileHeader.Filename), ".pdf") {
		if pages, err := h.pdfInspector.PageCount(resumeContent); err == nil {
			app.ResumePages = pages
		}
	}

	h.appRepo.Add(app)

	log.Printf("Application %s submitted for %s", applicationID, position)

	return c.JSON(models.JobApplicationResponse{
		Message:       "Application submitted successfully",
		ApplicationID: applicationID,
		SubmittedAt:   app.SubmittedAt,
	})
}

// HandleList handles GET /api/applications
func (h *ApplicationHandler) HandleList(c *fiber.Ctx) error {
	apps := h.appRepo.FindAll()

	return c.JSON(fiber.Map{
		"total":        len(apps),
		"applications": apps,
	})
}

// HandleGet handles GET /api/applications/:id
func (h *ApplicationHandler) HandleGet(c *fiber.Ctx) error {
	app, err := h.appRepo.FindByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Application not found",
		})
	}

	return c.JSON(app)
}

// HandleDownloadResume handles GET /api/applications/:id/resume
func (h *ApplicationHandler) HandleDownloadResume(c *fiber.Ctx) error {
	app, err := h.appRepo.FindByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Application not found",
		})
	}

	data, err := h.storageService.ReadResume(app.ResumePath)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Resume file not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, h.storageService.ContentTypeFor(app.ResumeFilename))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", app.ResumeFilename))
	return c.Send(data)
}

// HandleListResumes handles GET /api/resumes
func (h *ApplicationHandler) HandleListResumes(c *fiber.Ctx) error {
	apps := h.appRepo.FindAll()

	resumes := make([]models.ResumeInfo, 0, len(apps))
	for _, app := range apps {
		exists := h.storageService.FileExists(app.ResumePath)

		var downloadURL *string
		if exists {
			url := fmt.Sprintf("/api/applications/%s/resume", app.ApplicationID)
			downloadURL = &url
		}

		resumes = append(resumes, models.ResumeInfo{
			ApplicationID: app.ApplicationID,
			ApplicantName: app.FullName,
			Position:      app.Position,
			Filename:      app.ResumeFilename,
			FileSize:      app.ResumeSize,
			FileExists:    exists,
			DownloadURL:   downloadURL,
			SubmittedAt:   app.SubmittedAt,
		})
	}

	return c.JSON(fiber.Map{
		"total":   len(resumes),
		"resumes": resumes,
	})
}
