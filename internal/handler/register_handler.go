package handler

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"registration-web/internal/config"
	"registration-web/internal/service"
	"registration-web/internal/utils"
)

const registrationTemplate = "First Name,Middle Name,Last Name,Phone Number,Social ID\nJane,Q,Doe,1234567890,123456789\n"

type RegisterHandler struct {
	registerService *service.RegisterService
	cfg             *config.Config
}

func NewRegisterHandler(registerService *service.RegisterService, cfg *config.Config) *RegisterHandler {
	return &RegisterHandler{
		registerService: registerService,
		cfg:             cfg,
	}
}

// ImportRegistrations classifies one uploaded registration batch, writes the
// accepted accounts to an export file and returns the batch summary.
func (h *RegisterHandler) ImportRegistrations(c *fiber.Ctx) error {
	sessionCode, tempPath, respErr := saveUpload(c, h.cfg)
	if respErr != nil {
		return respErr
	}
	defer os.Remove(tempPath)

	result, err := h.registerService.ProcessFile(tempPath)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Failed to read uploaded file", err)
	}

	exportFile := fmt.Sprintf("%s_accounts.csv", sessionCode)
	exportPath := filepath.Join(h.cfg.ExportPath, exportFile)
	if err := h.registerService.ExportAccounts(result.Accounts, exportPath); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to write processed file", err)
	}

	return utils.SuccessResponse(c, "File processed successfully", fiber.Map{
		"session_code": sessionCode,
		"summary":      result.Summary(),
		"export_file":  exportFile,
	})
}

// DownloadTemplate serves an empty registration batch with one sample row.
func (h *RegisterHandler) DownloadTemplate(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="registrations_template.csv"`)
	return c.SendString(registrationTemplate)
}

// DownloadExport serves a previously produced export file.
func (h *RegisterHandler) DownloadExport(c *fiber.Ctx) error {
	filename := c.Params("filename")
	if filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Filename is required", nil)
	}
	if !isValidFilename(filename) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid filename", nil)
	}

	filePath := filepath.Join(h.cfg.ExportPath, filename)
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Export file not found", err)
	}

	return c.Download(filePath, filename)
}
