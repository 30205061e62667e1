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

const dedupeTemplate = "ID,First Name,Last Name,DOB\n1,Jane,Doe,31011990\n"

type DedupeHandler struct {
	dedupeService *service.DedupeService
	cfg           *config.Config
}

func NewDedupeHandler(dedupeService *service.DedupeService, cfg *config.Config) *DedupeHandler {
	return &DedupeHandler{
		dedupeService: dedupeService,
		cfg:           cfg,
	}
}

// DedupeAccounts partitions one uploaded batch by repeated ID, writes the
// valid partition to an export file and returns both partitions.
func (h *DedupeHandler) DedupeAccounts(c *fiber.Ctx) error {
	sessionCode, tempPath, respErr := saveUpload(c, h.cfg)
	if respErr != nil {
		return respErr
	}
	defer os.Remove(tempPath)

	result, err := h.dedupeService.PartitionFile(tempPath)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Failed to read uploaded file", err)
	}

	exportFile := fmt.Sprintf("%s_valid_accounts.csv", sessionCode)
	exportPath := filepath.Join(h.cfg.ExportPath, exportFile)
	if err := h.dedupeService.ExportValid(result, exportPath); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to write processed file", err)
	}

	return utils.SuccessResponse(c, "File processed successfully", fiber.Map{
		"session_code": sessionCode,
		"result":       result,
		"export_file":  exportFile,
	})
}

// DownloadTemplate serves an empty dedupe batch with one sample row.
func (h *DedupeHandler) DownloadTemplate(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="accounts_dedupe_template.csv"`)
	return c.SendString(dedupeTemplate)
}
