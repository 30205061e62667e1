package handler

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"registration-web/internal/config"
	"registration-web/internal/service"
	"registration-web/internal/utils"
)

// saveUpload validates the multipart "file" field and stores it under the
// configured upload path, named after a fresh session code. The returned
// fiber error, when non-nil, is the already-written response.
func saveUpload(c *fiber.Ctx, cfg *config.Config) (sessionCode, tempPath string, respErr error) {
	file, err := c.FormFile("file")
	if err != nil {
		return "", "", utils.ErrorResponse(c, fiber.StatusBadRequest, "File is required", err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".csv" && ext != ".xlsx" && ext != ".xls" {
		return "", "", utils.ErrorResponse(c, fiber.StatusBadRequest, "Only tabular files (.csv, .xlsx, .xls) are allowed", nil)
	}

	if file.Size > int64(cfg.UploadMaxSize) {
		return "", "", utils.ErrorResponse(c, fiber.StatusBadRequest, "File size exceeds maximum limit", nil)
	}

	sessionCode = fmt.Sprintf("UPLOAD-%s", uuid.New().String()[:8])
	tempPath = filepath.Join(cfg.UploadPath, fmt.Sprintf("%s%s", sessionCode, ext))
	if err := c.SaveFile(file, tempPath); err != nil {
		return "", "", utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save file", err)
	}

	return sessionCode, tempPath, nil
}

// lookupErrorResponse maps upstream lookup failures to 502 and everything
// else to 500.
func lookupErrorResponse(c *fiber.Ctx, message string, err error) error {
	var upstream *service.UpstreamError
	if errors.As(err, &upstream) {
		return utils.ErrorResponse(c, fiber.StatusBadGateway, message, err)
	}
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, message, err)
}

// isValidFilename validates a download filename to prevent directory
// traversal.
func isValidFilename(filename string) bool {
	if len(filename) == 0 || len(filename) > 255 {
		return false
	}

	dangerousChars := []string{"..", "/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	for _, char := range dangerousChars {
		if strings.Contains(filename, char) {
			return false
		}
	}
	return true
}
