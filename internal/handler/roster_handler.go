package handler

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"registration-web/internal/config"
	"registration-web/internal/models"
	"registration-web/internal/service"
	"registration-web/internal/utils"
)

type RosterHandler struct {
	rosterService *service.RosterService
	cfg           *config.Config
}

func NewRosterHandler(rosterService *service.RosterService, cfg *config.Config) *RosterHandler {
	return &RosterHandler{
		rosterService: rosterService,
		cfg:           cfg,
	}
}

// ImportRoster returns the members of one uploaded roster batch, optionally
// sorted by last name descending (sort=last_name_desc) and filtered to
// members with an IP address (with_ip=true).
func (h *RosterHandler) ImportRoster(c *fiber.Ctx) error {
	_, tempPath, respErr := saveUpload(c, h.cfg)
	if respErr != nil {
		return respErr
	}
	defer os.Remove(tempPath)

	members, err := h.rosterService.Load(tempPath)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Failed to read uploaded file", err)
	}

	if c.Query("with_ip") == "true" {
		members = service.WithIPAddress(members)
	}
	if c.Query("sort") == "last_name_desc" {
		service.SortByLastNameDesc(members)
	}

	rows := make([]models.RosterRow, 0, len(members))
	for _, member := range members {
		rows = append(rows, models.RosterRow{
			FirstName: member.FirstName,
			LastName:  member.LastName,
			IPAddress: member.IPAddress,
		})
	}

	return utils.SuccessResponse(c, "File processed successfully", fiber.Map{
		"total_members": len(rows),
		"members":       rows,
	})
}

// EnrichRoster looks up a UUID for every member of one uploaded roster batch
// and writes the enriched rows to an export file.
func (h *RosterHandler) EnrichRoster(c *fiber.Ctx) error {
	sessionCode, tempPath, respErr := saveUpload(c, h.cfg)
	if respErr != nil {
		return respErr
	}
	defer os.Remove(tempPath)

	members, err := h.rosterService.Load(tempPath)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Failed to read uploaded file", err)
	}

	exportFile := fmt.Sprintf("%s_roster.csv", sessionCode)
	exportPath := filepath.Join(h.cfg.ExportPath, exportFile)
	if err := h.rosterService.Export(members, exportPath); err != nil {
		return lookupErrorResponse(c, "Failed to enrich roster", err)
	}

	return utils.SuccessResponse(c, "Roster enriched successfully", fiber.Map{
		"session_code":  sessionCode,
		"total_members": len(members),
		"export_file":   exportFile,
	})
}
