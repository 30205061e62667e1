package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"registration-web/internal/service"
	"registration-web/internal/utils"
)

type ExchangeHandler struct {
	exchangeService *service.ExchangeService
}

func NewExchangeHandler(exchangeService *service.ExchangeService) *ExchangeHandler {
	return &ExchangeHandler{exchangeService: exchangeService}
}

// Latest converts an amount from the base currency at today's rate. With no
// "to" currency, every other available currency is returned.
func (h *ExchangeHandler) Latest(c *fiber.Ctx) error {
	base := c.Query("base", "EUR")
	if !service.IsSupportedCurrency(base) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unsupported base currency", nil)
	}

	amount, err := strconv.ParseFloat(c.Query("amount", "0"), 64)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid amount", err)
	}

	result, err := h.exchangeService.Latest(base, c.Query("to"), amount)
	if err != nil {
		return lookupErrorResponse(c, "Failed to retrieve exchange rates", err)
	}

	return utils.SuccessResponse(c, "Exchange rates retrieved successfully", result)
}

// Historical returns the rates of a specific day (date=YYYY-MM-DD, default
// today) for the base currency.
func (h *ExchangeHandler) Historical(c *fiber.Ctx) error {
	base := c.Query("base", "EUR")
	if !service.IsSupportedCurrency(base) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unsupported base currency", nil)
	}

	result, err := h.exchangeService.Historical(c.Query("date"), base, c.Query("to"))
	if err != nil {
		return lookupErrorResponse(c, "Failed to retrieve exchange rates", err)
	}

	return utils.SuccessResponse(c, "Exchange rates retrieved successfully", result)
}
