package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/grifosur/grifo-api/internal/application/service"
	"github.com/grifosur/grifo-api/internal/presentation/http/dto/request"
	"github.com/grifosur/grifo-api/internal/presentation/http/dto/response"
	"github.com/shopspring/decimal"
)

// FuelHandler handles fuel-related HTTP requests
type FuelHandler struct {
	fuelService *service.FuelService
}

// NewFuelHandler creates a new fuel handler
func NewFuelHandler(fuelService *service.FuelService) *FuelHandler {
	return &FuelHandler{fuelService: fuelService}
}

// List handles listing all fuels
func (h *FuelHandler) List(c *gin.Context) {
	fuels, err := h.fuelService.ListFuels(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Fuels retrieved successfully", fuels)
}

// Create handles creating a fuel
func (h *FuelHandler) Create(c *gin.Context) {
	var req request.CreateFuelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	fuel, err := h.fuelService.CreateFuel(c.Request.Context(), &service.CreateFuelInput{
		Name:           req.Name,
		PricePerGallon: req.PricePerGallon,
		StockGallons:   req.StockGallons,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Fuel created successfully", fuel)
}

// Get handles getting a single fuel
func (h *FuelHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid fuel ID")
		return
	}

	fuel, err := h.fuelService.GetFuel(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Fuel retrieved successfully", fuel)
}

// Update handles updating a fuel
func (h *FuelHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid fuel ID")
		return
	}

	var req request.UpdateFuelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	fuel, err := h.fuelService.UpdateFuel(c.Request.Context(), id, &service.UpdateFuelInput{
		Name:           req.Name,
		PricePerGallon: req.PricePerGallon,
		StockGallons:   req.StockGallons,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Fuel updated successfully", fuel)
}

// Delete handles deleting a fuel
func (h *FuelHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid fuel ID")
		return
	}

	if err := h.fuelService.DeleteFuel(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Fuel deleted successfully", nil)
}

// Calculate handles the pump calculator: given an amount it derives the
// quantity, given a quantity (in gallons or liters) it derives the charge
func (h *FuelHandler) Calculate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid fuel ID")
		return
	}

	amountStr := c.Query("amount")
	quantityStr := c.Query("quantity")

	switch {
	case amountStr != "" && quantityStr != "":
		response.BadRequest(c, "Provide either amount or quantity, not both")
	case amountStr != "":
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			response.BadRequest(c, "Invalid amount")
			return
		}
		result, err := h.fuelService.CalculateByAmount(c.Request.Context(), id, amount)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Calculation completed successfully", result)
	case quantityStr != "":
		quantity, err := decimal.NewFromString(quantityStr)
		if err != nil {
			response.BadRequest(c, "Invalid quantity")
			return
		}
		result, err := h.fuelService.CalculateByQuantity(c.Request.Context(), id, quantity, c.Query("unit"))
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Calculation completed successfully", result)
	default:
		response.BadRequest(c, "Provide either amount or quantity")
	}
}

// ConvertGallonsToLiters handles the gallons-to-liters conversion
func (h *FuelHandler) ConvertGallonsToLiters(c *gin.Context) {
	gallons, err := decimal.NewFromString(c.Query("gallons"))
	if err != nil {
		response.BadRequest(c, "Invalid gallons value")
		return
	}

	result, err := h.fuelService.ConvertGallonsToLiters(gallons)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Conversion completed successfully", result)
}

// ConvertLitersToGallons handles the liters-to-gallons conversion
func (h *FuelHandler) ConvertLitersToGallons(c *gin.Context) {
	liters, err := decimal.NewFromString(c.Query("liters"))
	if err != nil {
		response.BadRequest(c, "Invalid liters value")
		return
	}

	result, err := h.fuelService.ConvertLitersToGallons(liters)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Conversion completed successfully", result)
}
