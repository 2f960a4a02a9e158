package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/tamanh-his/hisadmin/models"
	"github.com/tamanh-his/hisadmin/services"
	"github.com/tamanh-his/hisadmin/userctx"
)

// OrderController handles lab-order search and specimen type updates
type OrderController struct {
	services *services.Services
}

// NewOrderController creates a new order controller
func NewOrderController(services *services.Services) *OrderController {
	return &OrderController{
		services: services,
	}
}

// SearchOrders handles POST /search-chidinh
func (c *OrderController) SearchOrders(w http.ResponseWriter, r *http.Request) {
	var req models.OrderSearchRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Printf("Failed to decode search-chidinh request: %v", err)
		writeFailure(w)
		return
	}

	month, year, err := parsePeriod(req.Month, req.Year)
	if err != nil {
		log.Printf("Invalid search-chidinh period: %v", err)
		writeFailure(w)
		return
	}

	orders, patientName, err := c.services.Order.Search(r.Context(), req.PID, month, year)
	if err != nil {
		log.Printf("Failed to search orders for patient %s: %v", req.PID, err)
		writeFailure(w)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"data":        orders,
		"patientName": patientName,
	})
}

// GetSpecimenTypes handles GET /get-benhpam
func (c *OrderController) GetSpecimenTypes(w http.ResponseWriter, r *http.Request) {
	types, err := c.services.Order.SpecimenTypes(r.Context())
	if err != nil {
		log.Printf("Failed to load specimen types: %v", err)
		writeFailure(w)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    types,
	})
}

// UpdateSpecimen handles POST /update-chidinh-benhpam. This is the one
// endpoint that includes the raw error message in its failure response.
func (c *OrderController) UpdateSpecimen(w http.ResponseWriter, r *http.Request) {
	var req models.SpecimenUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		c.failWithMessage(w, err)
		return
	}

	month, year, err := parsePeriod(req.Month, req.Year)
	if err != nil {
		c.failWithMessage(w, err)
		return
	}

	actor, _ := userctx.ActorFrom(r.Context())

	err = c.services.Order.UpdateSpecimen(r.Context(), actor, req.OrderID, req.SpecimenID, month, year)
	if err != nil {
		c.failWithMessage(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (c *OrderController) failWithMessage(w http.ResponseWriter, err error) {
	log.Printf("Failed to update specimen: %v", err)
	writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
		"success": false,
		"message": err.Error(),
	})
}

// parsePeriod converts the form's month/year strings to integers
func parsePeriod(monthStr, yearStr string) (month, year int, err error) {
	month, err = strconv.Atoi(monthStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q", monthStr)
	}
	year, err = strconv.Atoi(yearStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year %q", yearStr)
	}
	return month, year, nil
}
