package controllers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tamanh-his/hisadmin/models"
	"github.com/tamanh-his/hisadmin/services"
	"github.com/tamanh-his/hisadmin/userctx"
)

// PatientController handles patient search, the geographic lookups and
// address updates
type PatientController struct {
	services *services.Services
}

// NewPatientController creates a new patient controller
func NewPatientController(services *services.Services) *PatientController {
	return &PatientController{
		services: services,
	}
}

// SearchPID handles POST /search-pid
func (c *PatientController) SearchPID(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PID string `json:"pid"`
	}
	if err := decodeJSON(r, &req); err != nil {
		log.Printf("Failed to decode search-pid request: %v", err)
		writeFailure(w)
		return
	}

	patients, err := c.services.Patient.Search(r.Context(), req.PID)
	if err != nil {
		log.Printf("Failed to search patient %s: %v", req.PID, err)
		writeFailure(w)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    patients,
	})
}

// GetProvinces handles GET /get-tinh
func (c *PatientController) GetProvinces(w http.ResponseWriter, r *http.Request) {
	provinces, err := c.services.Patient.Provinces(r.Context())
	if err != nil {
		log.Printf("Failed to load provinces: %v", err)
		writeFailure(w)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    provinces,
	})
}

// GetDistricts handles GET /get-huyen/{ma_tinh}
func (c *PatientController) GetDistricts(w http.ResponseWriter, r *http.Request) {
	districts, err := c.services.Patient.Districts(r.Context(), chi.URLParam(r, "ma_tinh"))
	if err != nil {
		log.Printf("Failed to load districts: %v", err)
		writeFailure(w)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    districts,
	})
}

// GetWards handles GET /get-xa/{ma_huyen}
func (c *PatientController) GetWards(w http.ResponseWriter, r *http.Request) {
	wards, err := c.services.Patient.Wards(r.Context(), chi.URLParam(r, "ma_huyen"))
	if err != nil {
		log.Printf("Failed to load wards: %v", err)
		writeFailure(w)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    wards,
	})
}

// UpdateAddress handles POST /update-btdbn
func (c *PatientController) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	var form models.AddressForm
	if err := decodeJSON(r, &form); err != nil {
		log.Printf("Failed to decode update-btdbn request: %v", err)
		writeFailure(w)
		return
	}

	actor, _ := userctx.ActorFrom(r.Context())

	if err := c.services.Patient.UpdateAddress(r.Context(), actor, &form); err != nil {
		log.Printf("Failed to update address for patient %s: %v", form.PID, err)
		writeFailure(w)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
