package controllers

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"

	"github.com/tamanh-his/hisadmin/services"
)

// renderTemplate creates a template set and renders it with the provided data
func renderTemplate(w http.ResponseWriter, templateName string, pageTemplate string, data interface{}) error {
	return renderTemplateWithStatus(w, http.StatusOK, templateName, pageTemplate, data)
}

// renderTemplateWithStatus creates a template set and renders it with the provided data and status code
func renderTemplateWithStatus(w http.ResponseWriter, statusCode int, templateName string, pageTemplate string, data interface{}) error {
	tmpl := template.New(templateName)

	// Parse layout and page template
	_, err := tmpl.ParseFiles("templates/layout.html", pageTemplate)
	if err != nil {
		http.Error(w, "Failed to parse template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}

	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		http.Error(w, "Failed to render template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	return nil
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// writeFailure reports a generic failure: HTTP 500 with the success boolean
// and no error detail
func writeFailure(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, map[string]interface{}{"success": false})
}

// decodeJSON decodes a JSON request body into v
func decodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// Controllers holds all controller instances
type Controllers struct {
	Auth    *AuthController
	Pages   *PagesController
	Room    *RoomController
	Patient *PatientController
	Order   *OrderController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services) *Controllers {
	return &Controllers{
		Auth:    NewAuthController(services),
		Pages:   NewPagesController(services),
		Room:    NewRoomController(services),
		Patient: NewPatientController(services),
		Order:   NewOrderController(services),
	}
}
