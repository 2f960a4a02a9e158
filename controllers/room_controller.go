package controllers

import (
	"log"
	"net/http"

	"github.com/tamanh-his/hisadmin/models"
	"github.com/tamanh-his/hisadmin/services"
	"github.com/tamanh-his/hisadmin/userctx"
)

// RoomController handles supply room assignment updates
type RoomController struct {
	services *services.Services
}

// NewRoomController creates a new room controller
func NewRoomController(services *services.Services) *RoomController {
	return &RoomController{
		services: services,
	}
}

// UpdateStatus handles POST /update-status
func (c *RoomController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req models.RoomUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Printf("Failed to decode update-status request: %v", err)
		writeFailure(w)
		return
	}

	actor, _ := userctx.ActorFrom(r.Context())

	if err := c.services.Room.UpdateAssignment(r.Context(), actor, &req); err != nil {
		log.Printf("Failed to update room %s: %v", req.ID, err)
		writeFailure(w)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
