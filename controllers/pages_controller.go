package controllers

import (
	"net/http"

	"github.com/tamanh-his/hisadmin/models"
	"github.com/tamanh-his/hisadmin/services"
	"github.com/tamanh-his/hisadmin/userctx"
)

// PagesController renders the session-gated pages
type PagesController struct {
	services *services.Services
}

// NewPagesController creates a new pages controller
func NewPagesController(services *services.Services) *PagesController {
	return &PagesController{
		services: services,
	}
}

// Index handles GET /
func (c *PagesController) Index(w http.ResponseWriter, r *http.Request) {
	actor, _ := userctx.ActorFrom(r.Context())

	templateData := struct {
		Title    string
		FullName string
		IP       string
	}{
		Title:    "Trang chủ",
		FullName: actor.FullName,
		IP:       actor.HostIP,
	}

	renderTemplate(w, "index", "templates/index.html", templateData)
}

// RoomAssignments handles GET /menu-item-1: the supply room list with the
// department dropdown
func (c *PagesController) RoomAssignments(w http.ResponseWriter, r *http.Request) {
	actor, _ := userctx.ActorFrom(r.Context())

	rooms, err := c.services.Room.ListRooms(r.Context())
	if err != nil {
		http.Error(w, "Failed to load supply rooms: "+err.Error(), http.StatusInternalServerError)
		return
	}

	departments, err := c.services.Room.ListDepartments(r.Context())
	if err != nil {
		http.Error(w, "Failed to load departments: "+err.Error(), http.StatusInternalServerError)
		return
	}

	templateData := struct {
		Title       string
		FullName    string
		IP          string
		Rooms       []models.RoomAssignment
		Departments []models.Department
	}{
		Title:       "Khoa phòng kho dược",
		FullName:    actor.FullName,
		IP:          actor.HostIP,
		Rooms:       rooms,
		Departments: departments,
	}

	renderTemplate(w, "menu-item-1", "templates/menu-item-1.html", templateData)
}

// PatientAddresses handles GET /menu-item-2
func (c *PagesController) PatientAddresses(w http.ResponseWriter, r *http.Request) {
	c.renderActorPage(w, r, "menu-item-2", "Địa chỉ bệnh nhân")
}

// Specimens handles GET /menu-item-3
func (c *PagesController) Specimens(w http.ResponseWriter, r *http.Request) {
	c.renderActorPage(w, r, "menu-item-3", "Sửa bệnh phẩm")
}

func (c *PagesController) renderActorPage(w http.ResponseWriter, r *http.Request, name, title string) {
	actor, _ := userctx.ActorFrom(r.Context())

	templateData := struct {
		Title    string
		FullName string
		IP       string
	}{
		Title:    title,
		FullName: actor.FullName,
		IP:       actor.HostIP,
	}

	renderTemplate(w, name, "templates/"+name+".html", templateData)
}
