package models

// RoomAssignment represents a supply room and its current department
// assignment (d_duockp). DeptCode is NULL while the room is open.
type RoomAssignment struct {
	ID       string     `json:"id" db:"id"`
	Code     string     `json:"ma" db:"ma"`
	Name     string     `json:"ten" db:"ten"`
	DeptCode NullString `json:"makp" db:"makp"`
}

// Department represents a hospital department (btdkp_bv)
type Department struct {
	Code string `json:"makp" db:"makp"`
	Name string `json:"tenkp" db:"tenkp"`
}

// RoomUpdateRequest is the JSON body of POST /update-status
type RoomUpdateRequest struct {
	ID       string `json:"id"`
	Action   string `json:"action"`
	DeptCode string `json:"makp"`
}

// Validate validates the room update request
func (r *RoomUpdateRequest) Validate() []string {
	var errors []string

	if r.ID == "" {
		errors = append(errors, "id is required")
	}
	if r.Action == "" {
		errors = append(errors, "action is required")
	}

	return errors
}
