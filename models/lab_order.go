package models

// LabOrder is one row of the lab-order search result from a monthly
// partition, joined with the price list and the patient record. Timestamps
// are pre-formatted as DD/MM/YYYY HH:MM:SS strings for display.
type LabOrder struct {
	ID               string     `json:"idchidinh"`
	ServiceName      string     `json:"tenchidinh"`
	PatientName      string     `json:"tenbn"`
	ServiceCode      NullString `json:"mavp"`
	Specimen         NullString `json:"benhpham"`
	PatientType      NullString `json:"doituong"`
	Paid             NullString `json:"tt_thuphi"`
	Done             NullString `json:"tt_thuchien"`
	ProgressID       NullString `json:"id_dienbien"`
	OrderedAt        NullString `json:"ngaychidinh"`
	SampleReceivedAt NullString `json:"ngaynhanmau"`
	ResultReadAt     NullString `json:"ngaydockq"`
	DoctorCode       NullString `json:"mabs"`
	DeptCode         NullString `json:"makp"`
	SlipCode         NullString `json:"maphieu"`
	ManagementCode   NullString `json:"maquanly"`
}

// SpecimenType represents a specimen type reference row (dmbenhpham)
type SpecimenType struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"ten" db:"ten"`
}

// OrderSearchRequest is the JSON body of POST /search-chidinh. Month and
// year arrive as strings from the form selects.
type OrderSearchRequest struct {
	PID   string `json:"pid"`
	Month string `json:"month"`
	Year  string `json:"year"`
}

// SpecimenUpdateRequest is the JSON body of POST /update-chidinh-benhpam
type SpecimenUpdateRequest struct {
	OrderID    string `json:"chidinhId"`
	SpecimenID string `json:"benhpamId"`
	Month      string `json:"month"`
	Year       string `json:"year"`
}
