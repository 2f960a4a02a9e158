package models

// Patient is one row of the patient search result: the btdbn record joined
// with the geographic reference names. JSON keys follow the legacy column
// aliases the front end expects.
type Patient struct {
	PID          string     `json:"ma_bn" db:"mabn"`
	FullName     string     `json:"ho_ten" db:"hoten"`
	BirthYear    NullString `json:"nam_sinh" db:"namsinh"`
	HouseNumber  NullString `json:"so_nha" db:"sonha"`
	ProvinceCode NullString `json:"ma_tinh" db:"matt"`
	ProvinceName NullString `json:"ten_tinh" db:"tentt"`
	DistrictCode NullString `json:"ma_huyen" db:"maqu"`
	DistrictName NullString `json:"ten_huyen" db:"tenquan"`
	WardCode     NullString `json:"ma_xa" db:"maphuongxa"`
	WardName     NullString `json:"ten_xa" db:"tenpxa"`
}

// Address holds the three geographic codes of a patient record, used as the
// before image when an address is edited
type Address struct {
	ProvinceCode NullString
	DistrictCode NullString
	WardCode     NullString
}

// AddressForm is the JSON body of POST /update-btdbn
type AddressForm struct {
	PID          string `json:"pid"`
	ProvinceCode string `json:"ma_tinh"`
	DistrictCode string `json:"ma_huyen"`
	WardCode     string `json:"ma_xa"`
	HouseNumber  string `json:"sonha"`
}

// Validate validates the address form data
func (f *AddressForm) Validate() []string {
	var errors []string

	if f.PID == "" {
		errors = append(errors, "pid is required")
	}
	if f.ProvinceCode == "" {
		errors = append(errors, "ma_tinh is required")
	}
	if f.DistrictCode == "" {
		errors = append(errors, "ma_huyen is required")
	}
	if f.WardCode == "" {
		errors = append(errors, "ma_xa is required")
	}

	return errors
}

// Province represents a province/city reference row (btdtt)
type Province struct {
	Code string `json:"ma_tinh" db:"matt"`
	Name string `json:"ten_tinh" db:"tentt"`
}

// District represents a district reference row (btdquan)
type District struct {
	Code         string `json:"ma_huyen" db:"maqu"`
	ProvinceCode string `json:"ma_tinh" db:"matt"`
	Name         string `json:"ten_huyen" db:"tenquan"`
}

// Ward represents a ward reference row (btdpxa)
type Ward struct {
	Code         string `json:"ma_xa" db:"maphuongxa"`
	DistrictCode string `json:"ma_huyen" db:"maqu"`
	Name         string `json:"ten_xa" db:"tenpxa"`
}
