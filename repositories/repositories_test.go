package repositories

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/tamanh-his/hisadmin/database"
	"github.com/tamanh-his/hisadmin/models"
	_ "github.com/mattn/go-sqlite3"
)

func setupTestDB(t *testing.T) *sql.DB {
	// Create a temporary database for testing
	dbPath := "test_" + time.Now().Format("20060102150405.000000000") + ".db"

	t.Cleanup(func() {
		database.CloseDB()
		os.Remove(dbPath)
	})

	// Initialize test database using the actual migration system
	if err := database.InitializeDatabase(dbPath); err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}

	return database.GetDB()
}

func insertUser(t *testing.T, db *sql.DB, loginID, fullName string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO dlogin (userid, hoten) VALUES (?, ?)`, loginID, fullName)
	if err != nil {
		t.Fatalf("Failed to insert user %s: %v", loginID, err)
	}
}

func insertRoom(t *testing.T, db *sql.DB, id, code, name string, deptCode interface{}) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO d_duockp (id, ma, ten, makp) VALUES (?, ?, ?, ?)`,
		id, code, name, deptCode)
	if err != nil {
		t.Fatalf("Failed to insert room %s: %v", id, err)
	}
}

func TestUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	insertUser(t, db, "admin01", "Nguyễn Văn A")

	user, err := repo.GetByLoginID(ctx, "admin01")
	if err != nil {
		t.Fatalf("Failed to get user: %v", err)
	}
	if user == nil {
		t.Fatal("Expected user, got nil")
	}
	if user.FullName != "Nguyễn Văn A" {
		t.Errorf("Expected full name 'Nguyễn Văn A', got %s", user.FullName)
	}

	// An unknown login id is not an error
	missing, err := repo.GetByLoginID(ctx, "nobody")
	if err != nil {
		t.Fatalf("Unexpected error for unknown login: %v", err)
	}
	if missing != nil {
		t.Error("Expected nil for unknown login")
	}
}

func TestRoomRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRoomRepository(db)
	ctx := context.Background()

	insertRoom(t, db, "5", "KD05", "Kho dược nội trú", "014")
	insertRoom(t, db, "11", "KD11", "Kho dược ngoại trú", nil)
	// Hidden room: must not show up in the listing
	insertRoom(t, db, "16", "KD16", "Kho kỹ thuật", "152")

	rooms, err := repo.ListAssignments(ctx)
	if err != nil {
		t.Fatalf("Failed to list rooms: %v", err)
	}
	if len(rooms) != 2 {
		t.Fatalf("Expected 2 visible rooms, got %d", len(rooms))
	}
	for _, room := range rooms {
		if room.ID == "16" {
			t.Error("Hidden room 16 must not be listed")
		}
	}

	// GetDeptCode: present, NULL and missing rows
	code, found, err := repo.GetDeptCode(ctx, "5")
	if err != nil || !found {
		t.Fatalf("Failed to get dept code: found=%v err=%v", found, err)
	}
	if !code.Valid || code.String != "014" {
		t.Errorf("Expected code 014, got (%q, %v)", code.String, code.Valid)
	}

	code, found, err = repo.GetDeptCode(ctx, "11")
	if err != nil || !found {
		t.Fatalf("Failed to get dept code: found=%v err=%v", found, err)
	}
	if code.Valid {
		t.Errorf("Expected NULL code, got %q", code.String)
	}

	_, found, err = repo.GetDeptCode(ctx, "404")
	if err != nil {
		t.Fatalf("Missing row must not be an error: %v", err)
	}
	if found {
		t.Error("Expected found=false for missing room")
	}

	// SetDeptCode writes and clears
	if err := repo.SetDeptCode(ctx, "5", sql.NullString{String: "056", Valid: true}); err != nil {
		t.Fatalf("Failed to set dept code: %v", err)
	}
	code, _, _ = repo.GetDeptCode(ctx, "5")
	if code.String != "056" {
		t.Errorf("Expected updated code 056, got %q", code.String)
	}

	if err := repo.SetDeptCode(ctx, "5", sql.NullString{}); err != nil {
		t.Fatalf("Failed to clear dept code: %v", err)
	}
	code, _, _ = repo.GetDeptCode(ctx, "5")
	if code.Valid {
		t.Errorf("Expected NULL after clear, got %q", code.String)
	}

	// Departments ordered by name
	if _, err := db.Exec(`INSERT INTO btdkp_bv (makp, tenkp) VALUES ('014', 'Nội tổng quát'), ('001', 'Cấp cứu')`); err != nil {
		t.Fatalf("Failed to insert departments: %v", err)
	}
	departments, err := repo.ListDepartments(ctx)
	if err != nil {
		t.Fatalf("Failed to list departments: %v", err)
	}
	if len(departments) != 2 {
		t.Fatalf("Expected 2 departments, got %d", len(departments))
	}
	if departments[0].Name != "Cấp cứu" {
		t.Errorf("Expected departments ordered by name, got %s first", departments[0].Name)
	}
}

func TestAuditRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditRepository(db)
	ctx := context.Background()

	// Unresolvable actor fails the append
	err := repo.Append(ctx, &models.AuditRecord{LoginID: "ghost", Module: "DM_VTYT", Event: "Close"})
	if err == nil {
		t.Fatal("Expected error for unknown actor")
	}

	insertUser(t, db, "admin01", "Nguyễn Văn A")

	first := &models.AuditRecord{
		LoginID:  "admin01",
		Computer: "ws-01",
		HostIP:   "10.8.88.10",
		Module:   "DM_VTYT",
		Event:    "Close",
		OldValue: "056",
		NewValue: "014",
		Note:     "Cập nhật: 056 -> 014",
	}
	if err := repo.Append(ctx, first); err != nil {
		t.Fatalf("Failed to append audit record: %v", err)
	}
	if first.ID == 0 {
		t.Error("Expected record ID to be set after append")
	}
	if first.EmployeeID == 0 {
		t.Error("Expected employee ID to be resolved")
	}

	second := &models.AuditRecord{
		LoginID:  "admin01",
		Module:   "DM_VTYT",
		Event:    "Open",
		OldValue: "014",
		NewValue: "056",
		Note:     "Cập nhật: 014 -> 056",
	}
	if err := repo.Append(ctx, second); err != nil {
		t.Fatalf("Failed to append second audit record: %v", err)
	}

	// Sequential appends get strictly increasing ids, previous max + 1
	if second.ID != first.ID+1 {
		t.Errorf("Expected id %d, got %d", first.ID+1, second.ID)
	}

	latest, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("Failed to get latest audit record: %v", err)
	}
	if latest.ID != second.ID {
		t.Errorf("Expected latest id %d, got %d", second.ID, latest.ID)
	}
	if latest.Event != "Open" || latest.OldValue != "014" || latest.NewValue != "056" {
		t.Errorf("Latest record does not match appended values: %+v", latest)
	}
	if latest.Time.IsZero() {
		t.Error("Expected server-side timestamp to be set")
	}
}

func TestGeoRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGeoRepository(db)
	ctx := context.Background()

	seed := []string{
		`INSERT INTO btdtt (matt, tentt, hide) VALUES ('79', 'TP Hồ Chí Minh', 0), ('01', 'Hà Nội', 0), ('99', 'Ẩn', 1)`,
		`INSERT INTO btdquan (matt, maqu, tenquan, hide) VALUES ('79', '760', 'Quận 1', 0), ('79', '770', 'Quận 3', 0), ('79', '999', 'Ẩn', 1)`,
		`INSERT INTO btdpxa (maqu, maphuongxa, tenpxa, hide) VALUES ('760', '26734', 'Phường Bến Nghé', 0), ('760', '99999', 'Ẩn', 1)`,
	}
	for _, q := range seed {
		if _, err := db.Exec(q); err != nil {
			t.Fatalf("Failed to seed geo data: %v", err)
		}
	}

	provinces, err := repo.ListProvinces(ctx)
	if err != nil {
		t.Fatalf("Failed to list provinces: %v", err)
	}
	if len(provinces) != 2 {
		t.Fatalf("Expected 2 visible provinces, got %d", len(provinces))
	}
	if provinces[0].Code != "01" {
		t.Errorf("Expected provinces ordered by code, got %s first", provinces[0].Code)
	}

	districts, err := repo.ListDistricts(ctx, "79")
	if err != nil {
		t.Fatalf("Failed to list districts: %v", err)
	}
	if len(districts) != 2 {
		t.Fatalf("Expected 2 visible districts, got %d", len(districts))
	}

	wards, err := repo.ListWards(ctx, "760")
	if err != nil {
		t.Fatalf("Failed to list wards: %v", err)
	}
	if len(wards) != 1 {
		t.Fatalf("Expected 1 visible ward, got %d", len(wards))
	}
	if wards[0].Name != "Phường Bến Nghé" {
		t.Errorf("Unexpected ward: %+v", wards[0])
	}
}

func TestPatientRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPatientRepository(db)
	ctx := context.Background()

	seed := []string{
		`INSERT INTO btdtt (matt, tentt) VALUES ('79', 'TP Hồ Chí Minh')`,
		`INSERT INTO btdquan (matt, maqu, tenquan) VALUES ('79', '760', 'Quận 1')`,
		`INSERT INTO btdpxa (maqu, maphuongxa, tenpxa) VALUES ('760', '26734', 'Phường Bến Nghé')`,
		`INSERT INTO btdbn (mabn, hoten, namsinh, sonha, matt, maqu, maphuongxa)
		 VALUES ('24001234', 'Trần Thị B', '1985', '12 Lê Lợi', '79', '760', '26734')`,
	}
	for _, q := range seed {
		if _, err := db.Exec(q); err != nil {
			t.Fatalf("Failed to seed patient data: %v", err)
		}
	}

	patients, err := repo.SearchByPID(ctx, "24001234")
	if err != nil {
		t.Fatalf("Failed to search patient: %v", err)
	}
	if len(patients) != 1 {
		t.Fatalf("Expected 1 patient, got %d", len(patients))
	}
	p := patients[0]
	if p.FullName != "Trần Thị B" {
		t.Errorf("Expected patient name 'Trần Thị B', got %s", p.FullName)
	}
	if !p.ProvinceName.Valid || p.ProvinceName.String != "TP Hồ Chí Minh" {
		t.Errorf("Expected joined province name, got %+v", p.ProvinceName)
	}

	addr, err := repo.GetAddress(ctx, "24001234")
	if err != nil {
		t.Fatalf("Failed to get address: %v", err)
	}
	if addr.ProvinceCode.String != "79" || addr.DistrictCode.String != "760" || addr.WardCode.String != "26734" {
		t.Errorf("Unexpected address: %+v", addr)
	}

	if _, err := repo.GetAddress(ctx, "nobody"); err == nil {
		t.Error("Expected error for unknown patient")
	}

	form := &models.AddressForm{
		PID:          "24001234",
		ProvinceCode: "01",
		DistrictCode: "001",
		WardCode:     "00001",
		HouseNumber:  "5 Tràng Tiền",
	}
	if err := repo.UpdateAddress(ctx, form); err != nil {
		t.Fatalf("Failed to update address: %v", err)
	}

	addr, err = repo.GetAddress(ctx, "24001234")
	if err != nil {
		t.Fatalf("Failed to get updated address: %v", err)
	}
	if addr.ProvinceCode.String != "01" {
		t.Errorf("Expected updated province 01, got %s", addr.ProvinceCode.String)
	}
}
