package models

// User represents a staff login record (dlogin)
type User struct {
	ID           int    `json:"id" db:"id"`
	LoginID      string `json:"userid" db:"userid"`
	FullName     string `json:"hoten" db:"hoten"`
	PasswordHash string `json:"-" db:"matkhau"`
}
