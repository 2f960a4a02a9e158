package models

import (
	"database/sql"
	"encoding/json"
)

// NullString is a nullable string column that marshals to JSON null when
// absent, instead of the {String, Valid} shape of sql.NullString.
type NullString struct {
	sql.NullString
}

// NewNullString wraps a plain sql.NullString
func NewNullString(s sql.NullString) NullString {
	return NullString{s}
}

// MarshalJSON renders the value or null
func (s NullString) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.String)
}

// UnmarshalJSON accepts a string or null
func (s *NullString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		s.String, s.Valid = "", false
		return nil
	}
	if err := json.Unmarshal(data, &s.String); err != nil {
		return err
	}
	s.Valid = true
	return nil
}
