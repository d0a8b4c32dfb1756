package models

import "time"

// Applicant represents a row in the applicants table
type Applicant struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	ContactNumber string    `json:"contact_number"`
	Email         string    `json:"email"`
	Position      string    `json:"position"`
	ItemNumber    string    `json:"item_number"`
	Office        string    `json:"office"`
	IsPWD         bool      `json:"is_pwd"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName returns the table name for the Applicant model
func (Applicant) TableName() string {
	return "applicants"
}

// ApplicantUpdate is a partial-update payload. Only fields present in the
// request body are sent to the row store; everything else stays untouched.
type ApplicantUpdate struct {
	Name          *string `json:"name,omitempty"`
	Address       *string `json:"address,omitempty"`
	ContactNumber *string `json:"contact_number,omitempty"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email"`
	Position      *string `json:"position,omitempty"`
	ItemNumber    *string `json:"item_number,omitempty"`
	Office        *string `json:"office,omitempty"`
	IsPWD         *bool   `json:"is_pwd,omitempty"`
	Status        *string `json:"status,omitempty"`
}

// IsEmpty returns true when the payload changes nothing
func (u *ApplicantUpdate) IsEmpty() bool {
	return u.Name == nil && u.Address == nil && u.ContactNumber == nil &&
		u.Email == nil && u.Position == nil && u.ItemNumber == nil &&
		u.Office == nil && u.IsPWD == nil && u.Status == nil
}
