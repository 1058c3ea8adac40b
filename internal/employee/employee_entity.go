package employee

import (
	"strings"
	"time"
)

// Gender is a closed enumeration. An empty value means the gender was
// absent or unrecognized on input; it is stored as-is.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// ParseGender maps wire text to a Gender. Matching is case-insensitive
// and an unrecognized value maps to the empty Gender rather than an
// error.
func ParseGender(s string) Gender {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(GenderMale):
		return GenderMale
	case string(GenderFemale):
		return GenderFemale
	default:
		return ""
	}
}

type Employee struct {
	ID            uint      `gorm:"primaryKey"`
	Name          string    `gorm:"not null"`
	Designation   string    `gorm:"not null"`
	Department    string    `gorm:"not null"`
	DateOfJoining time.Time `gorm:"not null"`
	Salary        int
	Gender        Gender `gorm:"type:varchar(10)"`
	Email         string `gorm:"uniqueIndex;not null"`
	MobileNumber  string `gorm:"uniqueIndex;not null"`
}
