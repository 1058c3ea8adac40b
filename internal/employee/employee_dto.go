package employee

import (
	"net/http"
	"time"

	"github.com/saiventuri/EmployeeManagement/internal/shared/apperror"
)

// dateLayout is the external date format, dd/MM/yyyy.
const dateLayout = "02/01/2006"

var errInvalidDate = apperror.New(
	apperror.CodeInvalidInput,
	"dateOfJoining must be a valid date in dd/MM/yyyy format",
	http.StatusBadRequest,
)

type EmployeeRequest struct {
	ID            uint   `json:"id"`
	Name          string `json:"name" binding:"required"`
	Designation   string `json:"designation" binding:"required"`
	Department    string `json:"department" binding:"required"`
	DateOfJoining string `json:"dateOfJoining" binding:"required"`
	Salary        int    `json:"salary"`
	Gender        string `json:"gender"`
	Email         string `json:"email" binding:"required,email"`
	MobileNumber  string `json:"mobileNumber" binding:"required"`
}

// ToEntity converts the wire representation into the stored one. The
// gender text is coalesced case-insensitively; an unrecognized value
// becomes absent rather than a rejection.
func (r EmployeeRequest) ToEntity() (Employee, error) {
	doj, err := time.Parse(dateLayout, r.DateOfJoining)
	if err != nil {
		return Employee{}, errInvalidDate
	}

	return Employee{
		ID:            r.ID,
		Name:          r.Name,
		Designation:   r.Designation,
		Department:    r.Department,
		DateOfJoining: doj,
		Salary:        r.Salary,
		Gender:        ParseGender(r.Gender),
		Email:         r.Email,
		MobileNumber:  r.MobileNumber,
	}, nil
}

type EmployeeResponse struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Designation   string `json:"designation"`
	Department    string `json:"department"`
	DateOfJoining string `json:"dateOfJoining"`
	Salary        int    `json:"salary"`
	Gender        string `json:"gender"`
	Email         string `json:"email"`
	MobileNumber  string `json:"mobileNumber"`
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            empl.ID,
		Name:          empl.Name,
		Designation:   empl.Designation,
		Department:    empl.Department,
		DateOfJoining: empl.DateOfJoining.Format(dateLayout),
		Salary:        empl.Salary,
		Gender:        string(empl.Gender),
		Email:         empl.Email,
		MobileNumber:  empl.MobileNumber,
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
