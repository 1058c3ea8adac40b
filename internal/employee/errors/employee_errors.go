package employeeerrors

import (
	"fmt"
	"net/http"

	"github.com/saiventuri/EmployeeManagement/internal/shared/apperror"
)

var ErrInvalidEmployeeID = apperror.New(
	apperror.CodeInvalidInput,
	"Employee id must be a number",
	http.StatusBadRequest,
)

// NotFound is the failure returned when a lookup does not resolve.
// The message format is part of the API contract.
func NotFound(id uint) *apperror.AppError {
	return apperror.New(
		apperror.CodeNotFound,
		fmt.Sprintf("Employee with employee id %d not found", id),
		http.StatusNotFound,
	)
}

func UpdateNotFound(id uint) *apperror.AppError {
	return apperror.New(
		apperror.CodeNotFound,
		fmt.Sprintf("Unable to update employee with id %d", id),
		http.StatusNotFound,
	)
}

func DeleteNotFound(id uint) *apperror.AppError {
	return apperror.New(
		apperror.CodeNotFound,
		fmt.Sprintf("Unable to delete employee with id %d", id),
		http.StatusNotFound,
	)
}
