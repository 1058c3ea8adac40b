package usererrors

import (
	"net/http"

	"github.com/saiventuri/EmployeeManagement/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"User not exist",
		http.StatusUnauthorized,
	)

	ErrUserSaveFailed = apperror.New(
		apperror.CodeDataAccess,
		"could not save user",
		http.StatusInternalServerError,
	)
)
