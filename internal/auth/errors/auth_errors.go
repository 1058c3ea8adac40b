package autherrors

import (
	"net/http"

	"github.com/saiventuri/EmployeeManagement/internal/shared/apperror"
)

var ErrInvalidCredentials = apperror.New(
	apperror.CodeUnauthorized,
	"Invalid user name or password",
	http.StatusUnauthorized,
)
