package employee

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/saiventuri/EmployeeManagement/internal/shared/apperror"
)

// mapRepositoryError converts raw store failures into AppErrors.
// Unique-constraint violations on email/mobile deliberately surface as
// 500 data-access failures, not 409; existing clients depend on it.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return apperror.Wrap(
			err,
			apperror.CodeDataAccess,
			"could not execute statement: "+pgErr.Message,
			http.StatusInternalServerError,
		)
	}

	return apperror.Wrap(
		err,
		apperror.CodeDataAccess,
		"could not access the data store",
		http.StatusInternalServerError,
	)
}
