package employee

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	employeeerrors "github.com/saiventuri/EmployeeManagement/internal/employee/errors"
)

type Service interface {
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id uint) (EmployeeResponse, error)
	Add(ctx context.Context, empl Employee) (EmployeeResponse, error)
	Update(ctx context.Context, empl Employee) (EmployeeResponse, error)
	DeleteByID(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

// GetAll returns every stored employee. The result is never nil; an
// empty store yields an empty slice.
func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(empls), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.Uint("employee_id", id))
	if id == 0 {
		return EmployeeResponse{}, employeeerrors.NotFound(id)
	}

	empl, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return EmployeeResponse{}, employeeerrors.NotFound(id)
	}
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Uint("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

// Add stores a new employee and returns it with the assigned id.
// Uniqueness of email and mobile number is not pre-checked here; a
// violation surfaces from the store as a data-access failure.
func (s *service) Add(ctx context.Context, empl Employee) (EmployeeResponse, error) {
	s.logger.Debug("add employee requested", zap.String("email", empl.Email))

	if err := s.repo.Create(ctx, &empl); err != nil {
		s.logger.Error("add employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("add employee success", zap.Uint("employee_id", empl.ID))
	return mapToResponse(empl), nil
}

// Update overwrites every mutable field of an existing employee with
// the incoming values. Fields absent from the input become their zero
// value in the stored record; this is a full replace, not a merge.
func (s *service) Update(ctx context.Context, empl Employee) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.Uint("employee_id", empl.ID))
	if empl.ID == 0 {
		return EmployeeResponse{}, employeeerrors.UpdateNotFound(empl.ID)
	}

	existing, err := s.repo.FindByID(ctx, empl.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return EmployeeResponse{}, employeeerrors.UpdateNotFound(empl.ID)
	}
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Uint("employee_id", empl.ID), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	existing.Name = empl.Name
	existing.Designation = empl.Designation
	existing.Department = empl.Department
	existing.DateOfJoining = empl.DateOfJoining
	existing.Salary = empl.Salary
	existing.Gender = empl.Gender
	existing.Email = empl.Email
	existing.MobileNumber = empl.MobileNumber

	if err := s.repo.Save(ctx, existing); err != nil {
		s.logger.Error("update employee persist failed", zap.Uint("employee_id", empl.ID), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update employee success", zap.Uint("employee_id", existing.ID))
	return mapToResponse(*existing), nil
}

func (s *service) DeleteByID(ctx context.Context, id uint) error {
	s.logger.Debug("delete employee requested", zap.Uint("employee_id", id))
	if id == 0 {
		return employeeerrors.DeleteNotFound(id)
	}

	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		s.logger.Error("delete employee existence check failed", zap.Uint("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}
	if !exists {
		return employeeerrors.DeleteNotFound(id)
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Uint("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete employee success", zap.Uint("employee_id", id))
	return nil
}

// DeleteAll clears the employee store. Deleting from an already empty
// store is a no-op, never a failure.
func (s *service) DeleteAll(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		s.logger.Error("delete all employees count failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if count == 0 {
		return nil
	}

	if err := s.repo.DeleteAll(ctx); err != nil {
		s.logger.Error("delete all employees failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete all employees success", zap.Int64("deleted", count))
	return nil
}
