package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/bizgrid/bizgrid-backend-go/internal/domain/company"
	"github.com/bizgrid/bizgrid-backend-go/internal/domain/employee"
	"github.com/bizgrid/bizgrid-backend-go/internal/domain/role"
	"github.com/bizgrid/bizgrid-backend-go/internal/domain/user"
	"github.com/jackc/pgx/v5"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	user.UserRepository
	roleRepo role.RoleRepository
}

func NewEmployeeService(
	employeeRepository employee.EmployeeRepository,
	userRepository user.UserRepository,
	roleRepository role.RoleRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepository,
		UserRepository:     userRepository,
		roleRepo:           roleRepository,
	}
}

// currentCompany resolves the caller's selected company and returns it.
// Every employee operation is scoped to this company.
func (e *EmployeeServiceImpl) currentCompany(ctx context.Context, callerID int64) (int64, error) {
	caller, err := e.UserRepository.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, user.ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to get user: %w", err)
	}

	if caller.CurrentCompanyID == nil {
		return 0, employee.ErrNoCurrentCompany
	}

	return *caller.CurrentCompanyID, nil
}

// requireAdmin resolves the caller's current company and verifies the caller
// holds the admin role in it.
func (e *EmployeeServiceImpl) requireAdmin(ctx context.Context, callerID int64) (int64, error) {
	companyID, err := e.currentCompany(ctx, callerID)
	if err != nil {
		return 0, err
	}

	callerEmployee, err := e.EmployeeRepository.GetByUserAndCompany(ctx, callerID, companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, employee.ErrAdminRequired
		}
		return 0, fmt.Errorf("failed to get caller employee: %w", err)
	}

	callerRole, err := e.roleRepo.GetByID(ctx, callerEmployee.RoleID)
	if err != nil {
		return 0, fmt.Errorf("failed to get caller role: %w", err)
	}

	if callerRole.Name != role.NameAdmin {
		return 0, employee.ErrAdminRequired
	}

	return companyID, nil
}

// List implements employee.EmployeeService. Any member of the current
// company may see its roster.
func (e *EmployeeServiceImpl) List(ctx context.Context, callerID int64) ([]employee.EmployeeDetail, error) {
	companyID, err := e.currentCompany(ctx, callerID)
	if err != nil {
		return nil, err
	}

	exists, err := e.EmployeeRepository.ExistsByUserAndCompany(ctx, callerID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if !exists {
		return nil, company.ErrNotCompanyMember
	}

	employees, err := e.EmployeeRepository.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return employees, nil
}

// Invite implements employee.EmployeeService. The invited account must
// already exist; it joins the current company with the staff role.
func (e *EmployeeServiceImpl) Invite(ctx context.Context, callerID int64, req employee.InviteEmployeeRequest) (employee.Employee, error) {
	companyID, err := e.requireAdmin(ctx, callerID)
	if err != nil {
		return employee.Employee{}, err
	}

	invited, err := e.UserRepository.GetByUsername(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, user.ErrUserNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get invited user: %w", err)
	}

	exists, err := e.EmployeeRepository.ExistsByUserAndCompany(ctx, invited.ID, companyID)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to check membership: %w", err)
	}
	if exists {
		return employee.Employee{}, employee.ErrAlreadyEmployee
	}

	staffRole, err := e.roleRepo.GetByName(ctx, companyID, role.NameStaff)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, role.ErrDefaultRoleMissing
		}
		return employee.Employee{}, fmt.Errorf("failed to get staff role: %w", err)
	}

	created, err := e.EmployeeRepository.Create(ctx, employee.Employee{
		UserID:    invited.ID,
		CompanyID: companyID,
		RoleID:    staffRole.ID,
	})
	if err != nil {
		// A concurrent invite of the same user loses the race here and hits
		// the membership uniqueness constraint.
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrAlreadyEmployee
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// Remove implements employee.EmployeeService. The target row must belong to
// the caller's current company; ids from other tenants read as not found.
func (e *EmployeeServiceImpl) Remove(ctx context.Context, callerID int64, employeeID int64) error {
	companyID, err := e.requireAdmin(ctx, callerID)
	if err != nil {
		return err
	}

	target, err := e.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}

	if target.CompanyID != companyID {
		return employee.ErrEmployeeNotInCompany
	}

	if err := e.EmployeeRepository.Delete(ctx, employeeID); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}

// UpdateRole implements employee.EmployeeService. Both the target employee
// and the new role must belong to the caller's current company.
func (e *EmployeeServiceImpl) UpdateRole(ctx context.Context, callerID int64, req employee.UpdateEmployeeRoleRequest) (employee.Employee, error) {
	companyID, err := e.requireAdmin(ctx, callerID)
	if err != nil {
		return employee.Employee{}, err
	}

	target, err := e.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if target.CompanyID != companyID {
		return employee.Employee{}, employee.ErrEmployeeNotInCompany
	}

	newRole, err := e.roleRepo.GetByID(ctx, req.RoleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, role.ErrRoleNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get role: %w", err)
	}
	if newRole.CompanyID != companyID {
		return employee.Employee{}, employee.ErrRoleNotInCompany
	}

	updated, err := e.EmployeeRepository.UpdateRole(ctx, req.EmployeeID, req.RoleID)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update employee role: %w", err)
	}

	return updated, nil
}
