package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bizgrid/bizgrid-backend-go/internal/domain/employee"
	"github.com/bizgrid/bizgrid-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Invite(w http.ResponseWriter, r *http.Request)
	Remove(w http.ResponseWriter, r *http.Request)
	UpdateRole(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// List implements EmployeeHandler.
func (e *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employees, err := e.employeeService.List(r.Context(), userID)
	if err != nil {
		slog.Error("List employees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	employeeResponses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, detail := range employees {
		employeeResponses = append(employeeResponses, employee.NewEmployeeResponse(detail))
	}

	response.Success(w, employeeResponses)
}

// Invite implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Invite(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var inviteReq employee.InviteEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&inviteReq); err != nil {
		slog.Error("Invite employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := inviteReq.Validate(); err != nil {
		slog.Error("Invite employee validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := e.employeeService.Invite(r.Context(), userID, inviteReq)
	if err != nil {
		slog.Error("Invite employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee invited successfully", "employee_id", created.ID)
	response.Created(w, "Employee invited successfully", employee.NewMembershipResponse(created))
}

// Remove implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Remove(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employeeID, err := strconv.ParseInt(chi.URLParam(r, "employeeID"), 10, 64)
	if err != nil || employeeID <= 0 {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	if err := e.employeeService.Remove(r.Context(), userID, employeeID); err != nil {
		slog.Error("Remove employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee removed successfully", "employee_id", employeeID)
	response.SuccessWithMessage(w, "Employee removed successfully", nil)
}

// UpdateRole implements EmployeeHandler.
func (e *EmployeeHandlerImpl) UpdateRole(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var updateReq employee.UpdateEmployeeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update employee role decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		slog.Error("Update employee role validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	updated, err := e.employeeService.UpdateRole(r.Context(), userID, updateReq)
	if err != nil {
		slog.Error("Update employee role service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee role updated", "employee_id", updated.ID)
	response.SuccessWithMessage(w, "Employee role updated successfully", employee.NewMembershipResponse(updated))
}
