package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bizgrid/bizgrid-backend-go/internal/domain/company"
	"github.com/bizgrid/bizgrid-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CompanyHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	GetCurrent(w http.ResponseWriter, r *http.Request)
	SetCurrent(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &CompanyHandlerImpl{companyService: companyService}
}

// List implements CompanyHandler.
func (c *CompanyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	companies, err := c.companyService.List(r.Context(), userID)
	if err != nil {
		slog.Error("List companies service error", "error", err)
		response.HandleError(w, err)
		return
	}

	companyResponses := make([]company.CompanyResponse, 0, len(companies))
	for _, comp := range companies {
		companyResponses = append(companyResponses, company.NewCompanyResponse(comp))
	}

	response.Success(w, companyResponses)
}

// Create implements CompanyHandler.
func (c *CompanyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq company.CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create company decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		slog.Error("Create company validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := c.companyService.Create(r.Context(), userID, createReq)
	if err != nil {
		slog.Error("Create company service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Company created successfully", "company_id", created.ID)
	response.Created(w, "Company created successfully", company.NewCompanyResponse(created))
}

// Update implements CompanyHandler.
func (c *CompanyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var updateReq company.UpdateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update company decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		slog.Error("Update company validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	updated, err := c.companyService.Update(r.Context(), userID, updateReq)
	if err != nil {
		slog.Error("Update company service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Company updated successfully", "company_id", updated.ID)
	response.SuccessWithMessage(w, "Company updated successfully", company.NewCompanyResponse(updated))
}

// Delete implements CompanyHandler.
func (c *CompanyHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	companyID, err := strconv.ParseInt(chi.URLParam(r, "companyID"), 10, 64)
	if err != nil || companyID <= 0 {
		response.BadRequest(w, "Invalid company id", nil)
		return
	}

	if err := c.companyService.Delete(r.Context(), userID, companyID); err != nil {
		slog.Error("Delete company service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Company deleted successfully", "company_id", companyID)
	response.SuccessWithMessage(w, "Company deleted successfully", nil)
}

// GetCurrent implements CompanyHandler.
func (c *CompanyHandlerImpl) GetCurrent(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	current, err := c.companyService.GetCurrent(r.Context(), userID)
	if err != nil {
		slog.Error("Get current company service error", "error", err)
		response.HandleError(w, err)
		return
	}

	var currentResp company.CurrentCompanyResponse
	if current != nil {
		resp := company.NewCompanyResponse(*current)
		currentResp.CurrentCompany = &resp
	}

	response.Success(w, currentResp)
}

// SetCurrent implements CompanyHandler.
func (c *CompanyHandlerImpl) SetCurrent(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var setCurrentReq company.SetCurrentCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&setCurrentReq); err != nil {
		slog.Error("Set current company decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := setCurrentReq.Validate(); err != nil {
		slog.Error("Set current company validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	current, err := c.companyService.SetCurrent(r.Context(), userID, setCurrentReq.CompanyID)
	if err != nil {
		slog.Error("Set current company service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Current company updated", "company_id", current.ID)
	response.SuccessWithMessage(w, "Current company updated", company.NewCompanyResponse(current))
}
