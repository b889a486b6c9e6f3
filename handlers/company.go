package handlers

import (
	"net/http"

	"campushire/models"
	"campushire/services/company"
	"campushire/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CompanyHandler bundles the recruiter endpoints around the company service.
type CompanyHandler struct {
	Service company.CompanyService
}

// RegisterCompanyHandler handles POST /companies/register.
func (h *CompanyHandler) RegisterCompanyHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var data models.CompanyRegistrationData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.RegisterCompany(data)
	if err != nil {
		logger.Error("Company registration failed", zap.String("email", data.Email), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateCompanyHandler handles POST /companies/auth.
func (h *CompanyHandler) AuthenticateCompanyHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.AuthenticateCompany(req.Email, req.Password)
	if err != nil {
		logger.Warn("Company authentication failed", zap.String("email", req.Email))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetCompanyHandler handles GET /companies/me.
func (h *CompanyHandler) GetCompanyHandler(c *gin.Context) {
	companyID := c.GetString("companyID")
	rec, err := h.Service.GetCompanyByID(companyID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// ListCompaniesHandler handles GET /companies.
func (h *CompanyHandler) ListCompaniesHandler(c *gin.Context) {
	companies, err := h.Service.GetAllCompanies()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, companies)
}

// UpdateCompanyHandler handles PUT /companies/me.
func (h *CompanyHandler) UpdateCompanyHandler(c *gin.Context) {
	companyID := c.GetString("companyID")

	rec, err := h.Service.GetCompanyByID(companyID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	var req struct {
		Name     string `json:"name"`
		Industry string `json:"industry"`
		Website  string `json:"website"`
		About    string `json:"about"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if req.Name != "" {
		rec.Name = req.Name
	}
	if req.Industry != "" {
		rec.Industry = req.Industry
	}
	if req.Website != "" {
		rec.Website = req.Website
	}
	if req.About != "" {
		rec.About = req.About
	}

	if err := h.Service.UpdateCompany(rec); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// DeleteCompanyHandler handles DELETE /companies/me.
func (h *CompanyHandler) DeleteCompanyHandler(c *gin.Context) {
	companyID := c.GetString("companyID")
	if err := h.Service.DeleteCompany(companyID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Company deleted"})
}
