package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/impresthq/imprest_backend/internal/core/ports/services"
	"github.com/impresthq/imprest_backend/internal/dto"
)

// referenceHandler handles bank account and expense category routes.
type referenceHandler struct {
	bankAccountService     portssvc.BankAccountSvcFacade
	expenseCategoryService portssvc.ExpenseCategorySvcFacade
}

func newReferenceHandler(bas portssvc.BankAccountSvcFacade, ecs portssvc.ExpenseCategorySvcFacade) *referenceHandler {
	return &referenceHandler{bankAccountService: bas, expenseCategoryService: ecs}
}

// registerReferenceRoutes registers bank account and expense category routes.
func registerReferenceRoutes(rg *gin.RouterGroup, bas portssvc.BankAccountSvcFacade, ecs portssvc.ExpenseCategorySvcFacade) {
	h := newReferenceHandler(bas, ecs)

	accounts := rg.Group("/bank-accounts")
	{
		accounts.POST("", h.createBankAccount)
		accounts.GET("", h.listBankAccounts)
		accounts.PUT("/:id/default", h.setDefaultBankAccount)
		accounts.PATCH("/:id", h.updateBankAccount)
		accounts.DELETE("/:id", h.deleteBankAccount)
	}

	categories := rg.Group("/expense-categories")
	{
		categories.POST("", h.createExpenseCategory)
		categories.GET("", h.listExpenseCategories)
		categories.GET("/:id", h.getExpenseCategory)
		categories.PATCH("/:id", h.updateExpenseCategory)
		categories.PUT("/:id/toggle", h.toggleExpenseCategory)
		categories.DELETE("/:id", h.deleteExpenseCategory)
	}
}

// createBankAccount godoc
// @Summary Create a bank account
// @Tags reference
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateBankAccountRequest true "Account details"
// @Success 201 {object} dto.BankAccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Account number already exists"
// @Security BearerAuth
// @Router /bank-accounts [post]
func (h *referenceHandler) createBankAccount(c *gin.Context) {
	var req dto.CreateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	account, err := h.bankAccountService.CreateBankAccount(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create bank account")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBankAccountResponse(account))
}

// listBankAccounts godoc
// @Summary List bank accounts
// @Tags reference
// @Produce  json
// @Success 200 {object} dto.ListBankAccountsResponse
// @Security BearerAuth
// @Router /bank-accounts [get]
func (h *referenceHandler) listBankAccounts(c *gin.Context) {
	accounts, err := h.bankAccountService.ListBankAccounts(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list bank accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBankAccountsResponse(accounts))
}

// setDefaultBankAccount godoc
// @Summary Mark a bank account as the default
// @Tags reference
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 204 "Default updated"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /bank-accounts/{id}/default [put]
func (h *referenceHandler) setDefaultBankAccount(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	if err := h.bankAccountService.SetDefaultBankAccount(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to set default bank account")
		return
	}
	c.Status(http.StatusNoContent)
}

// updateBankAccount godoc
// @Summary Update a bank account
// @Tags reference
// @Accept  json
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   account body dto.UpdateBankAccountRequest true "Fields to update"
// @Success 200 {object} dto.BankAccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /bank-accounts/{id} [patch]
func (h *referenceHandler) updateBankAccount(c *gin.Context) {
	var req dto.UpdateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	account, err := h.bankAccountService.UpdateBankAccount(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update bank account")
		return
	}
	c.JSON(http.StatusOK, dto.ToBankAccountResponse(account))
}

// deleteBankAccount godoc
// @Summary Delete a bank account
// @Description The default account cannot be deleted
// @Tags reference
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Account is the default or still referenced"
// @Security BearerAuth
// @Router /bank-accounts/{id} [delete]
func (h *referenceHandler) deleteBankAccount(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	if err := h.bankAccountService.DeleteBankAccount(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to delete bank account")
		return
	}
	c.Status(http.StatusNoContent)
}

// createExpenseCategory godoc
// @Summary Create an expense category
// @Tags reference
// @Accept  json
// @Produce  json
// @Param   category body dto.CreateExpenseCategoryRequest true "Category details"
// @Success 201 {object} dto.ExpenseCategoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Category name already exists"
// @Security BearerAuth
// @Router /expense-categories [post]
func (h *referenceHandler) createExpenseCategory(c *gin.Context) {
	var req dto.CreateExpenseCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	category, err := h.expenseCategoryService.CreateExpenseCategory(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create expense category")
		return
	}
	c.JSON(http.StatusCreated, dto.ToExpenseCategoryResponse(category))
}

// getExpenseCategory godoc
// @Summary Get an expense category by ID
// @Tags reference
// @Produce  json
// @Param   id path string true "Category ID"
// @Success 200 {object} dto.ExpenseCategoryResponse
// @Failure 404 {object} map[string]string "Category not found"
// @Security BearerAuth
// @Router /expense-categories/{id} [get]
func (h *referenceHandler) getExpenseCategory(c *gin.Context) {
	category, err := h.expenseCategoryService.GetExpenseCategoryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve expense category")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseCategoryResponse(category))
}

// listExpenseCategories godoc
// @Summary List expense categories
// @Tags reference
// @Produce  json
// @Success 200 {object} dto.ListExpenseCategoriesResponse
// @Security BearerAuth
// @Router /expense-categories [get]
func (h *referenceHandler) listExpenseCategories(c *gin.Context) {
	categories, err := h.expenseCategoryService.ListExpenseCategories(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list expense categories")
		return
	}
	c.JSON(http.StatusOK, dto.ToListExpenseCategoriesResponse(categories))
}

// updateExpenseCategory godoc
// @Summary Update an expense category
// @Tags reference
// @Accept  json
// @Produce  json
// @Param   id path string true "Category ID"
// @Param   category body dto.UpdateExpenseCategoryRequest true "Fields to update"
// @Success 200 {object} dto.ExpenseCategoryResponse
// @Failure 404 {object} map[string]string "Category not found"
// @Security BearerAuth
// @Router /expense-categories/{id} [patch]
func (h *referenceHandler) updateExpenseCategory(c *gin.Context) {
	var req dto.UpdateExpenseCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	category, err := h.expenseCategoryService.UpdateExpenseCategory(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update expense category")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseCategoryResponse(category))
}

// toggleExpenseCategory godoc
// @Summary Toggle an expense category's active flag
// @Tags reference
// @Produce  json
// @Param   id path string true "Category ID"
// @Success 200 {object} dto.ExpenseCategoryResponse
// @Failure 404 {object} map[string]string "Category not found"
// @Security BearerAuth
// @Router /expense-categories/{id}/toggle [put]
func (h *referenceHandler) toggleExpenseCategory(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	category, err := h.expenseCategoryService.ToggleExpenseCategory(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err, "Failed to toggle expense category")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseCategoryResponse(category))
}

// deleteExpenseCategory godoc
// @Summary Delete an expense category
// @Tags reference
// @Produce  json
// @Param   id path string true "Category ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 409 {object} map[string]string "Category is still referenced"
// @Security BearerAuth
// @Router /expense-categories/{id} [delete]
func (h *referenceHandler) deleteExpenseCategory(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	if err := h.expenseCategoryService.DeleteExpenseCategory(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to delete expense category")
		return
	}
	c.Status(http.StatusNoContent)
}
