package handlers

import (
	"net/http"
	"strconv"

	"github.com/Kumarankit101/Forms/internal/services"

	"github.com/gin-gonic/gin"
)

type FormHandler struct {
	formService *services.FormService
}

func NewFormHandler(formService *services.FormService) *FormHandler {
	return &FormHandler{formService: formService}
}

// ListForms godoc
// @Summary      List own forms
// @Description  Get all forms owned by the authenticated user, newest first, with response counts
// @Tags         forms
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Form
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/forms [get]
func (h *FormHandler) ListForms(c *gin.Context) {
	userID := c.GetUint("user_id")

	forms, err := h.formService.GetFormsByOwner(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, forms)
}

// GetForm godoc
// @Summary      Get a form
// @Description  Get a form with its questions and options; public so respondents can fill it out
// @Tags         forms
// @Produce      json
// @Param        id path int true "Form ID"
// @Success      200 {object} Form
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/forms/{id} [get]
func (h *FormHandler) GetForm(c *gin.Context) {
	formID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid form id"})
		return
	}

	form, err := h.formService.GetFormByID(uint(formID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, form)
}

// GetFormBySlug godoc
// @Summary      Get a form by share slug
// @Description  Resolve a public share link to the form tree
// @Tags         forms
// @Produce      json
// @Param        slug path string true "Share slug"
// @Success      200 {object} Form
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/share/{slug} [get]
func (h *FormHandler) GetFormBySlug(c *gin.Context) {
	form, err := h.formService.GetFormBySlug(c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, form)
}

// CreateForm godoc
// @Summary      Create a form
// @Description  Create a form together with its ordered questions and options
// @Tags         forms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.CreateFormInput true "Form tree"
// @Success      201 {object} Form
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/forms [post]
func (h *FormHandler) CreateForm(c *gin.Context) {
	userID := c.GetUint("user_id")

	var input services.CreateFormInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	form, err := h.formService.CreateForm(userID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, form)
}

// UpdateForm godoc
// @Summary      Replace a form
// @Description  Update the form's fields and replace its entire question/option tree
// @Tags         forms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Form ID"
// @Param        request body services.CreateFormInput true "Form tree"
// @Success      200 {object} Form
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/forms/{id} [put]
func (h *FormHandler) UpdateForm(c *gin.Context) {
	userID := c.GetUint("user_id")
	formID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid form id"})
		return
	}

	var input services.CreateFormInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	form, err := h.formService.UpdateForm(uint(formID), userID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, form)
}

// DeleteForm godoc
// @Summary      Delete a form
// @Description  Delete a form with all its questions, options and responses
// @Tags         forms
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Form ID"
// @Success      204
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/forms/{id} [delete]
func (h *FormHandler) DeleteForm(c *gin.Context) {
	userID := c.GetUint("user_id")
	formID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid form id"})
		return
	}

	if err := h.formService.DeleteForm(uint(formID), userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
