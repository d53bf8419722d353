package handlers

import (
	"net/http"
	"strconv"

	"github.com/Kumarankit101/Forms/internal/services"
	"github.com/Kumarankit101/Forms/internal/ws"

	"github.com/gin-gonic/gin"
)

type ResponseHandler struct {
	responseService *services.ResponseService
	hub             *ws.Hub
}

func NewResponseHandler(responseService *services.ResponseService, hub *ws.Hub) *ResponseHandler {
	return &ResponseHandler{responseService: responseService, hub: hub}
}

type SubmitResponseRequest struct {
	Answers map[string]string `json:"answers" binding:"required"`
}

// SubmitResponse godoc
// @Summary      Submit a response
// @Description  Record an anonymous answer set for a form; public endpoint
// @Tags         responses
// @Accept       json
// @Produce      json
// @Param        id path int true "Form ID"
// @Param        request body SubmitResponseRequest true "Answers keyed by question id"
// @Success      201 {object} Response
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/forms/{id}/responses [post]
func (h *ResponseHandler) SubmitResponse(c *gin.Context) {
	formID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid form id"})
		return
	}

	var req SubmitResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	response, err := h.responseService.Submit(uint(formID), req.Answers)
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(response.FormID, ws.WSMessage{Type: "response.created", Data: response})

	c.JSON(http.StatusCreated, response)
}

// ListResponses godoc
// @Summary      List responses
// @Description  Get all responses for an owned form, newest first
// @Tags         responses
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Form ID"
// @Success      200 {array} Response
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/forms/{id}/responses [get]
func (h *ResponseHandler) ListResponses(c *gin.Context) {
	userID := c.GetUint("user_id")
	formID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid form id"})
		return
	}

	responses, err := h.responseService.ListByForm(uint(formID), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses)
}

// DeleteResponse godoc
// @Summary      Delete a response
// @Description  Delete a single response; ownership is checked via the parent form
// @Tags         responses
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Response ID"
// @Success      204
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/responses/{id} [delete]
func (h *ResponseHandler) DeleteResponse(c *gin.Context) {
	userID := c.GetUint("user_id")
	responseID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid response id"})
		return
	}

	if err := h.responseService.Delete(uint(responseID), userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
