package http

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cartwise/backend/internal/domain"
)

// ShoppingPlanner runs the extraction-search-selection pipeline for one
// free-text request.
type ShoppingPlanner interface {
	Plan(ctx context.Context, userText string) (*domain.ShoppingPlan, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	planner ShoppingPlanner
}

// NewHandler creates a new HTTP handler
func NewHandler(planner ShoppingPlanner) *Handler {
	return &Handler{planner: planner}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "cartwise-backend",
		"version": "1.0.0",
	})
}

// Index renders the request form
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index", gin.H{})
}

// PlanForm runs the pipeline for a form submission and renders the result
// table with summary badges.
func (h *Handler) PlanForm(c *gin.Context) {
	userText := c.PostForm("request")
	if userText == "" {
		c.HTML(http.StatusBadRequest, "index", gin.H{
			"Error": "Please describe what you want to buy.",
		})
		return
	}

	plan, err := h.planner.Plan(c.Request.Context(), userText)
	if err != nil {
		log.Printf("[http] plan failed: %v", err)
		c.HTML(statusForError(err), "index", gin.H{
			"Error":   userMessageForError(err),
			"Request": userText,
		})
		return
	}

	c.HTML(http.StatusOK, "result", resultView(plan))
}

// planRequest is the JSON API request body
type planRequest struct {
	Text string `json:"text" binding:"required"`
}

// PlanJSON runs the pipeline and returns the raw plan as JSON
func (h *Handler) PlanJSON(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "field 'text' is required"})
		return
	}

	plan, err := h.planner.Plan(c.Request.Context(), req.Text)
	if err != nil {
		log.Printf("[http] plan failed: %v", err)
		c.JSON(statusForError(err), gin.H{"error": userMessageForError(err)})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// statusForError maps pipeline errors onto HTTP statuses. Upstream failures
// are gateway errors; everything else is ours.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrModelOutputInvalid),
		errors.Is(err, domain.ErrModelCallFailure),
		errors.Is(err, domain.ErrSearchProviderFailure):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// userMessageForError keeps provider internals out of user-facing messages.
func userMessageForError(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return "The request was empty or invalid."
	case errors.Is(err, domain.ErrModelOutputInvalid), errors.Is(err, domain.ErrModelCallFailure):
		return "The assistant could not process this request. Please try again."
	case errors.Is(err, domain.ErrSearchProviderFailure):
		return "Shopping search is unavailable right now. Please try again later."
	case errors.Is(err, domain.ErrRateLimited):
		return "Too many requests, please slow down."
	default:
		return "Something went wrong. Please try again."
	}
}

// resultView shapes a plan for the result template: badges plus table rows.
func resultView(plan *domain.ShoppingPlan) gin.H {
	currency := ""
	if plan.Request.Constraints.Currency != nil {
		currency = *plan.Request.Constraints.Currency
	}
	budget := ""
	if plan.Request.Constraints.Budget != nil {
		budget = *plan.Request.Constraints.Budget
	}

	return gin.H{
		"Location": plan.Request.Constraints.Location,
		"Budget":   budget,
		"Currency": currency,
		"Total":    plan.Selection.Total,
		"Selected": plan.Selection.Selected,
		"Raw":      plan.Request.Raw,
	}
}
