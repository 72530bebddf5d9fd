package v1

import (
	"net/http"
	"strconv"

	"go-hiring-pipeline/internal/delivery/http/middleware"
	"go-hiring-pipeline/internal/delivery/http/response"
	"go-hiring-pipeline/internal/domain"
	"go-hiring-pipeline/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type OnboardingHandler struct {
	onboardingUC domain.OnboardingUsecase
}

// NewOnboardingHandler registers onboarding tracker routes
func NewOnboardingHandler(r *gin.RouterGroup, onboardingUC domain.OnboardingUsecase) {
	handler := &OnboardingHandler{onboardingUC: onboardingUC}

	onboarding := r.Group("/onboarding")
	{
		onboarding.GET("", handler.ListHired)
		onboarding.PUT("/:id/status", handler.SetStatus)
	}
}

// UpdateOnboardingRequest is the status change payload
type UpdateOnboardingRequest struct {
	OnboardingStatus domain.OnboardingStatus `json:"onboarding_status" binding:"required"`
}

// ListHired godoc
// @Summary      List my hired candidates' onboarding records
// @Tags         onboarding
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Onboarding}
// @Router       /onboarding [get]
// @Security     BearerAuth
func (h *OnboardingHandler) ListHired(c *gin.Context) {
	actor := middleware.PrincipalFromContext(c)

	records, err := h.onboardingUC.ListHired(c, actor)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Onboarding records retrieved", records)
}

// SetStatus godoc
// @Summary      Update an onboarding record's status
// @Description  Statuses may be set in any order. Only the owning manager can update a record.
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        id    path      int                      true  "Onboarding ID"
// @Param        body  body      UpdateOnboardingRequest  true  "New status"
// @Success      200   {object}  response.Response{data=domain.Onboarding}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /onboarding/{id}/status [put]
// @Security     BearerAuth
func (h *OnboardingHandler) SetStatus(c *gin.Context) {
	actor := middleware.PrincipalFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid onboarding ID"))
		return
	}

	var req UpdateOnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	record, err := h.onboardingUC.SetStatus(c, actor, id, req.OnboardingStatus)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Onboarding status updated", record)
}
