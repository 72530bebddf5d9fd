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

type ApplicationHandler struct {
	pipelineUC domain.PipelineUsecase
}

// NewApplicationHandler registers application routes
func NewApplicationHandler(r *gin.RouterGroup, pipelineUC domain.PipelineUsecase) {
	handler := &ApplicationHandler{pipelineUC: pipelineUC}

	apps := r.Group("/applications")
	{
		apps.POST("", handler.CreateApplication)
		apps.PUT("/:id/:action", handler.Transition)
	}
	r.GET("/candidates/:id/applications", handler.ListByCandidate)
}

// CreateApplicationRequest links a candidate to a position
type CreateApplicationRequest struct {
	CandidateID int64 `json:"candidate_id" binding:"required"`
	PositionID  int64 `json:"position_id" binding:"required"`
}

// CreateApplication godoc
// @Summary      Apply a candidate to a position
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      CreateApplicationRequest  true  "Application data"
// @Success      201   {object}  response.Response{data=domain.Application}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	actor := middleware.PrincipalFromContext(c)

	var req CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	app := &domain.Application{
		CandidateID: req.CandidateID,
		PositionID:  req.PositionID,
	}
	if err := h.pipelineUC.CreateApplication(c, actor, app); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application created", app)
}

// ListByCandidate godoc
// @Summary      List applications for a candidate
// @Tags         applications
// @Produce      json
// @Param        id  path      int  true  "Candidate ID"
// @Success      200 {object}  response.Response{data=[]domain.Application}
// @Router       /candidates/{id}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListByCandidate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid candidate ID"))
		return
	}

	apps, err := h.pipelineUC.ListApplicationsByCandidate(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}

// Transition godoc
// @Summary      Apply a pipeline action to an application
// @Description  action is one of review, schedule, offer, hire, reject. Hiring marks onboarding pending.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id      path      int                       true   "Application ID"
// @Param        action  path      string                    true   "Pipeline action"
// @Param        body    body      domain.TransitionPayload  false  "Optional note"
// @Success      200     {object}  response.Response{data=domain.Application}
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Router       /applications/{id}/{action} [put]
// @Security     BearerAuth
func (h *ApplicationHandler) Transition(c *gin.Context) {
	actor := middleware.PrincipalFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}
	action := domain.PipelineAction(c.Param("action"))

	var payload domain.TransitionPayload
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.Error(apperror.BadRequest(err.Error()))
			return
		}
	}

	app, err := h.pipelineUC.TransitionApplication(c, actor, id, action, payload)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", app)
}
