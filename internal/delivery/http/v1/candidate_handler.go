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

type CandidateHandler struct {
	pipelineUC domain.PipelineUsecase
}

// NewCandidateHandler registers candidate pipeline routes
func NewCandidateHandler(r *gin.RouterGroup, pipelineUC domain.PipelineUsecase) {
	handler := &CandidateHandler{pipelineUC: pipelineUC}

	candidates := r.Group("/candidates")
	{
		candidates.POST("", handler.SubmitCandidate)
		candidates.GET("", handler.ListCandidates)
		candidates.GET("/:id", handler.GetCandidate)
		candidates.PUT("/:id/:action", handler.Transition)
	}
}

// SubmitCandidateRequest is the request payload for submitting a candidate
type SubmitCandidateRequest struct {
	Name   string   `json:"name" binding:"required"`
	Email  string   `json:"email" binding:"required,email"`
	Phone  string   `json:"phone"`
	Skills []string `json:"skills"`
}

// SubmitCandidate godoc
// @Summary      Submit a candidate
// @Description  Create a candidate in the submitted status (self-submission or recruiter)
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        body  body      SubmitCandidateRequest  true  "Candidate data"
// @Success      201   {object}  response.Response{data=domain.Candidate}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /candidates [post]
// @Security     BearerAuth
func (h *CandidateHandler) SubmitCandidate(c *gin.Context) {
	actor := middleware.PrincipalFromContext(c)

	var req SubmitCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	cand := &domain.Candidate{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Skills: req.Skills,
	}
	if err := h.pipelineUC.SubmitCandidate(c, actor, cand); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Candidate submitted successfully", cand)
}

// ListCandidates godoc
// @Summary      List candidates
// @Description  List pipeline candidates (recruiters see only their own submissions)
// @Tags         candidates
// @Produce      json
// @Param        page       query     int  false  "Page"
// @Param        page_size  query     int  false  "Page size"
// @Success      200  {object}  response.Response{data=[]domain.Candidate}
// @Router       /candidates [get]
// @Security     BearerAuth
func (h *CandidateHandler) ListCandidates(c *gin.Context) {
	actor := middleware.PrincipalFromContext(c)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	candidates, err := h.pipelineUC.ListCandidates(c, actor, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidates retrieved", candidates)
}

// GetCandidate godoc
// @Summary      Get candidate
// @Tags         candidates
// @Produce      json
// @Param        id  path      int  true  "Candidate ID"
// @Success      200 {object}  response.Response{data=domain.Candidate}
// @Failure      404 {object}  response.Response
// @Router       /candidates/{id} [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetCandidate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid candidate ID"))
		return
	}

	cand, err := h.pipelineUC.GetCandidate(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate retrieved", cand)
}

// Transition godoc
// @Summary      Apply a pipeline action to a candidate
// @Description  action is one of review, shortlist, schedule, reject, hire. Terminal statuses refuse further actions.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id      path      int                        true   "Candidate ID"
// @Param        action  path      string                     true   "Pipeline action"
// @Param        body    body      domain.TransitionPayload   false  "Optional note and schedule date"
// @Success      200     {object}  response.Response{data=domain.Candidate}
// @Failure      400     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Router       /candidates/{id}/{action} [put]
// @Security     BearerAuth
func (h *CandidateHandler) Transition(c *gin.Context) {
	actor := middleware.PrincipalFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid candidate ID"))
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

	cand, err := h.pipelineUC.Transition(c, actor, id, action, payload)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate status updated", cand)
}
