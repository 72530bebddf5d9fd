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

type InterviewHandler struct {
	interviewUC domain.InterviewUsecase
}

// NewInterviewHandler registers interview scheduling routes
func NewInterviewHandler(r *gin.RouterGroup, interviewUC domain.InterviewUsecase) {
	handler := &InterviewHandler{interviewUC: interviewUC}

	interviews := r.Group("/interviews")
	{
		interviews.POST("", handler.Schedule)
		interviews.PUT("/:id", handler.Update)
		interviews.GET("/candidate/:id", handler.ListByCandidate)
	}
}

// Schedule godoc
// @Summary      Schedule an interview
// @Description  Creates an interview record. Set notify_manager to send the hiring manager an inbox message and email copy.
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        body  body      domain.InterviewInput  true  "Interview data"
// @Success      201   {object}  response.Response{data=domain.Interview}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /interviews [post]
// @Security     BearerAuth
func (h *InterviewHandler) Schedule(c *gin.Context) {
	actor := middleware.PrincipalFromContext(c)

	var input domain.InterviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	iv, err := h.interviewUC.Schedule(c, actor, &input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Interview scheduled", iv)
}

// Update godoc
// @Summary      Update an interview
// @Description  Reschedule, record the result, or rate. Set notify_manager to notify the hiring manager.
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        id    path      int                    true  "Interview ID"
// @Param        body  body      domain.InterviewInput  true  "Interview data"
// @Success      200   {object}  response.Response{data=domain.Interview}
// @Failure      404   {object}  response.Response
// @Router       /interviews/{id} [put]
// @Security     BearerAuth
func (h *InterviewHandler) Update(c *gin.Context) {
	actor := middleware.PrincipalFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid interview ID"))
		return
	}

	var input domain.InterviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	iv, err := h.interviewUC.Update(c, actor, id, &input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview updated", iv)
}

// ListByCandidate godoc
// @Summary      List a candidate's interviews
// @Tags         interviews
// @Produce      json
// @Param        id  path      int  true  "Candidate ID"
// @Success      200 {object}  response.Response{data=[]domain.Interview}
// @Router       /interviews/candidate/{id} [get]
// @Security     BearerAuth
func (h *InterviewHandler) ListByCandidate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid candidate ID"))
		return
	}

	interviews, err := h.interviewUC.ListByCandidate(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interviews retrieved", interviews)
}
