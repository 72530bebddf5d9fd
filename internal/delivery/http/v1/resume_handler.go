package v1

import (
	"io"
	"net/http"
	"strconv"

	"go-hiring-pipeline/internal/delivery/http/middleware"
	"go-hiring-pipeline/internal/delivery/http/response"
	"go-hiring-pipeline/internal/domain"
	"go-hiring-pipeline/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// maxResumeSize caps resume uploads at 5 MB
const maxResumeSize = 5 << 20

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
}

// NewResumeHandler registers resume routes. Uploads get a tighter rate limit.
func NewResumeHandler(r *gin.RouterGroup, resumeUC domain.ResumeUsecase, uploadLimit gin.HandlerFunc) {
	handler := &ResumeHandler{resumeUC: resumeUC}

	resumes := r.Group("/resumes")
	{
		resumes.POST("", uploadLimit, handler.Upload)
		resumes.GET("", handler.List)
		resumes.GET("/active", handler.GetActive)
		resumes.PUT("/active/:id", handler.SetActive)
		resumes.DELETE("/:id", handler.Delete)
	}
}

// Upload godoc
// @Summary      Upload a resume
// @Description  Stores the file and metadata. Uploaded resumes start inactive.
// @Tags         resumes
// @Accept       multipart/form-data
// @Produce      json
// @Param        file   formData  file    true   "Resume file"
// @Param        title  formData  string  false  "Resume title"
// @Success      201    {object}  response.Response{data=domain.Resume}
// @Failure      400    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Router       /resumes [post]
// @Security     BearerAuth
func (h *ResumeHandler) Upload(c *gin.Context) {
	actor := middleware.PrincipalFromContext(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("Resume file is required"))
		return
	}
	if fileHeader.Size > maxResumeSize {
		c.Error(apperror.BadRequest("Resume file exceeds the 5MB limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxResumeSize))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	resume, err := h.resumeUC.Upload(c, actor, fileHeader.Filename, c.PostForm("title"), content)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Resume uploaded successfully", resume)
}

// List godoc
// @Summary      List my resumes
// @Tags         resumes
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Resume}
// @Router       /resumes [get]
// @Security     BearerAuth
func (h *ResumeHandler) List(c *gin.Context) {
	actor := middleware.PrincipalFromContext(c)

	resumes, err := h.resumeUC.List(c, actor)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resumes retrieved", resumes)
}

// GetActive godoc
// @Summary      Get my active resume
// @Tags         resumes
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Resume}
// @Failure      404  {object}  response.Response
// @Router       /resumes/active [get]
// @Security     BearerAuth
func (h *ResumeHandler) GetActive(c *gin.Context) {
	actor := middleware.PrincipalFromContext(c)

	resume, err := h.resumeUC.GetActive(c, actor)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Active resume retrieved", resume)
}

// SetActive godoc
// @Summary      Activate a resume
// @Description  Marks the chosen resume active and deactivates all others
// @Tags         resumes
// @Produce      json
// @Param        id   path      int  true  "Resume ID"
// @Success      200  {object}  response.Response{data=domain.Resume}
// @Failure      404  {object}  response.Response
// @Router       /resumes/active/{id} [put]
// @Security     BearerAuth
func (h *ResumeHandler) SetActive(c *gin.Context) {
	actor := middleware.PrincipalFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid resume ID"))
		return
	}

	resume, err := h.resumeUC.SetActive(c, actor, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume activated", resume)
}

// Delete godoc
// @Summary      Delete a resume
// @Tags         resumes
// @Produce      json
// @Param        id   path      int  true  "Resume ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resumes/{id} [delete]
// @Security     BearerAuth
func (h *ResumeHandler) Delete(c *gin.Context) {
	actor := middleware.PrincipalFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid resume ID"))
		return
	}

	if err := h.resumeUC.Delete(c, actor, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume deleted", nil)
}
