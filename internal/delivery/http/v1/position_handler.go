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

type PositionHandler struct {
	positionUC domain.PositionUsecase
}

// NewPositionHandler registers position registry routes
func NewPositionHandler(r *gin.RouterGroup, positionUC domain.PositionUsecase) {
	handler := &PositionHandler{positionUC: positionUC}

	positions := r.Group("/positions")
	{
		positions.POST("", handler.Create)
		positions.GET("", handler.List)
		positions.GET("/:id", handler.GetByID)
	}
}

// CreatePositionRequest is the request payload for a new position
type CreatePositionRequest struct {
	Title      string   `json:"title" binding:"required"`
	Department string   `json:"department"`
	Tags       []string `json:"tags"`
}

// Create godoc
// @Summary      Create a position
// @Tags         positions
// @Accept       json
// @Produce      json
// @Param        body  body      CreatePositionRequest  true  "Position data"
// @Success      201   {object}  response.Response{data=domain.Position}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /positions [post]
// @Security     BearerAuth
func (h *PositionHandler) Create(c *gin.Context) {
	actor := middleware.PrincipalFromContext(c)

	var req CreatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	pos := &domain.Position{
		Title:      req.Title,
		Department: req.Department,
		Tags:       req.Tags,
	}
	if err := h.positionUC.Create(c, actor, pos); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Position created", pos)
}

// List godoc
// @Summary      List positions
// @Tags         positions
// @Produce      json
// @Param        page       query     int  false  "Page"
// @Param        page_size  query     int  false  "Page size"
// @Success      200  {object}  response.Response{data=[]domain.Position}
// @Router       /positions [get]
// @Security     BearerAuth
func (h *PositionHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	positions, err := h.positionUC.List(c, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Positions retrieved", positions)
}

// GetByID godoc
// @Summary      Get a position
// @Tags         positions
// @Produce      json
// @Param        id  path      int  true  "Position ID"
// @Success      200 {object}  response.Response{data=domain.Position}
// @Failure      404 {object}  response.Response
// @Router       /positions/{id} [get]
// @Security     BearerAuth
func (h *PositionHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid position ID"))
		return
	}

	pos, err := h.positionUC.GetByID(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Position retrieved", pos)
}
