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

type PurchaseOrderHandler struct {
	poUC domain.PurchaseOrderUsecase
}

// NewPurchaseOrderHandler registers purchase order routes
func NewPurchaseOrderHandler(r *gin.RouterGroup, poUC domain.PurchaseOrderUsecase) {
	handler := &PurchaseOrderHandler{poUC: poUC}

	orders := r.Group("/purchase-orders")
	{
		orders.POST("", handler.Create)
		orders.GET("", handler.List)
		orders.PUT("/:id", handler.SetStatus)
	}
}

// CreatePurchaseOrderRequest is the request payload for a new purchase order
type CreatePurchaseOrderRequest struct {
	Vendor      string  `json:"vendor" binding:"required"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
}

// UpdatePurchaseOrderRequest sets the approval decision
type UpdatePurchaseOrderRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

// Create godoc
// @Summary      Create a purchase order
// @Description  Creates a pending purchase order with a generated PO number
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Param        body  body      CreatePurchaseOrderRequest  true  "Purchase order data"
// @Success      201   {object}  response.Response{data=domain.PurchaseOrder}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /purchase-orders [post]
// @Security     BearerAuth
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	actor := middleware.PrincipalFromContext(c)

	var req CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	po := &domain.PurchaseOrder{
		Vendor:      req.Vendor,
		Description: req.Description,
		Amount:      req.Amount,
	}
	if err := h.poUC.Create(c, actor, po); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Purchase order created", po)
}

// List godoc
// @Summary      List purchase orders
// @Description  Admins see all purchase orders, everyone else sees their own
// @Tags         purchase-orders
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.PurchaseOrder}
// @Router       /purchase-orders [get]
// @Security     BearerAuth
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	actor := middleware.PrincipalFromContext(c)

	orders, err := h.poUC.List(c, actor)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Purchase orders retrieved", orders)
}

// SetStatus godoc
// @Summary      Approve or reject a purchase order
// @Description  Re-applying the current terminal status is a no-op. Flipping between approved and rejected is a conflict.
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Param        id    path      int                         true  "Purchase order ID"
// @Param        body  body      UpdatePurchaseOrderRequest  true  "Decision"
// @Success      200   {object}  response.Response{data=domain.PurchaseOrder}
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /purchase-orders/{id} [put]
// @Security     BearerAuth
func (h *PurchaseOrderHandler) SetStatus(c *gin.Context) {
	actor := middleware.PrincipalFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid purchase order ID"))
		return
	}

	var req UpdatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	po, err := h.poUC.SetStatus(c, actor, id, req.Status)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Purchase order updated", po)
}
