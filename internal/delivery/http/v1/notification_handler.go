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

type NotificationHandler struct {
	notificationUC domain.NotificationUsecase
}

// NewNotificationHandler registers the notification inbox routes
func NewNotificationHandler(r *gin.RouterGroup, notificationUC domain.NotificationUsecase) {
	handler := &NotificationHandler{notificationUC: notificationUC}

	notifications := r.Group("/notifications")
	{
		notifications.GET("", handler.ListMine)
		notifications.PUT("/:id/read", handler.MarkRead)
	}
}

// ListMine godoc
// @Summary      List my notifications
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Notification}
// @Router       /notifications [get]
// @Security     BearerAuth
func (h *NotificationHandler) ListMine(c *gin.Context) {
	actor := middleware.PrincipalFromContext(c)

	notifications, err := h.notificationUC.ListMine(c, actor)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Notifications retrieved", notifications)
}

// MarkRead godoc
// @Summary      Mark a notification as read
// @Tags         notifications
// @Produce      json
// @Param        id  path      int  true  "Notification ID"
// @Success      200 {object}  response.Response
// @Failure      404 {object}  response.Response
// @Router       /notifications/{id}/read [put]
// @Security     BearerAuth
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	actor := middleware.PrincipalFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid notification ID"))
		return
	}

	if err := h.notificationUC.MarkRead(c, actor, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Notification marked as read", nil)
}
