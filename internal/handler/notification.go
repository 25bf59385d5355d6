package handler

import (
	"context"
	"net/http"

	"hiredesk/internal/middleware"
	"hiredesk/internal/model"
	"hiredesk/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the four candidate-email operations.
type NotificationHandler struct {
	notifications service.NotificationService
}

func NewNotificationHandler(notifications service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// SendDocumentDenial notifies a candidate that a document was denied
// @Router /api/functions/sendDocumentDenialEmail [post]
func (h *NotificationHandler) SendDocumentDenial(c *gin.Context) {
	h.send(c, h.notifications.SendDocumentDenial)
}

// SendDocumentRequest asks a candidate to upload a document
// @Router /api/functions/sendDocumentRequestEmail [post]
func (h *NotificationHandler) SendDocumentRequest(c *gin.Context) {
	h.send(c, h.notifications.SendDocumentRequest)
}

// SendDocumentRequestRevocation tells a candidate a request was lifted
// @Router /api/functions/sendDocumentRequestRevocationEmail [post]
func (h *NotificationHandler) SendDocumentRequestRevocation(c *gin.Context) {
	h.send(c, h.notifications.SendDocumentRequestRevocation)
}

// SendAdminDocumentUpload tells a candidate a document was uploaded for them
// @Router /api/functions/sendAdminDocumentUploadEmail [post]
func (h *NotificationHandler) SendAdminDocumentUpload(c *gin.Context) {
	h.send(c, h.notifications.SendAdminDocumentUpload)
}

func (h *NotificationHandler) send(
	c *gin.Context,
	op func(context.Context, string, *model.NotificationRequest) (*model.SentNotification, error),
) {
	var req model.NotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	sent, err := op(c.Request.Context(), middleware.CallerID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Email sent", sent))
}
