package controllers

import (
	"net/http"

	"github.com/aurora-jewelry/aurora-store/catalog-service/models"
	"github.com/aurora-jewelry/aurora-store/catalog-service/services"
	"github.com/aurora-jewelry/aurora-store/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactController serves the contact form and newsletter endpoints.
type ContactController struct {
	contact services.ContactService
}

// NewContactController creates a new ContactController.
func NewContactController(contact services.ContactService) *ContactController {
	return &ContactController{contact: contact}
}

// SubmitContact validates and logs a contact form submission.
func (cc *ContactController) SubmitContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zap.L().Warn("Invalid contact payload",
			zap.String("request_id", logger.RequestID(c)),
			zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	resp, svcErr := cc.contact.SubmitContact(c.Request.Context(), &req)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SubscribeNewsletter validates and logs a newsletter signup.
func (cc *ContactController) SubscribeNewsletter(c *gin.Context) {
	var req models.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zap.L().Warn("Invalid newsletter payload",
			zap.String("request_id", logger.RequestID(c)),
			zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	resp, svcErr := cc.contact.SubscribeNewsletter(c.Request.Context(), &req)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, resp)
}
