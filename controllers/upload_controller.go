package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UploadController hands out presigned S3 PUT URLs for product images.
type UploadController struct {
	uploads UploadAPI
}

func NewUploadController(uploads UploadAPI) *UploadController {
	return &UploadController{uploads: uploads}
}

type presignRequest struct {
	ProductID   string `json:"product_id"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Expires     int64  `json:"expires"`
}

// PresignUpload returns a presigned URL for a direct image upload.
func (uc *UploadController) PresignUpload(c *gin.Context) {
	if uc.uploads == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Uploads are not configured"})
		return
	}

	var req presignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	productID, err := uuid.Parse(strings.TrimSpace(req.ProductID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
		return
	}
	if strings.TrimSpace(req.Filename) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "filename is required"})
		return
	}
	if !IsAllowedImageContentType(req.ContentType) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid content type %q. Allowed: jpeg, jpg, png, webp, gif", req.ContentType),
		})
		return
	}

	expires := req.Expires
	if expires <= 0 {
		expires = DefaultPresignExpiry
	}
	if expires > MaxPresignExpiry {
		expires = MaxPresignExpiry
	}

	uploadURL, key, publicURL, err := uc.uploads.PresignUpload(
		c.Request.Context(), productID, req.Filename, req.ContentType, expires,
	)
	if err != nil {
		zap.L().Error("Failed to generate presigned upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate presigned upload"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"upload_url": uploadURL,
		"method":     "PUT",
		"key":        key,
		"public_url": publicURL,
		"expires_in": expires,
	})
}
