package extract

import (
	"net/http"
	"strings"

	"recipe-extractor/internal/core/vision"
	"recipe-extractor/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PhotoRequest 照片食材辨識請求
type PhotoRequest struct {
	Image string `json:"image" binding:"required"`
}

// PhotoResponse 辨識結果，只包含通過詞彙表驗證的名稱
type PhotoResponse struct {
	Ingredients []string `json:"ingredients"`
	Count       int      `json:"count"`
}

// HandlePhoto 處理照片食材辨識
func HandlePhoto(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req PhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	visionSvc, exists := c.Get("vision_service")
	if !exists {
		common.LogError("Vision service not found in context",
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Photo detection is not available"})
		return
	}
	svc, ok := visionSvc.(*vision.Service)
	if !ok || svc == nil {
		common.LogError("Invalid vision service type in context",
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Photo detection is not available"})
		return
	}

	names, err := svc.DetectIngredients(c.Request.Context(), req.Image)
	if err != nil {
		common.LogError("照片食材辨識失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		if strings.Contains(err.Error(), "image") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image format"})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Photo detection failed"})
		return
	}

	if names == nil {
		names = []string{}
	}

	common.LogInfo("照片食材辨識成功",
		zap.String("request_id", requestID),
		zap.Int("count", len(names)),
	)

	c.JSON(http.StatusOK, PhotoResponse{
		Ingredients: names,
		Count:       len(names),
	})
}
