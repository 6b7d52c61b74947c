// Package quantity 提供單位轉換與份量縮放端點
package quantity

import (
	"net/http"

	"recipe-extractor/internal/core/unit"
	"recipe-extractor/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConvertRequest 單位轉換請求
type ConvertRequest struct {
	Quantity   string            `json:"quantity" binding:"required"`
	UnitSystem common.UnitSystem `json:"unit_system" binding:"required"`
}

// ConvertResponse 單位轉換結果
type ConvertResponse struct {
	Input  string `json:"input"`
	Result string `json:"result"`
}

// ScaleRequest 份量縮放請求
type ScaleRequest struct {
	Quantity string `json:"quantity" binding:"required"`
	Servings int    `json:"servings" binding:"required"`
}

// ScaleResponse 份量縮放結果
type ScaleResponse struct {
	Input    string `json:"input"`
	Servings int    `json:"servings"`
	Result   string `json:"result"`
}

// HandleConvert 處理單位轉換
func HandleConvert(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.UnitSystem != common.UnitSystemMetric && req.UnitSystem != common.UnitSystemImperial {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unit_system must be metric or imperial"})
		return
	}

	c.JSON(http.StatusOK, ConvertResponse{
		Input:  req.Quantity,
		Result: unit.Convert(req.Quantity, req.UnitSystem),
	})
}

// HandleScale 處理份量縮放
func HandleScale(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req ScaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.Servings < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "servings must be at least 1"})
		return
	}

	c.JSON(http.StatusOK, ScaleResponse{
		Input:    req.Quantity,
		Servings: req.Servings,
		Result:   unit.Scale(req.Quantity, req.Servings),
	})
}

// ensureRequestID 沿用或補發 X-Request-ID
func ensureRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}
	return requestID
}
