// Package diet 提供飲食限制判定端點
package diet

import (
	"net/http"
	"strings"

	"recipe-extractor/internal/core/vocab"
	"recipe-extractor/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// JainRequest 批次耆那相容性查詢
type JainRequest struct {
	Ingredients []string `json:"ingredients" binding:"required"`
}

// JainResponse 查詢結果與不相容數量
type JainResponse struct {
	Results      []common.JainVerdict `json:"results"`
	Incompatible int                  `json:"incompatible"`
}

// HandleJain 處理耆那相容性查詢
func HandleJain(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}

	var req JainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	results := make([]common.JainVerdict, 0, len(req.Ingredients))
	incompatible := 0
	for _, name := range req.Ingredients {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		verdict := vocab.CheckJain(name)
		if !verdict.Compatible {
			incompatible++
		}
		results = append(results, verdict)
	}

	common.LogInfo("耆那相容性查詢完成",
		zap.String("request_id", requestID),
		zap.Int("checked", len(results)),
		zap.Int("incompatible", incompatible),
	)

	c.JSON(http.StatusOK, JainResponse{
		Results:      results,
		Incompatible: incompatible,
	})
}
