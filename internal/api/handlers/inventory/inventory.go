// Package inventory 提供收據解析端點：純文字直接進解析器，
// 圖片先經視覺服務 OCR 再進同一個解析器
package inventory

import (
	"net/http"
	"strings"

	"recipe-extractor/internal/core/inventory"
	"recipe-extractor/internal/core/vision"
	"recipe-extractor/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReceiptRequest 收據解析請求；text 與 image 擇一
type ReceiptRequest struct {
	Text  string `json:"text,omitempty"`
	Image string `json:"image,omitempty"`
}

// ReceiptMissingRequest 缺漏品項請求，existing 為既有庫存名稱
type ReceiptMissingRequest struct {
	Text     string   `json:"text,omitempty"`
	Image    string   `json:"image,omitempty"`
	Existing []string `json:"existing" binding:"required"`
}

// ItemView 單一庫存項目的輸出格式，附保存期與存量狀態
type ItemView struct {
	Name          string  `json:"name"`
	Quantity      int     `json:"quantity"`
	PricePer100   float64 `json:"price_per_100,omitempty"`
	ExpiryMinDays int     `json:"expiry_min_days"`
	ExpiryMaxDays int     `json:"expiry_max_days"`
	Status        string  `json:"status"`
	StatusColor   string  `json:"status_color"`
}

// ReceiptResponse 收據解析結果
type ReceiptResponse struct {
	Items   []ItemView `json:"items"`
	Added   int        `json:"added"`
	Skipped int        `json:"skipped"`
}

// HandleReceipt 處理收據解析
func HandleReceipt(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req ReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	text, ok := resolveReceiptText(c, requestID, req.Text, req.Image)
	if !ok {
		return
	}

	items, skipped := inventory.ParseReceipt(text)

	common.LogInfo("收據解析完成",
		zap.String("request_id", requestID),
		zap.Int("added", len(items)),
		zap.Int("skipped", skipped),
	)

	c.JSON(http.StatusOK, ReceiptResponse{
		Items:   buildItemViews(items),
		Added:   len(items),
		Skipped: skipped,
	})
}

// HandleReceiptMissing 只回傳庫存中還沒有的品項
func HandleReceiptMissing(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req ReceiptMissingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	text, ok := resolveReceiptText(c, requestID, req.Text, req.Image)
	if !ok {
		return
	}

	existing := make(map[string]struct{}, len(req.Existing))
	for _, name := range req.Existing {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			existing[name] = struct{}{}
		}
	}

	items, skipped := inventory.ParseReceiptMissing(text, existing)

	common.LogInfo("缺漏品項解析完成",
		zap.String("request_id", requestID),
		zap.Int("added", len(items)),
		zap.Int("skipped", skipped),
	)

	c.JSON(http.StatusOK, ReceiptResponse{
		Items:   buildItemViews(items),
		Added:   len(items),
		Skipped: skipped,
	})
}

// resolveReceiptText 取得收據文字：有圖片就走視覺服務 OCR
func resolveReceiptText(c *gin.Context, requestID, text, image string) (string, bool) {
	if image == "" {
		if strings.TrimSpace(text) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Either text or image is required"})
			return "", false
		}
		return text, true
	}

	visionSvc, exists := c.Get("vision_service")
	if !exists {
		common.LogError("Vision service not found in context",
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Receipt scanning is not available"})
		return "", false
	}
	svc, ok := visionSvc.(*vision.Service)
	if !ok || svc == nil {
		common.LogError("Invalid vision service type in context",
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Receipt scanning is not available"})
		return "", false
	}

	// 只取轉寫文字，解析交給呼叫端，missing 變體才能共用 existing 過濾
	raw, err := svc.TranscribeReceipt(c.Request.Context(), image)
	if err != nil {
		common.LogError("收據掃描失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		if strings.Contains(err.Error(), "image") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image format"})
			return "", false
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Receipt scanning failed"})
		return "", false
	}
	return raw, true
}

// buildItemViews 附加保存期限估計與存量狀態
func buildItemViews(items []common.InventoryItem) []ItemView {
	views := make([]ItemView, len(items))
	for i, item := range items {
		expiry := inventory.ExpiryEstimate(item.Name)
		label, color := inventory.QuantityStatus(item.Quantity)
		views[i] = ItemView{
			Name:          item.Name,
			Quantity:      item.Quantity,
			PricePer100:   item.PricePer100,
			ExpiryMinDays: expiry.MinDays,
			ExpiryMaxDays: expiry.MaxDays,
			Status:        label,
			StatusColor:   color,
		}
	}
	return views
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
