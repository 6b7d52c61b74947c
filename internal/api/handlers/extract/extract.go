// Package extract 的處理器把純函式抽取核心接上 HTTP。
// 核心不回傳錯誤：比對不到就是空結果，這裡照樣輸出空陣列
package extract

import (
	"net/http"
	"strings"

	"recipe-extractor/internal/core/extract"
	"recipe-extractor/internal/core/unit"
	"recipe-extractor/internal/core/vocab"
	"recipe-extractor/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecipeRequest 整份食譜抽取請求
type RecipeRequest struct {
	Text    string                 `json:"text" binding:"required"`
	Options *common.ExtractOptions `json:"options,omitempty"`
}

// IngredientView 單一食材的輸出格式
type IngredientView struct {
	Name            string              `json:"name"`
	Quantity        string              `json:"quantity"`
	DisplayQuantity string              `json:"display_quantity"`
	Allergen        bool                `json:"allergen,omitempty"`
	Jain            *common.JainVerdict `json:"jain,omitempty"`
}

// StepTimer 步驟對應的計時器建議
type StepTimer struct {
	Step    int     `json:"step"`
	Amount  float64 `json:"amount"`
	Unit    string  `json:"unit"`
	Seconds int     `json:"seconds"`
}

// RecipeResponse 整份食譜抽取結果
type RecipeResponse struct {
	Ingredients []IngredientView `json:"ingredients"`
	Steps       []string         `json:"steps"`
	Timers      []StepTimer      `json:"timers"`
	VideoID     string           `json:"video_id,omitempty"`
}

// IngredientsRequest 僅抽取食材
type IngredientsRequest struct {
	Text    string                 `json:"text" binding:"required"`
	Options *common.ExtractOptions `json:"options,omitempty"`
}

// IngredientsResponse 食材抽取結果
type IngredientsResponse struct {
	Ingredients []IngredientView `json:"ingredients"`
	Count       int              `json:"count"`
}

// StepsRequest 僅抽取步驟
type StepsRequest struct {
	Text string `json:"text" binding:"required"`
}

// StepsResponse 步驟抽取結果
type StepsResponse struct {
	Steps  []string    `json:"steps"`
	Count  int         `json:"count"`
	Timers []StepTimer `json:"timers"`
}

// HandleRecipe 處理整份食譜抽取
func HandleRecipe(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	opts := resolveOptions(req.Options)
	records := extract.Ingredients(req.Text, opts)
	steps := extract.Steps(req.Text)

	common.LogDebug("抽取結果",
		zap.String("request_id", requestID),
		zap.String("ingredients", common.FormatIngredientRecords(records)),
		zap.String("steps", common.FormatSteps(steps)),
	)

	response := RecipeResponse{
		Ingredients: buildIngredientViews(records, opts),
		Steps:       steps,
		Timers:      buildStepTimers(steps),
	}
	if videoID, ok := extract.YouTubeVideoID(req.Text); ok {
		response.VideoID = videoID
	}

	common.LogInfo("食譜抽取完成",
		zap.String("request_id", requestID),
		zap.Int("ingredients", len(response.Ingredients)),
		zap.Int("steps", len(response.Steps)),
		zap.Int("timers", len(response.Timers)),
	)

	c.JSON(http.StatusOK, response)
}

// HandleIngredients 處理食材抽取
func HandleIngredients(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req IngredientsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	opts := resolveOptions(req.Options)
	views := buildIngredientViews(extract.Ingredients(req.Text, opts), opts)

	common.LogInfo("食材抽取完成",
		zap.String("request_id", requestID),
		zap.Int("count", len(views)),
	)

	c.JSON(http.StatusOK, IngredientsResponse{
		Ingredients: views,
		Count:       len(views),
	})
}

// HandleSteps 處理步驟抽取
func HandleSteps(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req StepsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	steps := extract.Steps(req.Text)

	common.LogInfo("步驟抽取完成",
		zap.String("request_id", requestID),
		zap.Int("count", len(steps)),
	)

	c.JSON(http.StatusOK, StepsResponse{
		Steps:  steps,
		Count:  len(steps),
		Timers: buildStepTimers(steps),
	})
}

// buildIngredientViews 套用單位轉換、份量縮放、過敏原與耆那判定
func buildIngredientViews(records []common.IngredientRecord, opts common.ExtractOptions) []IngredientView {
	views := make([]IngredientView, len(records))
	for i, rec := range records {
		display := unit.Convert(rec.Quantity, opts.UnitSystem)
		if opts.Servings > 1 {
			display = unit.Scale(display, opts.Servings)
		}

		view := IngredientView{
			Name:            rec.Name,
			Quantity:        rec.Quantity,
			DisplayQuantity: display,
			Allergen:        matchesAllergy(rec.Name, opts.Allergies),
		}
		if opts.JainMode {
			verdict := vocab.CheckJain(rec.Name)
			view.Jain = &verdict
		}
		views[i] = view
	}
	return views
}

// buildStepTimers 逐步驟解析計時器，解析不到的步驟不佔位
// 回傳值必為非 nil，空結果序列化為 [] 而非 null
func buildStepTimers(steps []string) []StepTimer {
	timers := []StepTimer{}
	for i, step := range steps {
		spec, ok := extract.Timer(step)
		if !ok {
			continue
		}
		timers = append(timers, StepTimer{
			Step:    i + 1,
			Amount:  spec.Amount,
			Unit:    spec.Unit,
			Seconds: spec.Seconds,
		})
	}
	return timers
}

// matchesAllergy 過敏原為子字串比對，與食材驗證同一套規則
func matchesAllergy(name string, allergies []string) bool {
	for _, allergy := range allergies {
		allergy = strings.ToLower(strings.TrimSpace(allergy))
		if allergy == "" {
			continue
		}
		if strings.Contains(name, allergy) || strings.Contains(allergy, name) {
			return true
		}
	}
	return false
}

// resolveOptions 未提供偏好時使用預設值
func resolveOptions(opts *common.ExtractOptions) common.ExtractOptions {
	if opts == nil {
		return common.DefaultExtractOptions()
	}
	resolved := *opts
	if resolved.UnitSystem == "" {
		resolved.UnitSystem = common.UnitSystemMetric
	}
	if resolved.Servings <= 0 {
		resolved.Servings = 1
	}
	return resolved
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
