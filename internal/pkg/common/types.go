package common

import (
	"fmt"
	"strings"
)

// IngredientRecord 從食譜文字抽取出的單一食材
// name 一律為小寫、去除前後空白的食材名稱；quantity 可能是數量片語
// （如 "200 g"）或定性片語（如 "to taste"、"as needed"）
type IngredientRecord struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// TimerSpec 從步驟文字解析出的計時器建議
type TimerSpec struct {
	Amount  float64 `json:"amount"`
	Unit    string  `json:"unit"`
	Seconds int     `json:"seconds"`
}

// JainVerdict 單一食材的耆那飲食判定結果
type JainVerdict struct {
	Name       string `json:"name"`
	Compatible bool   `json:"compatible"`
	Substitute string `json:"substitute,omitempty"`
}

// InventoryItem 收據解析後的庫存更新項目
// Quantity 已正規化為公克/毫升/個數；PricePer100 為每 100 單位的價格
type InventoryItem struct {
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	PricePer100 float64 `json:"price_per_100,omitempty"`
}

// UnitSystem 顯示單位系統
type UnitSystem string

const (
	UnitSystemMetric   UnitSystem = "metric"
	UnitSystemImperial UnitSystem = "imperial"
)

// ExtractOptions 每次抽取呼叫明確傳入的使用者偏好
// 取代原本散落在 session 的旗標，讓核心函式可獨立測試
type ExtractOptions struct {
	JainMode   bool       `json:"jain_mode"`
	UnitSystem UnitSystem `json:"unit_system"`
	Servings   int        `json:"servings"`
	Allergies  []string   `json:"allergies,omitempty"`
}

// DefaultExtractOptions 預設偏好
func DefaultExtractOptions() ExtractOptions {
	return ExtractOptions{
		UnitSystem: UnitSystemMetric,
		Servings:   1,
	}
}

// FormatIngredientRecords 格式化食材清單（顯示與日誌用）
func FormatIngredientRecords(records []IngredientRecord) string {
	var sb strings.Builder
	for _, rec := range records {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", rec.Name, rec.Quantity))
	}
	return sb.String()
}

// FormatSteps 格式化步驟清單
func FormatSteps(steps []string) string {
	var sb strings.Builder
	for i, step := range steps {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, step))
	}
	return sb.String()
}
