package inventory

import (
	"strings"
)

// ExpiryRange 保存期限估計（天數區間）
type ExpiryRange struct {
	MinDays int `json:"min_days"`
	MaxDays int `json:"max_days"`
}

// 分類保存期限經驗值
var expiryCategories = []struct {
	keywords []string
	estimate ExpiryRange
}{
	{[]string{"tomato", "onion", "cucumber", "spinach", "coriander", "curry leaves"}, ExpiryRange{3, 7}},   // 新鮮葉菜
	{[]string{"potato", "carrot", "beetroot", "pumpkin"}, ExpiryRange{10, 20}},                             // 根莖類
	{[]string{"milk", "curd"}, ExpiryRange{2, 5}},
	{[]string{"paneer"}, ExpiryRange{3, 6}},
	{[]string{"rice", "dal", "flour", "oil", "spices"}, ExpiryRange{180, 365}}, // 乾貨
}

// defaultExpiry 未分類品項的預設估計
var defaultExpiry = ExpiryRange{7, 30}

// ExpiryEstimate 估計品項的保存天數區間
// 只是粗略的經驗值，回傳區間由呼叫端決定如何呈現
func ExpiryEstimate(itemName string) ExpiryRange {
	item := strings.ToLower(itemName)

	for _, category := range expiryCategories {
		for _, keyword := range category.keywords {
			if strings.Contains(item, keyword) {
				return category.estimate
			}
		}
	}
	return defaultExpiry
}

// QuantityStatus 庫存數量狀態標籤與顯示顏色
func QuantityStatus(qty int) (label, color string) {
	switch {
	case qty >= 500:
		return "High", "green"
	case qty >= 200:
		return "Medium", "orange"
	default:
		return "Low", "red"
	}
}
