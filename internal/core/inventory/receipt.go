// Package inventory 解析外部視覺模型輸出的半結構化收據文字，
// 產生庫存更新項目
package inventory

import (
	"regexp"
	"strconv"
	"strings"

	"recipe-extractor/internal/pkg/common"
)

// defaultQuantity 數量欄位無任何數字時的預設值
const defaultQuantity = 500.0

var (
	numberPattern   = regexp.MustCompile(`\d*\.?\d+`)
	currencyPattern = regexp.MustCompile(`[₹$€£]`)
)

// ParseReceipt 解析 `name | qty | unit | price?` 格式的收據文字
// 沒有管線符號的行直接忽略；單行解析失敗只跳過該行，不中斷整批
// 回傳成功解析的項目與被跳過的候選行數
func ParseReceipt(text string) ([]common.InventoryItem, int) {
	var items []common.InventoryItem
	skipped := 0

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.Contains(line, "|") {
			continue
		}

		item, ok := parseReceiptLine(line)
		if !ok {
			skipped++
			continue
		}
		items = append(items, item)
	}

	return items, skipped
}

// ParseReceiptMissing 與 ParseReceipt 相同，但跳過已存在於庫存的名稱
// 價格欄位在此變體中不處理（補缺貨用途只關心數量）
// 被跳過的候選行數包含已存在而未加入的品項
func ParseReceiptMissing(text string, existing map[string]struct{}) ([]common.InventoryItem, int) {
	var items []common.InventoryItem
	skipped := 0

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.Contains(line, "|") {
			continue
		}

		parts := splitFields(line)
		if len(parts) < 2 {
			skipped++
			continue
		}

		name := strings.ToLower(parts[0])
		if name == "" {
			skipped++
			continue
		}
		if _, found := existing[name]; found {
			skipped++
			continue
		}

		items = append(items, common.InventoryItem{
			Name:     name,
			Quantity: int(parseQuantity(parts[1])),
		})
	}

	return items, skipped
}

// parseReceiptLine 解析單行，欄位不足或名稱為空時回報失敗
func parseReceiptLine(line string) (common.InventoryItem, bool) {
	parts := splitFields(line)
	if len(parts) < 3 {
		return common.InventoryItem{}, false
	}

	name := strings.ToLower(parts[0])
	if name == "" {
		return common.InventoryItem{}, false
	}

	qty := parseQuantity(parts[1])
	unit := strings.ToLower(parts[2])

	// 公斤與公升正規化為公克／毫升
	// 已知缺陷：子字串比對讓 "ml" 也命中 "l" 而被乘上 1000，
	// 維持既有行為，修正前需先調整下游對收據數量的假設
	if strings.Contains(unit, "kg") || strings.Contains(unit, "l") {
		qty *= 1000
	}

	item := common.InventoryItem{
		Name:     name,
		Quantity: int(qty),
	}

	// 價格欄位為選填；存在但解析失敗時整行作廢，
	// 與其餘欄位的單行失敗處理一致
	if len(parts) > 3 {
		priceStr := strings.TrimSpace(currencyPattern.ReplaceAllString(parts[3], ""))
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			return common.InventoryItem{}, false
		}
		if price > 0 && qty > 0 {
			item.PricePer100 = price / (qty / 100)
		}
	}

	return item, true
}

// splitFields 以管線符號切欄位並修剪空白
func splitFields(line string) []string {
	parts := strings.Split(line, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// parseQuantity 取欄位中第一段數字，無數字時使用預設值
func parseQuantity(field string) float64 {
	match := numberPattern.FindString(field)
	if match == "" {
		return defaultQuantity
	}
	qty, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return defaultQuantity
	}
	return qty
}
