package extract

import (
	"regexp"
	"strings"

	"recipe-extractor/internal/core/vocab"
	"recipe-extractor/internal/pkg/common"
)

// 數量相關片語
const defaultQuantity = "as needed"

// 抽取模式，依序嘗試，同一片段第一個可用的比對勝出
var (
	// 模式一：數字量（支援 2-3 這類範圍）＋固定單位詞＋名稱，可帶尾隨修飾語
	numericQtyPattern = regexp.MustCompile(
		`^(\d+(?:\.\d+)?(?:\s*-\s*\d+(?:\.\d+)?)?)?\s*` +
			`(g|kg|gram|grams|ml|l|liter|litre|pcs|pc|piece|pieces|tsp|teaspoon|tbsp|tablespoon|cup|cups|pack|packet|medium|large|small)?\s+` +
			`([a-z][\w\s\-]{2,}?)` +
			`(?:\s+(to taste|as needed|as required|a pinch(?: of)?|to garnish))?$`)

	// 模式二：文字量詞＋名稱（量詞可省略，作為兜底比對，交由驗證器過濾雜訊）
	wordQtyPattern = regexp.MustCompile(
		`^(?:(half|quarter|a|an|one|two|three|four|five|six|seven|eight|nine|ten|handful|pinch|some)\s+)?` +
			`([a-z][\w\s\-]{2,}?)` +
			`(?:\s+(to taste|as needed|as required|a pinch(?: of)?|to garnish))?$`)

	// 模式三：名稱＋尾隨修飾語
	trailingQualifierPattern = regexp.MustCompile(
		`^([a-z][\w\s\-]{2,}?)\s*(to taste|as needed|as required|a pinch(?: of)?|to garnish)$`)

	// 片段切割：逗號、分號、換行、括號；句號只在後面接空白或
	// 文字結尾時才算終止符，避免切斷 "2.5" 這類小數
	segmentSplitPattern = regexp.MustCompile(`(?:[,;\n()\[\]]|\.\s|\.$)+`)

	// 名稱開頭的填充詞
	leadingFillerPattern = regexp.MustCompile(`^(of|a|an|some)\s+`)
)

// ingredientMatch 單一片段的比對結果
// 明確的結果型別取代隱含的 capture-group 真值判斷
type ingredientMatch struct {
	quantity string
	name     string
}

// ingredientMatcher 依序套用的比對策略，回傳 nil 表示不適用
type ingredientMatcher func(segment string) *ingredientMatch

var ingredientMatchers = []ingredientMatcher{
	matchNumericQuantity,
	matchWordQuantity,
	matchTrailingQualifier,
}

// Ingredients 從食譜文字抽取食材紀錄
// jain 模式旗標僅傳遞，不在此套用飲食過濾（由呼叫端決定後續動作）
// 對相同輸入重複呼叫必得相同輸出；不保留任何跨呼叫狀態
func Ingredients(text string, opts common.ExtractOptions) []common.IngredientRecord {
	_ = opts.JainMode // 過濾責任在呼叫端

	ingText := isolateIngredientText(strings.ToLower(strings.TrimSpace(text)))

	var records []common.IngredientRecord
	for _, segment := range segmentSplitPattern.Split(ingText, -1) {
		// 去除條列符號與空白後再比對
		segment = strings.Trim(segment, "-•* \t\r")
		if segment == "" {
			continue
		}

		// 同一片段依序嘗試各模式，第一個可用的比對勝出，
		// 且只有通過驗證器的候選才會被收錄
		for _, matcher := range ingredientMatchers {
			m := matcher(segment)
			if m == nil {
				continue
			}

			name := cleanName(m.name)
			if len(name) < 3 {
				break
			}
			if !vocab.IsValidFoodIngredient(name) {
				break
			}

			records = append(records, common.IngredientRecord{
				Name:     name,
				Quantity: m.quantity,
			})
			break
		}
	}

	return records
}

// isolateIngredientText 根據區段標記切出食材文字
// 兩個標記都在且食材標記在前：取兩者之間；只有食材標記：取其後全部；
// 都沒有：整段文字當作食材區（無結構回應的兜底策略）
func isolateIngredientText(text string) string {
	ingStart, ingEnd, ingOK := locateSection(ingredientMarkerPattern, text)
	stepStart, _, stepOK := locateSection(stepMarkerPattern, text)

	switch {
	case ingOK && stepOK && ingStart < stepStart:
		return strings.TrimSpace(text[ingEnd:stepStart])
	case ingOK:
		return strings.TrimSpace(text[ingEnd:])
	default:
		return text
	}
}

// matchNumericQuantity 模式一：要求至少出現數字量或單位其中之一
func matchNumericQuantity(segment string) *ingredientMatch {
	groups := numericQtyPattern.FindStringSubmatch(segment)
	if groups == nil {
		return nil
	}

	amount := strings.TrimSpace(groups[1])
	unit := strings.TrimSpace(groups[2])
	name := strings.TrimSpace(groups[3])
	qualifier := strings.TrimSpace(groups[4])

	if amount == "" && unit == "" {
		// 沒有任何數量資訊，讓後續模式處理
		return nil
	}

	quantity := strings.TrimSpace(amount + " " + unit)
	if quantity == "" {
		quantity = defaultQuantity
	}
	_ = qualifier // 數量已足夠描述，尾隨修飾語僅作為終止符

	return &ingredientMatch{quantity: quantity, name: name}
}

// matchWordQuantity 模式二：文字量詞；量詞缺席時數量為 "as needed"
func matchWordQuantity(segment string) *ingredientMatch {
	groups := wordQtyPattern.FindStringSubmatch(segment)
	if groups == nil {
		return nil
	}

	quantity := strings.TrimSpace(groups[1])
	name := strings.TrimSpace(groups[2])
	qualifier := strings.TrimSpace(groups[3])

	if quantity == "" {
		if qualifier != "" {
			quantity = qualifier
		} else {
			quantity = defaultQuantity
		}
	}

	return &ingredientMatch{quantity: quantity, name: name}
}

// matchTrailingQualifier 模式三：名稱＋尾隨修飾語（"salt to taste"）
func matchTrailingQualifier(segment string) *ingredientMatch {
	groups := trailingQualifierPattern.FindStringSubmatch(segment)
	if groups == nil {
		return nil
	}
	return &ingredientMatch{
		quantity: strings.TrimSpace(groups[2]),
		name:     strings.TrimSpace(groups[1]),
	}
}

// cleanName 移除名稱開頭的填充詞並修剪空白
func cleanName(name string) string {
	name = leadingFillerPattern.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}
