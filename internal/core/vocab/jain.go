package vocab

import (
	"strings"

	"recipe-extractor/internal/pkg/common"
)

// 耆那飲食不允許的食材（地下生長的根莖類為主）
var jainRestricted = []string{
	// 根莖類蔬菜
	"potato", "potatoes", "aloo", "sweet potato", "shakarkandi",
	"onion", "onions", "pyaz", "spring onion", "scallion", "leek",
	"garlic", "lahsun", "lehsun",
	"ginger", "adrak",
	"radish", "mooli", "daikon",
	"carrot", "carrots", "gajar",
	"beetroot", "beet", "chukandar",
	"turnip", "shalgam",
	"yam", "suran", "jimikand",
	"colocasia", "arbi", "taro root",
	"elephant yam",
	"turmeric", "haldi", // 新鮮薑黃根
	"ginger garlic paste",
	"peanut", "groundnut", "moongfali", // 地下生長
}

// jainSubstitute 受限食材的替代建議
// 以宣告順序逐一比對子字串，第一個命中者勝出，順序即契約
type jainSubstitute struct {
	key        string
	substitute string
}

var jainSubstitutes = []jainSubstitute{
	{"ginger garlic paste", "green chilli paste with asafoetida (hing)"},
	{"potato", "raw banana (kachha kela), arrowroot (ararot), or sweet corn"},
	{"onion", "asafoetida (hing) for flavor, or finely chopped cabbage"},
	{"garlic", "asafoetida (hing) for flavor"},
	{"ginger", "dry ginger powder (sonth) or green chilli for heat"},
	{"radish", "cucumber or white pumpkin (petha)"},
	{"carrot", "bottle gourd (lauki), red pumpkin, or tomatoes"},
	{"beetroot", "red pumpkin or tomatoes for color"},
	{"turnip", "white pumpkin (petha) or bottle gourd"},
	{"peanut", "cashew, almond, or melon seeds"},
	{"turmeric", "turmeric powder (powder form is allowed)"},
}

// DefaultJainSubstitute 查無對應替代品時的通用建議
const DefaultJainSubstitute = "Please check Jain diet guidelines for substitute"

// IsJainCompatible 判斷食材是否符合耆那飲食
// 例外：薑黃粉（turmeric powder）屬加工品，允許食用；
// 該例外只跳過當前受限詞，後續受限詞仍須逐一檢查
func IsJainCompatible(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))

	for _, restricted := range jainRestricted {
		if strings.Contains(name, restricted) {
			if strings.Contains(name, "turmeric") && strings.Contains(name, "powder") {
				continue
			}
			return false
		}
	}
	return true
}

// JainSubstitute 取得受限食材的替代建議
func JainSubstitute(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))

	for _, entry := range jainSubstitutes {
		if strings.Contains(name, entry.key) {
			return entry.substitute
		}
	}
	return DefaultJainSubstitute
}

// CheckJain 回傳完整判定結果，不相容時附帶替代建議
func CheckJain(name string) common.JainVerdict {
	verdict := common.JainVerdict{
		Name:       strings.ToLower(strings.TrimSpace(name)),
		Compatible: IsJainCompatible(name),
	}
	if !verdict.Compatible {
		verdict.Substitute = JainSubstitute(name)
	}
	return verdict
}
