package vocab

import (
	"strings"
)

// cookingVerbs 需要排除的烹飪動作動詞
// 抽取器的候選名稱若以這些動詞開頭，多半是步驟文字被誤切進食材區
var cookingVerbs = []string{
	"cook", "stir", "add", "mix", "serve", "fry", "boil", "bake", "heat",
	"preheat", "chop", "slice", "dice", "grate", "grind", "pour", "simmer",
	"use", "put", "take", "keep", "let", "bring", "reduce", "thicken",
	"turn", "flip", "cover", "uncover", "sauté", "roast", "steam",
	"blend", "whisk", "knead", "marinate", "garnish", "season", "taste",
}

// IsValidFoodIngredient 判斷候選名稱是否為真實食材
// 雙向子字串比對是刻意的設計：同時容忍截斷的抽取結果（"tomat"）
// 與複合片語（"fresh tomato slices"），以召回率換精確率
func IsValidFoodIngredient(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))

	// 太短
	if len(name) < 3 {
		return false
	}

	// 以烹飪動詞開頭
	for _, verb := range cookingVerbs {
		if strings.HasPrefix(name, verb) {
			return false
		}
	}

	// 與已知食材詞彙雙向比對
	for ingredient := range foodIngredients {
		if strings.Contains(name, ingredient) || strings.Contains(ingredient, name) {
			return true
		}
	}

	return false
}
