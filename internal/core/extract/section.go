// Package extract 將自由格式的食譜文字轉為結構化的食材、步驟與計時器資料
// 所有函式皆為純函式：相同輸入與相同詞彙表必得相同輸出，無 I/O、無共享狀態
package extract

import (
	"regexp"
)

// 區段標記（英印混合的食譜來源常見寫法，不分大小寫）
// 步驟標記有兩組：隔離食材區段時不含 "procedure"，
// 步驟抽取器另外接受 "procedure" 當開頭
var (
	ingredientMarkerPattern = regexp.MustCompile(`(?i)(ingredients?:?|सामग्री:?|required items:?|what you need:?)`)
	stepMarkerPattern       = regexp.MustCompile(`(?i)(steps?:?|instructions?:?|method:?|विधि:?|how to make:?)`)
	stepSectionPattern      = regexp.MustCompile(`(?i)(steps?:?|instructions?:?|method:?|विधि:?|how to make:?|procedure:?)`)
)

// locateSection 回傳第一個標記的位置區間，找不到時 ok 為 false
func locateSection(pattern *regexp.Regexp, text string) (start, end int, ok bool) {
	loc := pattern.FindStringIndex(text)
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1], true
}
