package extract

import (
	"regexp"
	"strings"
)

// MaxSteps 步驟數上限，約束下游 UI 與語音播放
const MaxSteps = 15

// 清單樣式，依序嘗試：編號（1. / 1)）、條列（- / •）、字母（a)）
var stepListPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^\s*\d+[.)]\s+`),
	regexp.MustCompile(`(?m)^\s*[-•]\s+`),
	regexp.MustCompile(`(?mi)^\s*[a-z]\)\s+`),
}

var blankLinePattern = regexp.MustCompile(`\n\s*\n`)

// Steps 從食譜文字抽取依序排列的步驟
// 找不到步驟標記時回傳空切片（呼叫端視為「無法開始導引烹飪」而非錯誤）
// 標記比對不分大小寫，但步驟內容保留原始大小寫
func Steps(text string) []string {
	lowered := strings.ToLower(text)

	_, markerEnd, ok := locateSection(stepSectionPattern, lowered)
	if !ok {
		return []string{}
	}

	stepsText := strings.TrimSpace(text[markerEnd:])
	if stepsText == "" {
		return []string{}
	}

	steps := splitByListMarkers(stepsText)

	// 沒有任何清單樣式時退回以空行分段
	if len(steps) == 0 {
		for _, para := range blankLinePattern.Split(stepsText, -1) {
			if para = strings.TrimSpace(para); para != "" {
				steps = append(steps, para)
			}
		}
	}

	// 截斷到上限，不重排、不重新編號
	if len(steps) > MaxSteps {
		steps = steps[:MaxSteps]
	}
	return steps
}

// splitByListMarkers 用第一個命中的清單樣式切割步驟文字
func splitByListMarkers(stepsText string) []string {
	for _, pattern := range stepListPatterns {
		locs := pattern.FindAllStringIndex(stepsText, -1)
		if len(locs) == 0 {
			continue
		}

		var steps []string
		for i, loc := range locs {
			end := len(stepsText)
			if i+1 < len(locs) {
				end = locs[i+1][0]
			}
			if step := strings.TrimSpace(stepsText[loc[1]:end]); step != "" {
				steps = append(steps, step)
			}
		}
		if len(steps) > 0 {
			return steps
		}
	}
	return nil
}
