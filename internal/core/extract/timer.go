package extract

import (
	"regexp"
	"strconv"
	"strings"

	"recipe-extractor/internal/pkg/common"
)

// overnightSeconds "overnight" 固定換算為 8 小時，是 UX 預設值而非實際時長
const overnightSeconds = 8 * 3600

// 時間表達式：可選連接詞＋數字＋單位，取最左邊第一個命中
var timerPattern = regexp.MustCompile(
	`(?:(?:for|about|around|approximately)\s*)?(\d+(?:\.\d+)?)\s*(minutes|minute|min|hours|hour|hr|seconds|second|sec|overnight)`)

// Timer 掃描單一步驟文字中的時間表達式並換算為秒數
// 找不到時 ok 為 false（該步驟不提供計時器）
func Timer(stepText string) (common.TimerSpec, bool) {
	groups := timerPattern.FindStringSubmatch(strings.ToLower(stepText))
	if groups == nil {
		return common.TimerSpec{}, false
	}

	amount, err := strconv.ParseFloat(groups[1], 64)
	if err != nil {
		return common.TimerSpec{}, false
	}
	unit := groups[2]

	var seconds int
	switch unit {
	case "minute", "minutes", "min":
		seconds = int(amount * 60)
	case "hour", "hours", "hr":
		seconds = int(amount * 3600)
	case "second", "seconds", "sec":
		seconds = int(amount)
	case "overnight":
		seconds = overnightSeconds
	}

	if seconds <= 0 {
		return common.TimerSpec{}, false
	}

	return common.TimerSpec{
		Amount:  amount,
		Unit:    unit,
		Seconds: seconds,
	}, true
}
