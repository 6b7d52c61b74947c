package extract

import (
	"regexp"
)

// YouTube 連結樣式（watch、shorts、短網址、行動版）
var youtubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/watch\?v=([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/shorts/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:https?://)?youtu\.be/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:https?://)?(?:m\.)?youtube\.com/watch\?v=([a-zA-Z0-9_-]{11})`),
}

// YouTubeVideoID 從訊息文字中找出 YouTube 影片 ID
// 只做樣式比對；影片抓取與逐字稿下載由外部協作者負責
func YouTubeVideoID(text string) (string, bool) {
	for _, pattern := range youtubePatterns {
		if groups := pattern.FindStringSubmatch(text); groups != nil {
			return groups[1], true
		}
	}
	return "", false
}
