package vision

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"recipe-extractor/internal/core/image"
	"recipe-extractor/internal/core/vocab"
	"recipe-extractor/internal/infrastructure/cache"
	"recipe-extractor/internal/infrastructure/config"
	"recipe-extractor/internal/pkg/common"

	"go.uber.org/zap"
)

// detectPrompt 要求模型逐行列出食材名稱，方便後續用詞彙表過濾
const detectPrompt = `Look at this photo and list every food ingredient you can actually see.
Rules:
1. One ingredient name per line, lowercase English, nothing else.
2. Only list items visible in the photo, do not guess.
3. No numbering, no bullets, no quantities, no commentary.`

// receiptPrompt 要求模型以收據行格式輸出，交給收據解析器處理
const receiptPrompt = `Read this grocery receipt image and transcribe each purchased item as one line in the format:
Item name | quantity | unit | price
Rules:
1. One item per line, fields separated by the | character.
2. Use g, kg, ml, l or pcs as the unit; if the receipt has no quantity write 500 | g.
3. Price is the number only, no currency symbol.
4. Output nothing except these lines.`

// Service 視覺服務：整合圖片前處理、快取與請求隊列
type Service struct {
	config       *config.Config
	queue        *Queue
	cacheManager *cache.CacheManager
	imageSvc     *image.Service
	mu           sync.Mutex
	lastRequest  time.Time
}

// NewService 創建視覺服務
func NewService(cfg *config.Config, cacheManager *cache.CacheManager) *Service {
	client := NewClient(cfg)
	return &Service{
		config:       cfg,
		queue:        NewQueue(cfg, client),
		cacheManager: cacheManager,
		imageSvc:     image.NewService(cfg.Image.MaxSizeBytes),
	}
}

// DetectIngredients 辨識照片中的食材，回傳通過詞彙表驗證的名稱
func (s *Service) DetectIngredients(ctx context.Context, imageData string) ([]string, error) {
	raw, err := s.process(ctx, detectPrompt, imageData)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var names []string
	for _, line := range strings.Split(raw, "\n") {
		name := strings.ToLower(strings.Trim(line, "-•* \t\r"))
		if name == "" {
			continue
		}
		// 模型輸出以詞彙表把關，幻覺出來的品項直接丟掉
		if !vocab.IsValidFoodIngredient(name) {
			common.LogDebug("丟棄未通過驗證的辨識結果", zap.String("name", name))
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	common.LogInfo("照片食材辨識完成", zap.Int("count", len(names)))
	return names, nil
}

// TranscribeReceipt 對收據照片做 OCR，回傳管線分隔的轉寫文字
func (s *Service) TranscribeReceipt(ctx context.Context, imageData string) (string, error) {
	return s.process(ctx, receiptPrompt, imageData)
}

// QueueStatus 回報底層隊列狀態
func (s *Service) QueueStatus() *QueueStatus {
	return s.queue.Status()
}

// process 統一入口：頻率檢查、圖片前處理、快取、隊列
func (s *Service) process(ctx context.Context, prompt, imageData string) (string, error) {
	if !s.config.OpenRouter.Enabled {
		return "", common.ErrVisionServiceError
	}
	if imageData == "" {
		return "", fmt.Errorf("invalid image: image data is empty")
	}
	if err := s.checkRequestRate(); err != nil {
		return "", err
	}

	processedImage, err := s.imageSvc.ProcessImage(imageData)
	if err != nil {
		return "", fmt.Errorf("failed to process image: %w", err)
	}

	if s.cacheManager != nil {
		if val, err := s.cacheManager.Get(ctx, prompt, processedImage); err == nil && val != "" {
			return val, nil
		}
	}

	start := time.Now()
	content, err := s.queue.Submit(ctx, prompt, processedImage)
	common.LogVisionCall("vision.process", time.Since(start), err, common.GenerateUUID())
	if err != nil {
		return "", err
	}

	if s.cacheManager != nil {
		_ = s.cacheManager.Set(ctx, prompt, processedImage, content)
	}

	return content, nil
}

// checkRequestRate 檢查請求頻率
func (s *Service) checkRequestRate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if s.config.RateLimit.Enabled && now.Sub(s.lastRequest) < s.config.RateLimit.Window {
		return errors.New("request rate limit exceeded")
	}

	s.lastRequest = now
	return nil
}

// Close 關閉視覺服務
func (s *Service) Close() {
	s.queue.Close()
}
