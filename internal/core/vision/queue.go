package vision

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"recipe-extractor/internal/infrastructure/config"
	"recipe-extractor/internal/pkg/common"

	"go.uber.org/zap"
)

// job 隊列中的一筆視覺請求
type job struct {
	ctx       context.Context
	prompt    string
	imageData string
	result    chan jobResult
}

// jobResult 處理結果
type jobResult struct {
	content string
	err     error
}

// QueueStatus 隊列狀態
type QueueStatus struct {
	QueueLength    int `json:"queue_length"`
	ProcessedCount int `json:"processed_count"`
	MaxQueueSize   int `json:"max_queue_size"`
	Workers        int `json:"workers"`
}

// Queue 視覺請求隊列；固定數量的 worker 消化請求，
// 避免同時打爆上游模型的併發上限
type Queue struct {
	config    *config.Config
	client    *Client
	jobs      chan *job
	done      chan struct{}
	processed int64
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewQueue 創建隊列並啟動 worker
func NewQueue(cfg *config.Config, client *Client) *Queue {
	q := &Queue{
		config: cfg,
		client: client,
		jobs:   make(chan *job, cfg.Queue.MaxSize),
		done:   make(chan struct{}),
	}

	workers := cfg.Queue.Workers
	if workers <= 0 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		q.wg.Add(1)
		go q.worker(i)
	}

	common.LogInfo("視覺請求隊列已啟動",
		zap.Int("workers", workers),
		zap.Int("max_queue_size", cfg.Queue.MaxSize),
	)

	return q
}

// worker 消化隊列中的請求
func (q *Queue) worker(id int) {
	defer q.wg.Done()

	for {
		select {
		case j, ok := <-q.jobs:
			if !ok {
				return
			}
			start := time.Now()
			content, err := q.client.Generate(j.ctx, j.prompt, j.imageData)
			atomic.AddInt64(&q.processed, 1)
			if err != nil {
				common.LogError("視覺請求處理失敗",
					zap.Int("worker", id),
					zap.Duration("duration", time.Since(start)),
					zap.Error(err),
				)
			}
			j.result <- jobResult{content: content, err: err}
		case <-q.done:
			return
		}
	}
}

// Submit 將請求加入隊列並等待結果
func (q *Queue) Submit(ctx context.Context, prompt, imageData string) (string, error) {
	j := &job{
		ctx:       ctx,
		prompt:    prompt,
		imageData: imageData,
		result:    make(chan jobResult, 1),
	}

	select {
	case q.jobs <- j:
	case <-ctx.Done():
		return "", ctx.Err()
	case <-q.done:
		return "", fmt.Errorf("queue is closed")
	default:
		return "", fmt.Errorf("queue is full")
	}

	select {
	case res := <-j.result:
		return res.content, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Status 回報隊列狀態
func (q *Queue) Status() *QueueStatus {
	return &QueueStatus{
		QueueLength:    len(q.jobs),
		ProcessedCount: int(atomic.LoadInt64(&q.processed)),
		MaxQueueSize:   q.config.Queue.MaxSize,
		Workers:        q.config.Queue.Workers,
	}
}

// Close 關閉隊列並等待 worker 結束
func (q *Queue) Close() {
	q.closeOnce.Do(func() {
		close(q.done)
		q.wg.Wait()
	})
}
