package client

import (
	"context"
	"sync"
	"time"

	"github.com/h33n313/nazarsanji-omidhospital/model"
)

const defaultPollInterval = 30 * time.Second

// Poller 定期拉取答卷并统计新增数量
// 首次成功拉取只记基数不触发回调，与用户主动刷新互不干扰
type Poller struct {
	client   *Client
	interval time.Duration
	onNew    func(delta int, recs []model.Submission)

	mu        sync.Mutex
	prevCount int
	primed    bool

	stop     chan struct{}
	stopOnce sync.Once
}

// NewPoller 创建轮询器，interval 小于等于零时取默认30秒
func NewPoller(c *Client, interval time.Duration, onNew func(delta int, recs []model.Submission)) *Poller {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &Poller{
		client:   c,
		interval: interval,
		onNew:    onNew,
		stop:     make(chan struct{}),
	}
}

// Start 启动轮询，阻塞直到 Stop 或 ctx 取消
func (p *Poller) Start(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.poll(ctx)
		case <-p.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Prime 用一次已有的读取结果设置基数，避免启动后的首轮误报
func (p *Poller) Prime(count int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.prevCount = count
	p.primed = true
}

// Stop 停止轮询，可重复调用
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		close(p.stop)
	})
}

func (p *Poller) poll(ctx context.Context) {
	recs := p.client.FetchAll(ctx)

	p.mu.Lock()
	delta := len(recs) - p.prevCount
	notify := p.primed && delta > 0
	p.prevCount = len(recs)
	p.primed = true
	p.mu.Unlock()

	if notify && p.onNew != nil {
		p.onNew(delta, recs)
	}
}
