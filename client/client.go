package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/h33n313/nazarsanji-omidhospital/model"
	"github.com/h33n313/nazarsanji-omidhospital/utils"
)

// 离线缓存在本地存储中的键
const StorageKey = "omid_survey_offline_data"

const (
	defaultTimeout      = 3 * time.Second
	defaultOfflineDelay = 800 * time.Millisecond
)

// Config 同步客户端配置
type Config struct {
	BaseURL string
	// 远端请求超时，默认3秒，保证界面不会无限等待
	Timeout time.Duration
	// 离线落库后的模拟延迟，让离线提交的交互节奏与在线一致，默认800毫秒
	OfflineDelay time.Duration
}

// Client 答卷同步客户端
// 对上层提供"永远成功"的读写视图：远端不可达时降级到本地缓存，
// 降级只打日志，不向调用方抛错
type Client struct {
	baseURL      string
	httpClient   *http.Client
	kv           KV
	offlineDelay time.Duration
}

// NewClient 创建同步客户端
func NewClient(cfg *Config, kv KV) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	delay := cfg.OfflineDelay
	if delay < 0 {
		delay = 0
	} else if delay == 0 {
		delay = defaultOfflineDelay
	}

	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		kv:           kv,
		offlineDelay: delay,
	}
}

// FetchAll 获取全部答卷
// 远端成功时其结果即权威结果，不与本地缓存合并；
// 失败时回退本地缓存，缓存为空则先注入确定性的演示数据
func (c *Client) FetchAll(ctx context.Context) []model.Submission {
	recs, err := c.fetchRemote(ctx)
	if err == nil {
		return recs
	}
	log.Printf("获取答卷失败，切换离线模式: %v", err)

	if cached, ok := c.loadCache(); ok {
		return cached
	}

	// 首次离线使用：用演示数据填充缓存，保证界面有内容可渲染
	mock := GenerateMockData()
	c.saveCache(mock)
	return mock
}

// Create 提交一份答卷
// 远端成功时以服务端记录为准（远端ID生效）；
// 失败时本地合成 local- 前缀的记录并插入缓存头部（最新在前）
func (c *Client) Create(ctx context.Context, answers map[string]interface{}) *model.Submission {
	payload := model.SubmitRequest{
		Answers:   answers,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	rec, err := c.createRemote(ctx, &payload)
	if err == nil {
		return rec
	}
	log.Printf("提交答卷失败，保存到本地: %v", err)

	local := &model.Submission{
		ID:        utils.GenerateLocalID(),
		Timestamp: payload.Timestamp,
		Answers:   payload.Answers,
	}

	cached, ok := c.loadCache()
	if !ok {
		cached = GenerateMockData()
	}
	// 头部插入使"最新N条"读取保持廉价
	cached = append([]model.Submission{*local}, cached...)
	c.saveCache(cached)

	// 模拟网络延迟，保持与在线路径一致的交互反馈
	select {
	case <-time.After(c.offlineDelay):
	case <-ctx.Done():
	}
	return local
}

// fetchRemote 远端读取，失败统一作为 TransportError 返回给回退逻辑
func (c *Client) fetchRemote(ctx context.Context) ([]model.Submission, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/surveys", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("远端返回状态码 %d", resp.StatusCode)
	}

	var recs []model.Submission
	if err := json.NewDecoder(resp.Body).Decode(&recs); err != nil {
		return nil, err
	}
	if recs == nil {
		recs = []model.Submission{}
	}
	return recs, nil
}

// createRemote 远端提交
func (c *Client) createRemote(ctx context.Context, payload *model.SubmitRequest) (*model.Submission, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/surveys", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("远端返回状态码 %d: %s", resp.StatusCode, msg)
	}

	var rec model.Submission
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// loadCache 读取离线缓存，键不存在或内容损坏均视为未命中
func (c *Client) loadCache() ([]model.Submission, bool) {
	raw, ok := c.kv.Get(StorageKey)
	if !ok {
		return nil, false
	}
	var recs []model.Submission
	if err := json.Unmarshal([]byte(raw), &recs); err != nil {
		log.Printf("离线缓存解析失败，按未命中处理: %v", err)
		return nil, false
	}
	return recs, true
}

// saveCache 持久化离线缓存
func (c *Client) saveCache(recs []model.Submission) {
	data, err := json.Marshal(recs)
	if err != nil {
		log.Printf("离线缓存序列化失败: %v", err)
		return
	}
	if err := c.kv.Set(StorageKey, string(data)); err != nil {
		log.Printf("离线缓存写入失败: %v", err)
	}
}
