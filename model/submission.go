package model

// Submission 一份已提交的问卷记录
// Answers 的键为问题ID，值为字符串或数字（JSON 的 string | number）
type Submission struct {
	ID        string                 `json:"id"`
	Timestamp string                 `json:"timestamp"` // ISO-8601 时间，创建后不再修改
	Answers   map[string]interface{} `json:"answers"`
}

// SubmitRequest 提交问卷的请求体
// Timestamp 可选：离线同步补交时允许客户端保留原始创建时间
type SubmitRequest struct {
	Answers   map[string]interface{} `json:"answers"`
	Timestamp string                 `json:"timestamp,omitempty"`
}
