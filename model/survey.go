package model

// QuestionType 问题类型：radio-单选，scale-量表，textarea-文本
type QuestionType string

const (
	QuestionRadio    QuestionType = "radio"
	QuestionScale    QuestionType = "scale"
	QuestionTextarea QuestionType = "textarea"
)

// Question 问卷问题定义
type Question struct {
	ID          string       `json:"id"`
	Type        QuestionType `json:"type"`
	Text        string       `json:"text"`
	Options     []string     `json:"options,omitempty"`     // radio/scale 的选项
	Placeholder string       `json:"placeholder,omitempty"` // textarea 的占位符
}

// Section 问卷分区
type Section struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// SurveyHeader 问卷头部信息
type SurveyHeader struct {
	Title    string `json:"title"`
	LogoText string `json:"logoText"`
	Intro    string `json:"intro"`
	LogoURL  string `json:"logoUrl,omitempty"`
}

// SurveyData 完整的问卷定义，作为静态配置下发
// 存储层不校验答案键与问卷定义的一致性
type SurveyData struct {
	Header   SurveyHeader `json:"header"`
	Sections []Section    `json:"sections"`
}
