// Package subject 根据关键词判定学习问题所属的学科，并提供各学科的提示词与兜底回答。
package subject

import "strings"

// Subject 是学科标签，取值为一个封闭集合。
type Subject string

const (
	Mathematics     Subject = "Mathematics"
	Physics         Subject = "Physics"
	Chemistry       Subject = "Chemistry"
	ComputerScience Subject = "Computer Science"
	Engineering     Subject = "Engineering"
	Biology         Subject = "Biology"
	// Default 表示未识别出具体学科。
	Default Subject = "default"
)

// detectionOrder 决定关键词冲突时的优先级，靠前者胜出。
var detectionOrder = []Subject{
	Mathematics,
	Physics,
	Chemistry,
	ComputerScience,
	Engineering,
	Biology,
}

// All 按判定顺序返回全部具体学科（不含 Default）。
func All() []Subject {
	out := make([]Subject, len(detectionOrder))
	copy(out, detectionOrder)
	return out
}

// Detect 将问题转为小写后依次检查各学科的关键词，返回第一个命中的学科；
// 没有任何关键词命中时返回 Default。
func Detect(question string) Subject {
	lower := strings.ToLower(question)
	for _, s := range detectionOrder {
		for _, kw := range keywords[s] {
			if strings.Contains(lower, kw) {
				return s
			}
		}
	}
	return Default
}

// Parse 不区分大小写地把标签解析为具体学科。Default 与未知标签返回 false。
func Parse(label string) (Subject, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return Default, false
	}
	for _, s := range detectionOrder {
		if strings.EqualFold(string(s), label) {
			return s, true
		}
	}
	return Default, false
}

// Resolve 优先使用显式指定的学科，否则根据问题内容判定。
func Resolve(question, override string) Subject {
	if s, ok := Parse(override); ok {
		return s
	}
	return Detect(question)
}

// IsDefault 判断是否为未识别学科。
func (s Subject) IsDefault() bool {
	return s == Default || s == ""
}

// Label 返回对外展示用的学科名，Default 对应 nil（JSON 中为 null）。
func (s Subject) Label() *string {
	if s.IsDefault() {
		return nil
	}
	v := string(s)
	return &v
}

// Persona 返回该学科的系统提示词，未知学科使用通用导师设定。
func (s Subject) Persona() string {
	if p, ok := personas[s]; ok {
		return p
	}
	return personas[Default]
}

// Fallback 在 AI 服务不可用时生成该学科的兜底回答，未知学科使用通用学习建议。
func (s Subject) Fallback(question string) string {
	tmpl, ok := fallbacks[s]
	if !ok {
		tmpl = fallbacks[Default]
	}
	return strings.ReplaceAll(tmpl, questionPlaceholder, question)
}
