// Package service 包含了应用的业务逻辑层。
package service

import (
	"context"
	"fmt"

	"study-assistant/internal/subject"
	"study-assistant/pkg/llm"
	"study-assistant/pkg/log"
)

const (
	// RemoteConfidence 是模型成功作答时的置信度。
	RemoteConfidence = 0.85
	// FallbackConfidence 是使用兜底回答时的置信度。
	FallbackConfidence = 0.5
)

// AnswerSource 区分答案来自远程模型还是本地兜底文本。
type AnswerSource string

const (
	SourceRemote   AnswerSource = "remote"
	SourceFallback AnswerSource = "fallback"
)

// Answer 是一次作答的结果，两种来源具有相同的 (Text, Confidence) 结构。
type Answer struct {
	Text       string
	Confidence float64
	Source     AnswerSource
}

// IsFallback 判断答案是否来自兜底文本。
func (a Answer) IsFallback() bool {
	return a.Source == SourceFallback
}

// AnswerService 调用大模型回答问题，任何失败都降级为兜底回答，不向上返回错误。
type AnswerService interface {
	Answer(ctx context.Context, question string, subj subject.Subject) Answer
}

type answerService struct {
	llmClient llm.Client
}

// NewAnswerService 创建一个新的 AnswerService 实例。
func NewAnswerService(llmClient llm.Client) AnswerService {
	return &answerService{llmClient: llmClient}
}

func (s *answerService) Answer(ctx context.Context, question string, subj subject.Subject) Answer {
	text, err := s.llmClient.Chat(ctx, buildMessages(question, subj), nil)
	if err != nil {
		log.Warnw("AI 服务调用失败，使用兜底回答", "subject", string(subj), "error", err)
		return fallbackAnswer(question, subj)
	}
	return Answer{Text: text, Confidence: RemoteConfidence, Source: SourceRemote}
}

func fallbackAnswer(question string, subj subject.Subject) Answer {
	return Answer{Text: subj.Fallback(question), Confidence: FallbackConfidence, Source: SourceFallback}
}

// buildMessages 构造 system + user 两条消息。
func buildMessages(question string, subj subject.Subject) []llm.Message {
	return []llm.Message{
		{Role: "system", Content: subj.Persona() + "\n\n" + subject.Guidelines},
		{Role: "user", Content: fmt.Sprintf("Question: %s\n\nPlease provide a detailed, educational answer that helps me understand this concept thoroughly.", question)},
	}
}
