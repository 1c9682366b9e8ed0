package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"study-assistant/internal/model"
	"study-assistant/internal/repository"
	"study-assistant/internal/subject"
	"study-assistant/pkg/events"
	"study-assistant/pkg/log"
)

// ErrEmptyQuestion 表示去除空白后问题为空。
var ErrEmptyQuestion = errors.New("question is required")

const (
	// DefaultSessionID 用于没有会话信息的请求。
	DefaultSessionID = "default"
	// DefaultHistoryLimit 是未指定条数时返回的消息数量。
	DefaultHistoryLimit = 20
)

// EventPublisher 发布问答事件，由 Kafka 生产者实现。
type EventPublisher interface {
	PublishConversationRecorded(ctx context.Context, event events.ConversationRecorded) error
}

// StudyService 定义了学习问答的业务流程。
type StudyService interface {
	Ask(ctx context.Context, sessionID, question, subjectOverride string) (*model.AskResult, error)
	History(ctx context.Context, sessionID string, limit int) ([]model.ChatMessage, error)
}

type studyService struct {
	answerService    AnswerService
	conversationRepo repository.ConversationRepository
	historyRepo      repository.HistoryRepository
	publisher        EventPublisher
}

// NewStudyService 创建一个新的 StudyService 实例。historyRepo 与 publisher 可以为 nil。
func NewStudyService(answerService AnswerService, conversationRepo repository.ConversationRepository, historyRepo repository.HistoryRepository, publisher EventPublisher) StudyService {
	return &studyService{
		answerService:    answerService,
		conversationRepo: conversationRepo,
		historyRepo:      historyRepo,
		publisher:        publisher,
	}
}

// Ask 判定学科、获取答案并保存问答记录。只有记录保存失败才返回错误。
func (s *studyService) Ask(ctx context.Context, sessionID, question, subjectOverride string) (*model.AskResult, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}
	if sessionID == "" {
		sessionID = DefaultSessionID
	}

	subj := subject.Resolve(question, subjectOverride)
	answer := s.answerService.Answer(ctx, question, subj)

	conversation := &model.Conversation{
		SessionID:  sessionID,
		Question:   question,
		Answer:     answer.Text,
		Subject:    subj.Label(),
		Confidence: answer.Confidence,
	}
	if err := s.conversationRepo.Create(ctx, conversation); err != nil {
		return nil, fmt.Errorf("failed to save conversation: %w", err)
	}

	s.cacheHistory(ctx, conversation)
	s.publish(ctx, conversation, subj, answer)

	return &model.AskResult{
		Answer:          answer.Text,
		DetectedSubject: subj.Label(),
		Confidence:      answer.Confidence,
	}, nil
}

// History 优先读取 Redis 缓存，缓存不可用或为空时从数据库重建。
func (s *studyService) History(ctx context.Context, sessionID string, limit int) ([]model.ChatMessage, error) {
	if sessionID == "" {
		sessionID = DefaultSessionID
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if s.historyRepo != nil {
		messages, err := s.historyRepo.GetHistory(ctx, sessionID)
		if err != nil {
			log.Errorf("Failed to load session history from cache: %v", err)
		} else if len(messages) > 0 {
			if len(messages) > limit {
				messages = messages[len(messages)-limit:]
			}
			return messages, nil
		}
	}

	// 每条记录展开为两条消息
	conversations, err := s.conversationRepo.ListBySession(ctx, sessionID, (limit+1)/2)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	messages := make([]model.ChatMessage, 0, len(conversations)*2)
	for i := len(conversations) - 1; i >= 0; i-- {
		messages = append(messages, conversations[i].Messages()...)
	}
	if len(messages) > limit {
		messages = messages[len(messages)-limit:]
	}
	return messages, nil
}

func (s *studyService) cacheHistory(ctx context.Context, conversation *model.Conversation) {
	if s.historyRepo == nil {
		return
	}
	if err := s.historyRepo.AppendHistory(ctx, conversation.SessionID, conversation.Messages()...); err != nil {
		// 缓存失败不影响本次回答
		log.Errorf("Failed to save session history: %v", err)
	}
}

func (s *studyService) publish(ctx context.Context, conversation *model.Conversation, subj subject.Subject, answer Answer) {
	if s.publisher == nil {
		return
	}
	event := events.ConversationRecorded{
		ConversationID: conversation.ID,
		SessionID:      conversation.SessionID,
		Subject:        string(subj),
		Confidence:     answer.Confidence,
		Fallback:       answer.IsFallback(),
		CreatedAt:      conversation.CreatedAt,
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	if err := s.publisher.PublishConversationRecorded(ctx, event); err != nil {
		log.Errorf("Failed to publish conversation event: %v", err)
	}
}
