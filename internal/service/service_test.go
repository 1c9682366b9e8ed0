package service

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"study-assistant/internal/config"
	"study-assistant/internal/model"
	"study-assistant/internal/repository"
	"study-assistant/internal/subject"
	"study-assistant/pkg/database"
	"study-assistant/pkg/events"
	"study-assistant/pkg/llm"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeLLM struct {
	mu       sync.Mutex
	reply    string
	err      error
	messages [][]llm.Message
}

func (f *fakeLLM) Chat(_ context.Context, messages []llm.Message, _ *llm.GenerationParams) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, messages)
	return f.reply, f.err
}

type fakePublisher struct {
	events []events.ConversationRecorded
	err    error
}

func (p *fakePublisher) PublishConversationRecorded(_ context.Context, event events.ConversationRecorded) error {
	p.events = append(p.events, event)
	return p.err
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(config.DatabaseConfig{
		Driver: "sqlite",
		DSN:    filepath.Join(t.TempDir(), "service.db"),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func newTestHistory(t *testing.T) repository.HistoryRepository {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return repository.NewHistoryRepository(client)
}

func TestAnswerServiceRemote(t *testing.T) {
	client := &fakeLLM{reply: "Force equals mass times acceleration."}
	svc := NewAnswerService(client)

	answer := svc.Answer(context.Background(), "What is F=ma?", subject.Physics)

	assert.Equal(t, "Force equals mass times acceleration.", answer.Text)
	assert.Equal(t, RemoteConfidence, answer.Confidence)
	assert.False(t, answer.IsFallback())

	require.Len(t, client.messages, 1)
	msgs := client.messages[0]
	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].Role)
	assert.Contains(t, msgs[0].Content, subject.Physics.Persona())
	assert.Contains(t, msgs[0].Content, subject.Guidelines)
	assert.Equal(t, "user", msgs[1].Role)
	assert.Contains(t, msgs[1].Content, "Question: What is F=ma?\n\n")
}

func TestAnswerServiceFallback(t *testing.T) {
	svc := NewAnswerService(&fakeLLM{err: errors.New("boom")})

	for _, subj := range append(subject.All(), subject.Default) {
		answer := svc.Answer(context.Background(), "why is the sky blue", subj)
		assert.Equal(t, FallbackConfidence, answer.Confidence, subj)
		assert.True(t, answer.IsFallback(), subj)
		assert.Equal(t, subj.Fallback("why is the sky blue"), answer.Text, subj)
		assert.Contains(t, answer.Text, "why is the sky blue", subj)
	}
}

func TestStudyServiceAskRejectsBlankQuestion(t *testing.T) {
	svc := NewStudyService(NewAnswerService(&fakeLLM{}), repository.NewConversationRepository(newTestDB(t)), nil, nil)

	_, err := svc.Ask(context.Background(), "s1", "   \n\t", "")
	assert.ErrorIs(t, err, ErrEmptyQuestion)
}

func TestStudyServiceAskPersistsAndPublishes(t *testing.T) {
	db := newTestDB(t)
	history := newTestHistory(t)
	publisher := &fakePublisher{}
	svc := NewStudyService(
		NewAnswerService(&fakeLLM{reply: "F is force."}),
		repository.NewConversationRepository(db),
		history,
		publisher,
	)
	ctx := context.Background()

	result, err := svc.Ask(ctx, "s1", "  What is F=ma?  ", "")
	require.NoError(t, err)
	assert.Equal(t, "F is force.", result.Answer)
	require.NotNil(t, result.DetectedSubject)
	assert.Equal(t, "Physics", *result.DetectedSubject)
	assert.Equal(t, 0.85, result.Confidence)

	var stored []model.Conversation
	require.NoError(t, db.Find(&stored).Error)
	require.Len(t, stored, 1)
	assert.Equal(t, "s1", stored[0].SessionID)
	assert.Equal(t, "What is F=ma?", stored[0].Question)
	require.NotNil(t, stored[0].Subject)
	assert.Equal(t, "Physics", *stored[0].Subject)

	cached, err := history.GetHistory(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cached, 2)
	assert.Equal(t, "user", cached[0].Role)
	assert.Equal(t, "assistant", cached[1].Role)

	require.Len(t, publisher.events, 1)
	event := publisher.events[0]
	assert.Equal(t, stored[0].ID, event.ConversationID)
	assert.Equal(t, "Physics", event.Subject)
	assert.False(t, event.Fallback)
}

func TestStudyServiceAskOverrideAndDefault(t *testing.T) {
	db := newTestDB(t)
	svc := NewStudyService(NewAnswerService(&fakeLLM{err: errors.New("down")}), repository.NewConversationRepository(db), nil, nil)
	ctx := context.Background()

	result, err := svc.Ask(ctx, "", "What is F=ma?", "biology")
	require.NoError(t, err)
	require.NotNil(t, result.DetectedSubject)
	assert.Equal(t, "Biology", *result.DetectedSubject)
	assert.Equal(t, 0.5, result.Confidence)

	result, err = svc.Ask(ctx, "", "tell me a story", "astrology")
	require.NoError(t, err)
	assert.Nil(t, result.DetectedSubject)
	assert.Equal(t, subject.Default.Fallback("tell me a story"), result.Answer)

	var count int64
	require.NoError(t, db.Model(&model.Conversation{}).Where("session_id = ?", DefaultSessionID).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestStudyServiceAskIgnoresSideChannelErrors(t *testing.T) {
	svc := NewStudyService(
		NewAnswerService(&fakeLLM{reply: "ok"}),
		repository.NewConversationRepository(newTestDB(t)),
		nil,
		&fakePublisher{err: errors.New("kafka down")},
	)

	result, err := svc.Ask(context.Background(), "s1", "what is an atom", "")
	require.NoError(t, err)
	assert.Equal(t, "ok", result.Answer)
}

func TestStudyServiceAskStoreFailure(t *testing.T) {
	db := newTestDB(t)
	svc := NewStudyService(NewAnswerService(&fakeLLM{reply: "ok"}), repository.NewConversationRepository(db), nil, nil)
	require.NoError(t, db.Migrator().DropTable(&model.Conversation{}))

	_, err := svc.Ask(context.Background(), "s1", "what is an atom", "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyQuestion)
}

func TestStudyServiceHistoryFromDatabase(t *testing.T) {
	db := newTestDB(t)
	svc := NewStudyService(NewAnswerService(&fakeLLM{reply: "a"}), repository.NewConversationRepository(db), nil, nil)
	ctx := context.Background()

	for _, q := range []string{"q1", "q2", "q3"} {
		_, err := svc.Ask(ctx, "s1", q, "")
		require.NoError(t, err)
	}

	messages, err := svc.History(ctx, "s1", 0)
	require.NoError(t, err)
	require.Len(t, messages, 6)
	assert.Equal(t, "q1", messages[0].Content)
	assert.Equal(t, "q3", messages[4].Content)
	assert.Equal(t, "assistant", messages[5].Role)

	messages, err = svc.History(ctx, "s1", 3)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "a", messages[0].Content)
	assert.Equal(t, "q3", messages[1].Content)
}

func TestStudyServiceHistoryFromCache(t *testing.T) {
	history := newTestHistory(t)
	svc := NewStudyService(NewAnswerService(&fakeLLM{reply: "a"}), repository.NewConversationRepository(newTestDB(t)), history, nil)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		_, err := svc.Ask(ctx, "s1", "question", "")
		require.NoError(t, err)
	}

	messages, err := svc.History(ctx, "s1", 50)
	require.NoError(t, err)
	assert.Len(t, messages, 20)

	messages, err = svc.History(ctx, "s1", 4)
	require.NoError(t, err)
	assert.Len(t, messages, 4)
}

func TestResourceServiceSeedsOnce(t *testing.T) {
	svc := NewResourceService(repository.NewResourceRepository(newTestDB(t)))
	ctx := context.Background()

	require.NoError(t, svc.EnsureSeeded(ctx))
	require.NoError(t, svc.EnsureSeeded(ctx))

	resources, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, resources, len(DefaultResources))

	titles := make([]string, 0, len(resources))
	for _, r := range resources {
		titles = append(titles, r.Title)
	}
	assert.ElementsMatch(t, []string{
		"Khan Academy Mathematics",
		"MIT OpenCourseWare Physics",
		"Introduction to Algorithms",
		"Engineering Mathematics",
		"Chemistry Basics",
		"Biology: The Study of Life",
	}, titles)
}

func TestSessionServiceTouch(t *testing.T) {
	db := newTestDB(t)
	svc := NewSessionService(repository.NewSessionRepository(db))
	ctx := context.Background()

	require.NoError(t, svc.Touch(ctx, "s1"))
	require.NoError(t, svc.Touch(ctx, "s1"))
	require.NoError(t, svc.Touch(ctx, ""))

	var count int64
	require.NoError(t, db.Model(&model.Session{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
