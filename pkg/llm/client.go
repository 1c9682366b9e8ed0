// Package llm provides a client for OpenAI-compatible chat completion APIs.
package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"study-assistant/internal/config"
	"study-assistant/pkg/log"

	openai "github.com/sashabaranov/go-openai"
)

// ErrEmptyResponse is returned when the API answers 200 without any choice.
var ErrEmptyResponse = errors.New("chat api returned no choices")

// StatusError is returned for any response whose status is not 200.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("chat api returned non-200 status: %d, body: %s", e.StatusCode, e.Body)
}

// Client defines the interface for an LLM client.
type Client interface {
	// Chat 以 role-based 消息调用聊天接口，返回第一个候选答案的文本。
	Chat(ctx context.Context, messages []Message, gen *GenerationParams) (string, error)
}

// Message 表示一条角色消息
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GenerationParams 控制生成行为，nil 字段使用配置中的默认值。
type GenerationParams struct {
	Temperature *float64
	MaxTokens   *int
}

type openAIClient struct {
	cfg    config.LLMConfig
	client *openai.Client
	sleep  func(time.Duration)
}

// NewClient creates a chat client bound to cfg.BaseURL.
func NewClient(cfg config.LLMConfig) Client {
	return newClient(cfg, &http.Client{Timeout: cfg.Timeout})
}

func newClient(cfg config.LLMConfig, httpClient *http.Client) *openAIClient {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	oc.HTTPClient = &statusGuard{client: httpClient}
	return &openAIClient{
		cfg:    cfg,
		client: openai.NewClientWithConfig(oc),
		sleep:  time.Sleep,
	}
}

// Chat 发送一次非流式请求；仅在传输层错误时按配置重试。
func (c *openAIClient) Chat(ctx context.Context, messages []Message, gen *GenerationParams) (string, error) {
	req := c.buildRequest(messages, gen)

	var lastErr error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			log.Warnw("chat api transport error, retrying", "attempt", attempt, "error", lastErr)
			c.sleep(c.cfg.RetryBackoff)
		}
		resp, err := c.client.CreateChatCompletion(ctx, req)
		if err == nil {
			if len(resp.Choices) == 0 {
				return "", ErrEmptyResponse
			}
			return resp.Choices[0].Message.Content, nil
		}
		lastErr = err
		if !isTransient(ctx, err) {
			break
		}
	}
	return "", fmt.Errorf("failed to call chat api: %w", lastErr)
}

func (c *openAIClient) buildRequest(messages []Message, gen *GenerationParams) openai.ChatCompletionRequest {
	temperature := c.cfg.Generation.Temperature
	maxTokens := c.cfg.Generation.MaxTokens
	if gen != nil {
		if gen.Temperature != nil {
			temperature = *gen.Temperature
		}
		if gen.MaxTokens != nil {
			maxTokens = *gen.MaxTokens
		}
	}

	msgs := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}
	return openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Messages:    msgs,
		Temperature: float32(temperature),
		MaxTokens:   maxTokens,
	}
}

// isTransient 只把连接层面的失败视为可重试；状态码错误、解析错误和上下文取消都不重试。
func isTransient(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return false
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return false
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return false
	}
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return false
	}
	// 30 秒超时已经耗尽，重试只会拉长请求
	return !urlErr.Timeout()
}

// statusGuard 在 go-openai 解析响应之前拒绝所有非 200 的响应。
type statusGuard struct {
	client *http.Client
}

func (g *statusGuard) Do(req *http.Request) (*http.Response, error) {
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return resp, nil
}
