package engine

// 中文说明：
// ChatEngine：兼容 OpenAI / DeepSeek / Qwen 的聊天补全接口（/v1/chat/completions）。
// 这里不做内部重试，只负责把失败分类为 Transient/Invalid，重试策略由编排层统一控制。

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fedboard/internal/config"
	"fedboard/internal/logger"

	"github.com/google/uuid"
)

type ChatEngine struct {
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
	httpc       *http.Client
}

func NewChatEngine(cfg config.EngineConfig) *ChatEngine {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &ChatEngine{
		baseURL:     normalizeChatURL(cfg.APIURL),
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		httpc:       &http.Client{Timeout: timeout},
	}
}

// normalizeChatURL 规范化端点，避免配置里把 /chat/completions 也写进来导致重复路径。
func normalizeChatURL(raw string) string {
	url := strings.TrimRight(strings.TrimSpace(raw), "/")
	if url == "" {
		url = "https://api.openai.com/v1"
	}
	url = strings.TrimSuffix(url, "/chat/completions")
	return url + "/chat/completions"
}

func (e *ChatEngine) DecideVote(ctx context.Context, req Request) (VoteDecision, error) {
	systemPrompt := buildSystemPrompt(req.Member)
	userPrompt := buildVotePrompt(req)
	raw, err := e.call(ctx, req.Member.ID, "vote", systemPrompt, userPrompt)
	if err != nil {
		return VoteDecision{}, err
	}
	return ParseVoteDecision(req.Member.ID, raw)
}

func (e *ChatEngine) ProjectRates(ctx context.Context, req Request) (Projection, error) {
	systemPrompt := buildSystemPrompt(req.Member)
	userPrompt := buildProjectionPrompt(req)
	raw, err := e.call(ctx, req.Member.ID, "projection", systemPrompt, userPrompt)
	if err != nil {
		return Projection{}, err
	}
	return ParseProjection(req.Member.ID, raw)
}

func (e *ChatEngine) call(ctx context.Context, memberID, purpose, systemPrompt, userPrompt string) (string, error) {
	traceID := uuid.NewString()
	messages := []map[string]string{}
	if systemPrompt != "" {
		messages = append(messages, map[string]string{"role": "system", "content": systemPrompt})
	}
	messages = append(messages, map[string]string{"role": "user", "content": userPrompt})
	body := map[string]any{
		"model":       e.model,
		"messages":    messages,
		"temperature": e.temperature,
	}
	if e.maxTokens > 0 {
		body["max_tokens"] = e.maxTokens
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal chat request failed: %w", err)
	}
	logger.LogLLMRequest(memberID, purpose, systemPrompt, userPrompt, string(payload))
	logger.Debugf("[engine] POST %s member=%s purpose=%s trace=%s bytes=%d", e.baseURL, memberID, purpose, traceID, len(payload))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build chat request failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if e.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+e.apiKey)
	}

	start := time.Now()
	resp, err := e.httpc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", transientf("chat request failed for %s (trace=%s)", memberID, traceID)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 == 2 {
		var r struct {
			Choices []struct {
				Message struct {
					Content string `json:"content"`
				} `json:"message"`
			} `json:"choices"`
		}
		if derr := json.NewDecoder(resp.Body).Decode(&r); derr != nil {
			return "", invalidf("decode chat response failed for %s: %v", memberID, derr)
		}
		if len(r.Choices) == 0 {
			return "", invalidf("empty choices for %s (trace=%s)", memberID, traceID)
		}
		out := r.Choices[0].Message.Content
		logger.Debugf("[engine] response member=%s purpose=%s trace=%s elapsed=%s", memberID, purpose, traceID, time.Since(start).Round(time.Millisecond))
		logger.LogLLMResponse(memberID, purpose, out)
		return out, nil
	}

	var eresp struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&eresp)
	msg := strings.TrimSpace(eresp.Error.Message)
	if msg == "" {
		msg = resp.Status
	}
	switch resp.StatusCode {
	case http.StatusTooManyRequests, http.StatusInternalServerError,
		http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return "", transientf("chat status=%d for %s: %s", resp.StatusCode, memberID, msg)
	}
	return "", fmt.Errorf("chat status=%d for %s: %s", resp.StatusCode, memberID, msg)
}
