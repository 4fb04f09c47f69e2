package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/jwebster45206/newsroom-engine/pkg/article"
	"github.com/jwebster45206/newsroom-engine/pkg/simulation"
)

// Request and response types match the API wire format.

type RandomArticleRequest struct {
	Article article.Article `json:"article"`
}

type SimulateRequest struct {
	SessionID *uuid.UUID      `json:"session_id,omitempty"`
	Article   article.Article `json:"article"`
}

type SimulateResponse struct {
	SessionID *uuid.UUID         `json:"session_id,omitempty"`
	Result    *simulation.Result `json:"result"`
}

type ReactionRequest struct {
	Article article.Article    `json:"article"`
	Comment simulation.Comment `json:"comment"`
	Reply   string             `json:"reply"`
}

type ReactionResponse struct {
	Replies []simulation.Reply `json:"replies"`
}

func testConnection(client *http.Client, baseURL string) bool {
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		return false
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()
	return resp.StatusCode == http.StatusOK
}

func postJSON(client *http.Client, url string, payload interface{}) ([]byte, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := client.Post(url, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ErrorResponse
		if err := json.Unmarshal(body, &errorResp); err != nil {
			return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("request failed: %s", errorResp.Error)
	}

	return body, nil
}

func requestRandomArticle(client *http.Client, baseURL string, a article.Article) (*article.Draft, error) {
	body, err := postJSON(client, baseURL+"/v1/articles/random", RandomArticleRequest{Article: a})
	if err != nil {
		return nil, err
	}

	var draft article.Draft
	if err := json.Unmarshal(body, &draft); err != nil {
		return nil, fmt.Errorf("failed to parse draft response: %w", err)
	}
	return &draft, nil
}

func requestSimulation(client *http.Client, baseURL string, sessionID uuid.UUID, a article.Article) (*SimulateResponse, error) {
	body, err := postJSON(client, baseURL+"/v1/simulate", SimulateRequest{
		SessionID: &sessionID,
		Article:   a,
	})
	if err != nil {
		return nil, err
	}

	var simResp SimulateResponse
	if err := json.Unmarshal(body, &simResp); err != nil {
		return nil, fmt.Errorf("failed to parse simulation response: %w", err)
	}
	return &simResp, nil
}

func requestReaction(client *http.Client, baseURL string, a article.Article, c simulation.Comment, reply string) ([]simulation.Reply, error) {
	body, err := postJSON(client, baseURL+"/v1/reactions", ReactionRequest{
		Article: a,
		Comment: c,
		Reply:   reply,
	})
	if err != nil {
		return nil, err
	}

	var reactionResp ReactionResponse
	if err := json.Unmarshal(body, &reactionResp); err != nil {
		return nil, fmt.Errorf("failed to parse reaction response: %w", err)
	}
	return reactionResp.Replies, nil
}
