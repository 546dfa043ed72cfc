package notes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

type HuggingFaceClient struct {
	apiKey    string
	model     string
	maxLength int
	minLength int
	client    *http.Client
}

func NewHuggingFaceClient(model string, maxLength, minLength int) *HuggingFaceClient {
	key := os.Getenv("HF_API_TOKEN")
	if key == "" {
		panic("HF_API_TOKEN not set")
	}

	return &HuggingFaceClient{
		apiKey:    key,
		model:     model,
		maxLength: maxLength,
		minLength: minLength,
		// wait_for_model keeps the request open while the model spins up
		client: &http.Client{Timeout: 120 * time.Second},
	}
}

type hfRequest struct {
	Inputs     string `json:"inputs"`
	Parameters struct {
		MaxLength int  `json:"max_length"`
		MinLength int  `json:"min_length"`
		DoSample  bool `json:"do_sample"`
	} `json:"parameters"`
	Options struct {
		WaitForModel bool `json:"wait_for_model"`
	} `json:"options"`
}

type hfResponse []struct {
	SummaryText string `json:"summary_text"`
}

func (c *HuggingFaceClient) Summarize(ctx context.Context, text string) (string, error) {
	reqBody := hfRequest{Inputs: text}
	reqBody.Parameters.MaxLength = c.maxLength
	reqBody.Parameters.MinLength = c.minLength
	reqBody.Parameters.DoSample = false
	reqBody.Options.WaitForModel = true

	b, _ := json.Marshal(reqBody)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		"https://api-inference.huggingface.co/models/"+c.model,
		bytes.NewBuffer(b),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("huggingface request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("huggingface error: %s", body)
	}

	var out hfResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode huggingface: %w", err)
	}

	if len(out) == 0 {
		return "", nil
	}

	return strings.TrimSpace(out[0].SummaryText), nil
}
