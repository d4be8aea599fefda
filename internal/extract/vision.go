package extract

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fra-atlas/claims-tracker/internal/common"
)

// VisionClient implements TextExtractor against the Google Vision
// files:annotate endpoint using DOCUMENT_TEXT_DETECTION.
type VisionClient struct {
	cfg    common.GoogleConfig
	client *http.Client
	log    *slog.Logger
}

func NewVisionClient(cfg common.GoogleConfig, log *slog.Logger) *VisionClient {
	if log == nil {
		log = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	return &VisionClient{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

// visionResponse is the subset of the files:annotate response we read.
type visionResponse struct {
	Responses []struct {
		Responses []struct {
			FullTextAnnotation struct {
				Text string `json:"text"`
			} `json:"fullTextAnnotation"`
		} `json:"responses"`
	} `json:"responses"`
}

func (c *VisionClient) Extract(ctx context.Context, doc RawDocument) (string, error) {
	start := time.Now()

	payload := map[string]any{
		"requests": []map[string]any{
			{
				"inputConfig": map[string]any{
					"content":  base64.StdEncoding.EncodeToString(doc.Content),
					"mimeType": doc.MediaType,
				},
				"features": []map[string]any{
					{"type": "DOCUMENT_TEXT_DETECTION"},
				},
			},
		},
	}

	url := c.cfg.VisionEndpoint + "?key=" + c.cfg.APIKey
	raw, status, err := SendJSON(ctx, c.client, url, payload, nil, c.log)
	if err != nil {
		c.log.Error("extract.vision.request_failed", "status", status, "error", err)
		return "", fmt.Errorf("vision annotate: %w", err)
	}

	var decoded visionResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("decode vision response: %w", err)
	}

	var b strings.Builder
	if len(decoded.Responses) > 0 {
		for _, page := range decoded.Responses[0].Responses {
			if page.FullTextAnnotation.Text != "" {
				b.WriteString(page.FullTextAnnotation.Text)
				b.WriteString("\n")
			}
		}
	}

	text := b.String()
	c.log.Info("extract.vision.ok",
		"bytes_in", len(doc.Content),
		"media_type", doc.MediaType,
		"text_len", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}
