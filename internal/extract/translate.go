package extract

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fra-atlas/claims-tracker/internal/common"
)

// TranslateClient implements Translator against the Google Translate v2
// endpoint. Per the Translator contract it swallows every failure and falls
// back to the original text.
type TranslateClient struct {
	cfg    common.GoogleConfig
	client *http.Client
	log    *slog.Logger
}

func NewTranslateClient(cfg common.GoogleConfig, log *slog.Logger) *TranslateClient {
	if log == nil {
		log = slog.Default()
	}
	if cfg.TranslateTarget == "" {
		cfg.TranslateTarget = "en"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	return &TranslateClient{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

type translateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

func (c *TranslateClient) Translate(ctx context.Context, text string) string {
	start := time.Now()

	form := url.Values{}
	form.Set("q", text)
	form.Set("target", c.cfg.TranslateTarget)
	form.Set("format", "text")

	endpoint := c.cfg.TranslateEndpoint + "?key=" + c.cfg.APIKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		c.log.Warn("extract.translate.build_request_failed", "error", err)
		return text
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Warn("extract.translate.request_failed", "error", err)
		return text
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Warn("extract.translate.response_body_close_error", "error", err)
		}
	}()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		c.log.Warn("extract.translate.non_2xx", "status", resp.StatusCode)
		return text
	}

	var decoded translateResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		c.log.Warn("extract.translate.decode_failed", "error", err)
		return text
	}
	if len(decoded.Data.Translations) == 0 || decoded.Data.Translations[0].TranslatedText == "" {
		c.log.Warn("extract.translate.empty_response")
		return text
	}

	c.log.Info("extract.translate.ok",
		"target", c.cfg.TranslateTarget,
		"text_len", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return decoded.Data.Translations[0].TranslatedText
}
