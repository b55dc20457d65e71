package nlp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// LanguageTool checks grammar against a LanguageTool server's /v2/check
// endpoint. Works with the public api.languagetool.org instance or a
// self-hosted one.
type LanguageTool struct {
	base string
	lang string
	c    *http.Client
}

func NewLanguageTool(baseURL, lang string) *LanguageTool {
	return &LanguageTool{
		base: strings.TrimSuffix(baseURL, "/"),
		lang: lang,
		c:    &http.Client{Timeout: 15 * time.Second},
	}
}

type ltResponse struct {
	Matches []struct {
		Message string `json:"message"`
	} `json:"matches"`
}

// Check posts the text and returns the number of rule matches.
func (lt *LanguageTool) Check(ctx context.Context, text string) (int, error) {
	form := url.Values{}
	form.Set("text", text)
	form.Set("language", lt.lang)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, lt.base+"/v2/check", strings.NewReader(form.Encode()))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := lt.c.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("languagetool %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}
	var out ltResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("languagetool decode: %w", err)
	}
	return len(out.Matches), nil
}
