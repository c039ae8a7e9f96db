package places

import (
	"context"
	"io"
	"net/http"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// emailPattern matches addresses embedded in page text.
var emailPattern = regexp.MustCompile(`\b[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}\b`)

// junkMarkers flag matches that are asset references or documentation
// placeholders rather than reachable addresses.
var junkMarkers = []string{"example", ".png", ".jpg", ".jpeg", ".svg", ".css", ".js"}

// scrapeEmails fetches a business website and extracts up to limit e-mail
// addresses. Failures degrade the record instead of failing the search.
func (c *Client) scrapeEmails(ctx context.Context, website string, limit int) []string {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, website, nil)
	if err != nil {
		c.logger.Warn("website scrape failed", zap.String("website", website), zap.Error(err))
		return nil
	}
	httpReq.Header.Set("User-Agent", websiteUserAgent)

	resp, err := c.websiteClient.Do(httpReq)
	if err != nil {
		c.logger.Warn("website scrape failed", zap.String("website", website), zap.Error(err))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("website scrape failed",
			zap.String("website", website),
			zap.Int("status", resp.StatusCode))
		return nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxWebsiteBytes))
	if err != nil {
		c.logger.Warn("website scrape failed", zap.String("website", website), zap.Error(err))
		return nil
	}

	return ExtractEmails(string(body), limit)
}

// ExtractEmails returns the deduplicated, sorted addresses found in text,
// capped at limit. Asset references and placeholder addresses are dropped.
// Exported for testing.
func ExtractEmails(text string, limit int) []string {
	raw := emailPattern.FindAllString(text, -1)
	seen := make(map[string]struct{}, len(raw))
	var emails []string
	for _, e := range raw {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		if isJunk(e) {
			continue
		}
		emails = append(emails, e)
	}
	sort.Strings(emails)
	if limit > 0 && len(emails) > limit {
		emails = emails[:limit]
	}
	return emails
}

func isJunk(email string) bool {
	lower := strings.ToLower(email)
	for _, marker := range junkMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
