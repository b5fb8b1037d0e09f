package feedb

import (
	"encoding/json"
	"os"

	"go.uber.org/zap"

	"github.com/permitdesk/permit-cli/internal/model"
)

// LoadHistory reads the scrape history store. The store is optional and
// externally produced, so every failure mode degrades to nil: a missing
// file, unreadable file, or malformed JSON all mean "no scrape data"
// rather than an error. Corruption is logged and otherwise ignored.
func LoadHistory(path string) map[string]model.ScrapeRecord {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			zap.L().Warn("feedb: scrape history unreadable, using baseline",
				zap.String("path", path), zap.Error(err))
		}
		return nil
	}

	var history map[string]model.ScrapeRecord
	if err := json.Unmarshal(data, &history); err != nil {
		zap.L().Warn("feedb: scrape history malformed, using baseline",
			zap.String("path", path), zap.Error(err))
		return nil
	}

	return history
}
