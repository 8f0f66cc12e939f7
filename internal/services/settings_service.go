package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/souqplus/api/internal/helpers"
	"github.com/souqplus/api/internal/models"
)

const defaultLanguage = "en"

// AppSettings mirrors the settings screen toggles.
type AppSettings struct {
	NotificationsEnabled bool `json:"notifications_enabled"`
	LocationEnabled      bool `json:"location_enabled"`
	DarkMode             bool `json:"dark_mode"`
}

func defaultAppSettings() AppSettings {
	return AppSettings{
		NotificationsEnabled: true,
		LocationEnabled:      true,
		DarkMode:             false,
	}
}

// SettingsService persists the selected language and app settings through
// the same KV storage the session uses. Malformed or missing records
// degrade to defaults rather than erroring out.
type SettingsService struct {
	kv     models.KVStore
	logger *slog.Logger
}

func NewSettingsService(kv models.KVStore, logger *slog.Logger) *SettingsService {
	return &SettingsService{kv: kv, logger: logger}
}

func languageKey(userID string) string {
	return models.SelectedLanguageKey + ":" + userID
}

func settingsKey(userID string) string {
	return models.AppSettingsKey + ":" + userID
}

func (ss *SettingsService) Language(ctx context.Context, userID string) string {
	lang, ok, err := ss.kv.Get(ctx, languageKey(userID))
	if err != nil {
		ss.logger.Error("failed to read selected language", "error", err, "user_id", userID)
		return defaultLanguage
	}
	if !ok || (lang != "en" && lang != "ar") {
		return defaultLanguage
	}
	return lang
}

func (ss *SettingsService) SetLanguage(ctx context.Context, userID, lang string) error {
	if lang != "en" && lang != "ar" {
		return fmt.Errorf("unsupported language: %s", lang)
	}
	return ss.kv.Set(ctx, languageKey(userID), lang)
}

// IsRTL reports whether the user's stored locale reads right-to-left.
func (ss *SettingsService) IsRTL(ctx context.Context, userID string) bool {
	return helpers.IsRTL(ss.Language(ctx, userID))
}

func (ss *SettingsService) AppSettings(ctx context.Context, userID string) AppSettings {
	raw, ok, err := ss.kv.Get(ctx, settingsKey(userID))
	if err != nil {
		ss.logger.Error("failed to read app settings", "error", err, "user_id", userID)
		return defaultAppSettings()
	}
	if !ok {
		return defaultAppSettings()
	}
	var settings AppSettings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		ss.logger.Warn("malformed app settings record, using defaults", "user_id", userID)
		return defaultAppSettings()
	}
	return settings
}

func (ss *SettingsService) SaveAppSettings(ctx context.Context, userID string, settings AppSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %v", err)
	}
	return ss.kv.Set(ctx, settingsKey(userID), string(data))
}
