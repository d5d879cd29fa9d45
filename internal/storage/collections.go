package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shenikar/dongmunseodap/internal/models"
)

// ReportsCollection - упорядоченный список отчетов, новые в начале
type ReportsCollection struct {
	store *Store
}

// All возвращает все отчеты. Никогда не падает: при проблемах со слотом список пуст
func (c *ReportsCollection) All(ctx context.Context) []models.Report {
	var reports []models.Report
	if !c.store.readJSON(ctx, SlotReports, &reports) || reports == nil {
		return []models.Report{}
	}
	return reports
}

// Save заменяет коллекцию целиком
func (c *ReportsCollection) Save(ctx context.Context, reports []models.Report) error {
	if reports == nil {
		reports = []models.Report{}
	}
	return c.store.writeJSON(ctx, SlotReports, reports)
}

// Add добавляет отчет в начало коллекции
func (c *ReportsCollection) Add(ctx context.Context, report models.Report) error {
	existing := c.All(ctx)
	updated := make([]models.Report, 0, len(existing)+1)
	updated = append(updated, report)
	updated = append(updated, existing...)
	return c.Save(ctx, updated)
}

// Remove удаляет отчет по id. false - отчета не было, коллекция не переписывается
func (c *ReportsCollection) Remove(ctx context.Context, id string) (bool, error) {
	existing := c.All(ctx)
	filtered := make([]models.Report, 0, len(existing))
	for _, r := range existing {
		if r.ID != id {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) == len(existing) {
		return false, nil
	}
	if err := c.Save(ctx, filtered); err != nil {
		return false, err
	}
	return true, nil
}

// UserReportsCollection - индекс id отчетов, созданных на этом устройстве
type UserReportsCollection struct {
	store *Store
}

func (c *UserReportsCollection) All(ctx context.Context) []string {
	var ids []string
	if !c.store.readJSON(ctx, SlotUserReports, &ids) || ids == nil {
		return []string{}
	}
	return ids
}

// Add добавляет id в начало индекса, если его там еще нет
func (c *UserReportsCollection) Add(ctx context.Context, id string) error {
	ids := c.All(ctx)
	for _, existing := range ids {
		if existing == id {
			return nil
		}
	}
	updated := append([]string{id}, ids...)
	return c.store.writeJSON(ctx, SlotUserReports, updated)
}

func (c *UserReportsCollection) Remove(ctx context.Context, id string) error {
	ids := c.All(ctx)
	filtered := make([]string, 0, len(ids))
	for _, existing := range ids {
		if existing != id {
			filtered = append(filtered, existing)
		}
	}
	return c.store.writeJSON(ctx, SlotUserReports, filtered)
}

// SettingsCollection - произвольные настройки "ключ - JSON-значение"
type SettingsCollection struct {
	store *Store
}

func (c *SettingsCollection) load(ctx context.Context) map[string]json.RawMessage {
	settings := map[string]json.RawMessage{}
	if !c.store.readJSON(ctx, SlotSettings, &settings) || settings == nil {
		return map[string]json.RawMessage{}
	}
	return settings
}

// Raw возвращает сырое значение настройки
func (c *SettingsCollection) Raw(ctx context.Context, key string) (json.RawMessage, bool) {
	v, ok := c.load(ctx)[key]
	return v, ok
}

// Get возвращает значение настройки или defaultValue, если ключа нет
func (c *SettingsCollection) Get(ctx context.Context, key string, defaultValue any) any {
	raw, ok := c.Raw(ctx, key)
	if !ok {
		return defaultValue
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return defaultValue
	}
	return v
}

// Set записывает значение настройки, остальные ключи сохраняются
func (c *SettingsCollection) Set(ctx context.Context, key string, value any) error {
	settings := c.load(ctx)
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal setting %s: %w", key, err)
	}
	settings[key] = payload
	return c.store.writeJSON(ctx, SlotSettings, settings)
}

// GetSetting - типизированное чтение настройки. При отсутствии ключа
// или несовпадении типа возвращается defaultValue
func GetSetting[T any](ctx context.Context, c *SettingsCollection, key string, defaultValue T) T {
	raw, ok := c.Raw(ctx, key)
	if !ok {
		return defaultValue
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return defaultValue
	}
	return v
}
