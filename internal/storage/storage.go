package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shenikar/dongmunseodap/internal/observability"
	"github.com/sirupsen/logrus"
)

// Имена слотов. Каждый слот хранит одно JSON-значение целиком
const (
	SlotReports     = "reports"
	SlotUserReports = "userReports"
	SlotSettings    = "settings"
)

// Store - адаптер над Backend с тремя именованными коллекциями.
// Чтение-изменение-запись не атомарно: параллельные писатели могут терять записи
type Store struct {
	backend   Backend
	namespace string
	logger    *logrus.Logger
	metrics   *observability.Metrics
}

// New создает адаптер. namespace добавляется префиксом к имени каждого слота
func New(backend Backend, namespace string, logger *logrus.Logger, metrics *observability.Metrics) *Store {
	return &Store{
		backend:   backend,
		namespace: namespace,
		logger:    logger,
		metrics:   metrics,
	}
}

func (s *Store) Reports() *ReportsCollection {
	return &ReportsCollection{store: s}
}

func (s *Store) UserReports() *UserReportsCollection {
	return &UserReportsCollection{store: s}
}

func (s *Store) Settings() *SettingsCollection {
	return &SettingsCollection{store: s}
}

// Key возвращает полное имя слота с учетом namespace
func (s *Store) Key(slot string) string {
	return s.namespace + slot
}

// readJSON декодирует слот в dst. Отсутствующий, поврежденный или недоступный
// слот дает false, ошибка вызывающему не возвращается
func (s *Store) readJSON(ctx context.Context, slot string, dst any) bool {
	log := s.logger.WithFields(logrus.Fields{
		"component": "storage",
		"slot":      slot,
	})

	raw, ok, err := s.backend.GetItem(ctx, s.Key(slot))
	if err != nil {
		log.WithError(err).Warn("Failed to read slot, treating as empty")
		s.metrics.StorageReadFallbacks.WithLabelValues(slot, "error").Inc()
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		log.WithError(err).Warn("Slot contains invalid data, treating as empty")
		s.metrics.StorageReadFallbacks.WithLabelValues(slot, "corrupt").Inc()
		return false
	}
	return true
}

// writeJSON заменяет содержимое слота целиком
func (s *Store) writeJSON(ctx context.Context, slot string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		s.metrics.StorageWriteFailures.WithLabelValues(slot).Inc()
		return fmt.Errorf("failed to marshal slot %s: %w", slot, err)
	}
	if err := s.backend.SetItem(ctx, s.Key(slot), string(payload)); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"component": "storage",
			"slot":      slot,
		}).Error("Failed to save slot")
		s.metrics.StorageWriteFailures.WithLabelValues(slot).Inc()
		return fmt.Errorf("failed to save slot %s: %w", slot, err)
	}
	return nil
}
