package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/notify"
	"go-weather/internal/domain/gateway/store"
	"go-weather/internal/domain/model"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"go.uber.org/zap"
)

type settingsUseCase struct {
	mu sync.RWMutex
	// writeMu orders apply and save so the store never lags behind an older update
	writeMu  sync.Mutex
	current  entity.Settings
	store    store.SettingsGateway
	notifier notify.Notifier
}

func NewSettingsUseCase(store store.SettingsGateway, notifier notify.Notifier) UseCase {
	return &settingsUseCase{
		current:  entity.DefaultSettings(),
		store:    store,
		notifier: notifier,
	}
}

// Load never fails: unreadable or corrupt data leaves the affected fields at their defaults
func (uc *settingsUseCase) Load(ctx context.Context) entity.Settings {
	loaded := entity.DefaultSettings()

	data, err := uc.store.Load(ctx)
	if err != nil {
		logPersistenceError(&model.PersistenceError{Op: "load", Err: err})
	} else if data != nil {
		loaded = overlay(loaded, data)
	}

	uc.mu.Lock()
	uc.current = loaded
	uc.mu.Unlock()

	log.Info(msg.GetMessage("settings.loaded", uc.store.Name()),
		zap.String("language", string(loaded.Language)),
		zap.String("unit", string(loaded.Unit)),
	)

	if loaded.Notifications {
		uc.ensurePermission(ctx)
	}
	return loaded
}

func (uc *settingsUseCase) Get() entity.Settings {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.current
}

func (uc *settingsUseCase) Update(ctx context.Context, patch model.SettingsPatch) (model.SettingsChange, error) {
	if err := validate(patch); err != nil {
		return model.SettingsChange{}, err
	}

	uc.writeMu.Lock()
	uc.mu.Lock()
	change := model.SettingsChange{Previous: uc.current, Current: apply(uc.current, patch)}
	uc.current = change.Current
	uc.mu.Unlock()

	uc.save(ctx, change.Current)
	uc.writeMu.Unlock()

	if change.NotificationsEnabled() {
		uc.ensurePermission(ctx)
	}
	return change, nil
}

// ensurePermission asks the notification channel once, while its state is still default
func (uc *settingsUseCase) ensurePermission(ctx context.Context) {
	if uc.notifier == nil || uc.notifier.Permission() != notify.PermissionDefault {
		return
	}
	permission := uc.notifier.RequestPermission(ctx)
	log.Info(msg.GetMessage("notification.permission", uc.notifier.Name(), permission))
}

// save degrades to in-memory operation when the store is unavailable
func (uc *settingsUseCase) save(ctx context.Context, settings entity.Settings) {
	data, err := json.Marshal(settings)
	if err != nil {
		logPersistenceError(&model.PersistenceError{Op: "encode", Err: err})
		return
	}
	if err := uc.store.Save(ctx, data); err != nil {
		logPersistenceError(&model.PersistenceError{Op: "save", Err: err})
	}
}

func logPersistenceError(err *model.PersistenceError) {
	log.Warn(msg.GetMessage("settings.persistence-failed", err), zap.String("op", err.Op))
}

func validate(patch model.SettingsPatch) error {
	if patch.Theme != nil && !patch.Theme.Valid() {
		return fmt.Errorf("%w: theme %q", model.ErrInvalidSetting, *patch.Theme)
	}
	if patch.Language != nil && !patch.Language.Valid() {
		return fmt.Errorf("%w: language %q", model.ErrInvalidSetting, *patch.Language)
	}
	if patch.Unit != nil && !patch.Unit.Valid() {
		return fmt.Errorf("%w: unit %q", model.ErrInvalidSetting, *patch.Unit)
	}
	return nil
}

func apply(settings entity.Settings, patch model.SettingsPatch) entity.Settings {
	if patch.Theme != nil {
		settings.Theme = *patch.Theme
	}
	if patch.Language != nil {
		settings.Language = *patch.Language
	}
	if patch.Unit != nil {
		settings.Unit = *patch.Unit
	}
	if patch.AutoRefresh != nil {
		settings.AutoRefresh = *patch.AutoRefresh
	}
	if patch.Notifications != nil {
		settings.Notifications = *patch.Notifications
	}
	return settings
}

// overlay decodes each persisted field on its own so one bad field does not discard the others
func overlay(settings entity.Settings, data []byte) entity.Settings {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		logPersistenceError(&model.PersistenceError{Op: "decode", Err: err})
		return settings
	}

	var theme entity.Theme
	if decodeField(fields, "theme", &theme) && theme.Valid() {
		settings.Theme = theme
	}
	var language entity.Language
	if decodeField(fields, "language", &language) && language.Valid() {
		settings.Language = language
	}
	var unit entity.Unit
	if decodeField(fields, "unit", &unit) && unit.Valid() {
		settings.Unit = unit
	}
	var autoRefresh bool
	if decodeField(fields, "autoRefresh", &autoRefresh) {
		settings.AutoRefresh = autoRefresh
	}
	var notifications bool
	if decodeField(fields, "notifications", &notifications) {
		settings.Notifications = notifications
	}
	return settings
}

func decodeField(fields map[string]json.RawMessage, key string, target any) bool {
	raw, ok := fields[key]
	if !ok || string(raw) == "null" {
		return false
	}
	return json.Unmarshal(raw, target) == nil
}
