package store

import (
	"context"
	"errors"
	"time"

	"go-weather/internal/domain/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsRecord is one stored blob per storage key.
type SettingsRecord struct {
	Key       string `gorm:"primaryKey;size:128"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (SettingsRecord) TableName() string {
	return "user_settings"
}

// GormSettingsGateway stores the blob in a relational table through gorm.
type GormSettingsGateway struct {
	DB  *gorm.DB
	key string
}

var _ SettingsGateway = (*GormSettingsGateway)(nil)

func NewGormSettingsGateway(db *gorm.DB, key string) *GormSettingsGateway {
	return &GormSettingsGateway{DB: db, key: key}
}

// Migrate creates the settings table when it does not exist.
func (gateway *GormSettingsGateway) Migrate() error {
	return gateway.DB.AutoMigrate(&SettingsRecord{})
}

func (gateway *GormSettingsGateway) Load(ctx context.Context) ([]byte, error) {
	var record SettingsRecord
	err := gateway.DB.WithContext(ctx).Where("key = ?", gateway.key).Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(record.Value), nil
}

func (gateway *GormSettingsGateway) Save(ctx context.Context, data []byte) error {
	record := SettingsRecord{Key: gateway.key, Value: string(data), UpdatedAt: time.Now().UTC()}
	return gateway.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record).Error
}

func (gateway *GormSettingsGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	details := map[string]string{"backend": gateway.Name()}

	sqlDB, err := gateway.DB.DB()
	if err != nil {
		return downStatus(err, details)
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return downStatus(err, details)
	}
	return upStatus(details)
}

func (gateway *GormSettingsGateway) Name() string {
	return "postgres"
}
