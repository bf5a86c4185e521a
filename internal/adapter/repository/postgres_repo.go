package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github-value-tracker/internal/common"
	"github-value-tracker/internal/domain"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// StarSnapshot 某个仓库在某一天的 star 数，同一天只保留最后一次
type StarSnapshot struct {
	ID         uint      `gorm:"primaryKey"`
	FullName   string    `gorm:"size:255;not null;index:idx_star_snapshots_repo_time,priority:1;uniqueIndex:idx_star_snapshots_repo_day,priority:1"`
	Stars      int       `gorm:"not null"`
	CapturedAt time.Time `gorm:"not null;index:idx_star_snapshots_repo_time,priority:2"`
	CapturedOn time.Time `gorm:"type:date;uniqueIndex:idx_star_snapshots_repo_day,priority:2"`
}

// TableName 固定表名
func (StarSnapshot) TableName() string {
	return "star_snapshots"
}

// PostgresRepo 实现了 port.SnapshotStore 接口
type PostgresRepo struct {
	db *gorm.DB
}

// NewPostgresRepo 初始化数据库连接并自动迁移表结构
func NewPostgresRepo(dsn string) (*PostgresRepo, error) {
	// 1. 连接数据库
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, common.WrapError(common.ErrCodeDatabase, "连接数据库失败", err)
	}

	// 2. 自动迁移，star_snapshots 表不存在时创建
	if err := db.AutoMigrate(&StarSnapshot{}); err != nil {
		return nil, common.WrapError(common.ErrCodeDatabase, "数据库迁移失败", err)
	}

	return &PostgresRepo{db: db}, nil
}

// RecordStars 写入当天的快照，full_name 统一转小写
// 同一仓库同一天 (UTC) 重复记录时覆盖，而不是追加新行
func (r *PostgresRepo) RecordStars(ctx context.Context, fullName string, stars int, at time.Time) error {
	at = at.UTC()
	snap := &StarSnapshot{
		FullName:   domain.CanonicalName(fullName),
		Stars:      stars,
		CapturedAt: at,
		CapturedOn: at.Truncate(24 * time.Hour),
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "full_name"}, {Name: "captured_on"}},
			DoUpdates: clause.AssignmentColumns([]string{"stars", "captured_at"}),
		}).
		Create(snap).Error
	if err != nil {
		return common.WrapError(common.ErrCodeDatabase, fmt.Sprintf("记录 %s 快照失败", fullName), err)
	}
	return nil
}

// StarsAsOf 返回 [notBefore, at] 内最近的一次快照；区间内没有快照时 ok 为 false
func (r *PostgresRepo) StarsAsOf(ctx context.Context, fullName string, notBefore, at time.Time) (int, bool, error) {
	var snap StarSnapshot
	err := r.db.WithContext(ctx).
		Where("full_name = ? AND captured_at >= ? AND captured_at <= ?", domain.CanonicalName(fullName), notBefore.UTC(), at.UTC()).
		Order("captured_at desc").
		First(&snap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, common.WrapError(common.ErrCodeDatabase, fmt.Sprintf("查询 %s 快照失败", fullName), err)
	}
	return snap.Stars, true, nil
}

// Prune 删除早于 before 的快照，返回删除条数
func (r *PostgresRepo) Prune(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("captured_at < ?", before.UTC()).Delete(&StarSnapshot{})
	if result.Error != nil {
		return 0, common.WrapError(common.ErrCodeDatabase, "清理快照失败", result.Error)
	}
	return result.RowsAffected, nil
}
