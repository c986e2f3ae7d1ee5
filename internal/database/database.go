package database

import (
	"fmt"

	"github.com/inerttila/inventory-hub/internal/config"
	"github.com/inerttila/inventory-hub/internal/inventory/entity"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open 建立数据库连接并配置连接池
// TranslateError 开启后唯一约束冲突可用 gorm.ErrDuplicatedKey 判定
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return db, nil
}

// migrationStep 一次增量迁移：只加不减，重复执行无副作用
type migrationStep struct {
	version     string
	description string
	statements  []string
}

// LegacyTenantID 早期单租户数据补填的占位租户
const LegacyTenantID = "migrated-legacy-data"

// tenantTables 所有带 user_id 的表，v1 迁移逐表补填
var tenantTables = []string{
	"categories", "brands", "currencies", "clients",
	"products", "final_products", "components",
}

func backfillStatements() []string {
	var stmts []string
	for _, table := range tenantTables {
		stmts = append(stmts,
			fmt.Sprintf(`UPDATE %s SET user_id = '%s' WHERE user_id IS NULL OR user_id = ''`, table, LegacyTenantID),
			fmt.Sprintf(`ALTER TABLE %s ALTER COLUMN user_id SET NOT NULL`, table),
		)
	}
	return stmts
}

var migrationSteps = []migrationStep{
	{
		version:     "v1",
		description: "backfill user_id on legacy single-tenant rows",
		statements:  backfillStatements(),
	},
	{
		version:     "v2",
		description: "date and apply_tvsh columns on final_products",
		statements: []string{
			`ALTER TABLE final_products ADD COLUMN IF NOT EXISTS date DATE`,
			`ALTER TABLE final_products ADD COLUMN IF NOT EXISTS apply_tvsh BOOLEAN NOT NULL DEFAULT true`,
		},
	},
	{
		version:     "v3",
		description: "component image column",
		statements: []string{
			`ALTER TABLE components ADD COLUMN IF NOT EXISTS image VARCHAR(256)`,
		},
	},
}

// Migrate 建表 + 增量迁移
// AutoMigrate 负责表结构对齐，migrationSteps 负责 AutoMigrate 做不了的数据订正
func Migrate(db *gorm.DB, log *zap.Logger) error {
	if err := db.AutoMigrate(
		&entity.Category{},
		&entity.Brand{},
		&entity.Currency{},
		&entity.Client{},
		&entity.Product{},
		&entity.FinalProduct{},
		&entity.Component{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, step := range migrationSteps {
		for _, sql := range step.statements {
			if err := db.Exec(sql).Error; err != nil {
				log.Warn("Migration SQL warning (may already be applied)",
					zap.String("version", step.version),
					zap.String("sql", sql),
					zap.Error(err))
			}
		}
		log.Info("Migration step applied",
			zap.String("version", step.version),
			zap.String("description", step.description))
	}

	return nil
}
