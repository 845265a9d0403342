package infra

import (
	"fmt"

	"sistemagestion/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies idempotent SQL patches that GORM
// cannot express (partial indexes).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations creates / updates the schema. Also used by integration tests
// against a throwaway container.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.Cliente{},
		&model.Proveedor{},
		&model.Cheque{},
		&model.Movimiento{},
		&model.Pago{},
		&model.Compra{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot express.
// Each statement is guarded so re-running on an already-patched DB is a no-op.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// Partial index for the cheque expiry cron: only unused cheques matter.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_cheques_vencimiento_disponibles') THEN
		    CREATE INDEX idx_cheques_vencimiento_disponibles
		        ON cheques (fecha_vencimiento)
		        WHERE utilizado = false;
		  END IF;
		END $$`,
		// A movement belongs to exactly one counterparty.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_movimientos_contraparte') THEN
		    ALTER TABLE movimientos
		      ADD CONSTRAINT chk_movimientos_contraparte
		      CHECK ((cliente_id IS NULL) <> (proveedor_id IS NULL));
		  END IF;
		END $$`,
		// The running balance can never go negative.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_clientes_saldo_no_negativo') THEN
		    ALTER TABLE clientes
		      ADD CONSTRAINT chk_clientes_saldo_no_negativo CHECK (saldo >= 0);
		  END IF;
		END $$`,
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_proveedores_saldo_no_negativo') THEN
		    ALTER TABLE proveedores
		      ADD CONSTRAINT chk_proveedores_saldo_no_negativo CHECK (saldo >= 0);
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
