package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'user_role') THEN
			CREATE TYPE user_role AS ENUM ('user', 'manager', 'collector', 'admin');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'waste_category') THEN
			CREATE TYPE waste_category AS ENUM ('organic', 'recycle', 'nonRecycle');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'schedule_status') THEN
			CREATE TYPE schedule_status AS ENUM ('not-done', 'done');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'collection_status') THEN
			CREATE TYPE collection_status AS ENUM ('Pending', 'Approved', 'Rejected');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		username VARCHAR(64) NOT NULL,
		email VARCHAR(255) NOT NULL,
		password VARCHAR(255) NOT NULL,
		role user_role NOT NULL DEFAULT 'user',
		phone VARCHAR(32),
		address TEXT,
		nic VARCHAR(32),
		is_completed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uniq_users_username ON users (username);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uniq_users_email ON users (email);`,
	`CREATE INDEX IF NOT EXISTS idx_users_role ON users (role);`,
	`CREATE TABLE IF NOT EXISTS devices (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		waste_type waste_category NOT NULL,
		level_organic INTEGER NOT NULL CHECK (level_organic BETWEEN 0 AND 100),
		level_recycle INTEGER NOT NULL CHECK (level_recycle BETWEEN 0 AND 100),
		level_non_recycle INTEGER NOT NULL CHECK (level_non_recycle BETWEEN 0 AND 100),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uniq_devices_user_id ON devices (user_id);`,
	`CREATE TABLE IF NOT EXISTS trucks (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		brand VARCHAR(64) NOT NULL,
		number_plate VARCHAR(32) NOT NULL,
		capacity INTEGER NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uniq_trucks_number_plate ON trucks (number_plate);`,
	`CREATE TABLE IF NOT EXISTS schedules (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		time TIMESTAMPTZ NOT NULL,
		address TEXT NOT NULL,
		truck_number VARCHAR(32) NOT NULL,
		collector VARCHAR(64),
		special BOOLEAN NOT NULL DEFAULT FALSE,
		status schedule_status NOT NULL DEFAULT 'not-done',
		weight DOUBLE PRECISION,
		waste_type VARCHAR(64),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_schedules_status ON schedules (status);`,
	`CREATE INDEX IF NOT EXISTS idx_schedules_time ON schedules (time);`,
	`CREATE TABLE IF NOT EXISTS special_collections (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		waste_type VARCHAR(64) NOT NULL,
		choose_date TIMESTAMPTZ NOT NULL,
		waste_description TEXT NOT NULL,
		emergency_collection BOOLEAN NOT NULL DEFAULT FALSE,
		status collection_status NOT NULL DEFAULT 'Pending',
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_special_collections_user_id ON special_collections (user_id);`,
	`CREATE INDEX IF NOT EXISTS idx_special_collections_status ON special_collections (status);`,
	`CREATE OR REPLACE FUNCTION set_row_updated_at()
	RETURNS TRIGGER AS $$
	BEGIN
		NEW.updated_at = NOW();
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_users_updated_at') THEN
			CREATE TRIGGER trg_users_updated_at
				BEFORE UPDATE ON users
				FOR EACH ROW
				EXECUTE PROCEDURE set_row_updated_at();
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_devices_updated_at') THEN
			CREATE TRIGGER trg_devices_updated_at
				BEFORE UPDATE ON devices
				FOR EACH ROW
				EXECUTE PROCEDURE set_row_updated_at();
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_trucks_updated_at') THEN
			CREATE TRIGGER trg_trucks_updated_at
				BEFORE UPDATE ON trucks
				FOR EACH ROW
				EXECUTE PROCEDURE set_row_updated_at();
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_schedules_updated_at') THEN
			CREATE TRIGGER trg_schedules_updated_at
				BEFORE UPDATE ON schedules
				FOR EACH ROW
				EXECUTE PROCEDURE set_row_updated_at();
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_special_collections_updated_at') THEN
			CREATE TRIGGER trg_special_collections_updated_at
				BEFORE UPDATE ON special_collections
				FOR EACH ROW
				EXECUTE PROCEDURE set_row_updated_at();
		END IF;
	END
	$$;`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
