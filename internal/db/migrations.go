package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(16) NOT NULL DEFAULT 'user',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_users_email ON users (LOWER(email));`,
	`CREATE TABLE IF NOT EXISTS clients (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(255) NOT NULL,
		cnpj VARCHAR(18) NOT NULL,
		street VARCHAR(255) NOT NULL DEFAULT '',
		number VARCHAR(32) NOT NULL DEFAULT '',
		neighborhood VARCHAR(128) NOT NULL DEFAULT '',
		cep VARCHAR(9) NOT NULL DEFAULT '',
		city VARCHAR(128) NOT NULL DEFAULT '',
		state VARCHAR(2) NOT NULL DEFAULT '',
		phone VARCHAR(32) NOT NULL DEFAULT '',
		whatsapp VARCHAR(32) NOT NULL DEFAULT '',
		email VARCHAR(255) NOT NULL DEFAULT '',
		contact_person VARCHAR(255) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_clients_name ON clients (name);`,
	`CREATE TABLE IF NOT EXISTS contracts (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		client_id UUID NOT NULL REFERENCES clients(id),
		title VARCHAR(255) NOT NULL,
		platform_contracted INT NOT NULL DEFAULT 0,
		platform_installed INT NOT NULL DEFAULT 0,
		elevator_contracted INT NOT NULL DEFAULT 0,
		elevator_installed INT NOT NULL DEFAULT 0,
		value NUMERIC(14,2) NOT NULL DEFAULT 0,
		start_date DATE,
		end_date DATE,
		installation_address TEXT NOT NULL DEFAULT '',
		estimated_installation_date DATE,
		status VARCHAR(40) NOT NULL DEFAULT 'Pendente',
		warranty_completion_date DATE,
		warranty_days INT,
		observations TEXT NOT NULL DEFAULT '',
		created_by UUID REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_client_id ON contracts (client_id);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_status ON contracts (status);`,
	`CREATE TABLE IF NOT EXISTS accounts_receivable (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		contract_id UUID NOT NULL REFERENCES contracts(id),
		invoice_number VARCHAR(64) NOT NULL DEFAULT '',
		value NUMERIC(14,2) NOT NULL DEFAULT 0,
		issue_date DATE,
		due_date DATE,
		status VARCHAR(16) NOT NULL DEFAULT 'Pendente',
		observations TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_accounts_receivable_contract ON accounts_receivable (contract_id);`,
	`CREATE INDEX IF NOT EXISTS idx_accounts_receivable_status ON accounts_receivable (status);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
