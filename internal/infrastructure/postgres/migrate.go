package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Esquema do licenciamento. A cadeia de cascata
// empresas -> licencas -> condicionantes -> notificacoes vive no banco
// (ON DELETE CASCADE); a deleção de empresa com licenças é barrada na
// aplicação antes de chegar aqui.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS empresas (
		id           UUID PRIMARY KEY,
		razao_social VARCHAR(200) NOT NULL,
		cnpj         VARCHAR(14)  NOT NULL UNIQUE,
		email        VARCHAR(120) NOT NULL DEFAULT '',
		endereco     TEXT         NOT NULL DEFAULT '',
		created_at   TIMESTAMPTZ  NOT NULL,
		updated_at   TIMESTAMPTZ  NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS licencas (
		id              UUID PRIMARY KEY,
		empresa_id      UUID NOT NULL REFERENCES empresas(id),
		tipo_licenca    VARCHAR(100) NOT NULL,
		numero_licenca  VARCHAR(50)  NOT NULL DEFAULT '',
		orgao_emissor   VARCHAR(100) NOT NULL DEFAULT 'IMA/AL',
		data_emissao    DATE,
		data_vencimento DATE NOT NULL,
		status          VARCHAR(20) NOT NULL DEFAULT 'ativa'
			CHECK (status IN ('ativa', 'vencida', 'cancelada')),
		observacoes     TEXT        NOT NULL DEFAULT '',
		created_at      TIMESTAMPTZ NOT NULL,
		updated_at      TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS condicionantes (
		id                     UUID PRIMARY KEY,
		licenca_id             UUID NOT NULL REFERENCES licencas(id) ON DELETE CASCADE,
		descricao              TEXT NOT NULL,
		prazo_dias             INTEGER,
		data_limite            DATE,
		status                 VARCHAR(20) NOT NULL DEFAULT 'pendente'
			CHECK (status IN ('pendente', 'cumprida', 'vencida')),
		responsavel            VARCHAR(100) NOT NULL DEFAULT '',
		observacoes            TEXT         NOT NULL DEFAULT '',
		data_envio_cumprimento DATE,
		comprovante_path       VARCHAR(255) NOT NULL DEFAULT '',
		created_at             TIMESTAMPTZ  NOT NULL,
		updated_at             TIMESTAMPTZ  NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS notificacoes (
		id                UUID PRIMARY KEY,
		condicionante_id  UUID NOT NULL REFERENCES condicionantes(id) ON DELETE CASCADE,
		tipo              VARCHAR(20) NOT NULL CHECK (tipo IN ('email', 'calendar')),
		data_envio        TIMESTAMPTZ,
		status            VARCHAR(20) NOT NULL DEFAULT 'pendente'
			CHECK (status IN ('pendente', 'enviada', 'erro')),
		google_event_id   VARCHAR(100) NOT NULL DEFAULT '',
		mensagem          TEXT         NOT NULL DEFAULT '',
		created_at        TIMESTAMPTZ  NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS usuarios (
		id            UUID PRIMARY KEY,
		email         VARCHAR(120) NOT NULL UNIQUE,
		password_hash VARCHAR(200) NOT NULL,
		nome_completo VARCHAR(200) NOT NULL DEFAULT '',
		role          VARCHAR(20)  NOT NULL DEFAULT 'visualizador',
		created_at    TIMESTAMPTZ  NOT NULL,
		updated_at    TIMESTAMPTZ  NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_licencas_empresa ON licencas(empresa_id)`,
	`CREATE INDEX IF NOT EXISTS idx_licencas_vencimento ON licencas(data_vencimento) WHERE status = 'ativa'`,
	`CREATE INDEX IF NOT EXISTS idx_condicionantes_licenca ON condicionantes(licenca_id)`,
	`CREATE INDEX IF NOT EXISTS idx_condicionantes_limite ON condicionantes(data_limite) WHERE status = 'pendente'`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_notificacoes_calendar
		ON notificacoes(condicionante_id) WHERE tipo = 'calendar'`,
}

// Migrate aplica o esquema no arranque. Idempotente.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("aplicar migração: %w", err)
		}
	}
	return nil
}
