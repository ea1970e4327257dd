package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ecogestor/licenciamento-api/internal/domain/entity"
	"github.com/ecogestor/licenciamento-api/internal/domain/repository"
)

// Garante que CondicionanteRepo implementa repository.CondicionanteRepository.
var _ repository.CondicionanteRepository = (*CondicionanteRepo)(nil)

// CondicionanteRepo implementação do porto CondicionanteRepository sobre PostgreSQL.
type CondicionanteRepo struct {
	db dbtx
}

// NewCondicionanteRepository constrói o adaptador de persistência para condicionantes.
func NewCondicionanteRepository(db dbtx) *CondicionanteRepo {
	return &CondicionanteRepo{db: db}
}

const condicionanteCols = `c.id, c.licenca_id, c.descricao, c.prazo_dias, c.data_limite,
	c.status, c.responsavel, c.observacoes, c.data_envio_cumprimento, c.comprovante_path,
	c.created_at, c.updated_at`

const condicionanteJoinCols = condicionanteCols + `,
	l.id, l.empresa_id, l.tipo_licenca, l.numero_licenca, l.orgao_emissor,
	l.data_emissao, l.data_vencimento, l.status, l.observacoes, l.created_at, l.updated_at,
	e.id, e.razao_social, e.cnpj, e.email, e.endereco, e.created_at, e.updated_at`

const condicionanteJoin = `
	FROM condicionantes c
	JOIN licencas l ON l.id = c.licenca_id
	JOIN empresas e ON e.id = l.empresa_id`

// Ordenação canônica: data limite ascendente, NULLs por último,
// desempate pela ordem de criação.
const ordemCanonica = ` ORDER BY c.data_limite ASC NULLS LAST, c.created_at ASC, c.id ASC`

// Create persiste uma nova condicionante.
func (r *CondicionanteRepo) Create(c *entity.Condicionante) error {
	query := `
		INSERT INTO condicionantes (id, licenca_id, descricao, prazo_dias, data_limite,
			status, responsavel, observacoes, data_envio_cumprimento, comprovante_path,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(context.Background(), query,
		c.ID, c.LicencaID, c.Descricao, c.PrazoDias, c.DataLimite,
		c.Status, c.Responsavel, c.Observacoes, c.DataEnvioCumprimento, c.ComprovantePath,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert condicionante: %w", err)
	}
	return nil
}

// GetByID obtém uma condicionante por ID. Devolve (nil, nil) se não existir.
func (r *CondicionanteRepo) GetByID(id string) (*entity.Condicionante, error) {
	query := `SELECT ` + condicionanteCols + ` FROM condicionantes c WHERE c.id = $1`
	var c entity.Condicionante
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.LicencaID, &c.Descricao, &c.PrazoDias, &c.DataLimite,
		&c.Status, &c.Responsavel, &c.Observacoes, &c.DataEnvioCumprimento, &c.ComprovantePath,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get condicionante: %w", err)
	}
	return &c, nil
}

// GetComLicenca obtém a condicionante com licença e empresa embutidas.
func (r *CondicionanteRepo) GetComLicenca(id string) (*repository.CondicionanteComLicenca, error) {
	query := `SELECT ` + condicionanteJoinCols + condicionanteJoin + ` WHERE c.id = $1`
	rows, err := r.db.Query(context.Background(), query, id)
	if err != nil {
		return nil, fmt.Errorf("get condicionante com licença: %w", err)
	}
	list, err := scanCondicionantesComLicenca(rows)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// Update atualiza uma condicionante existente.
func (r *CondicionanteRepo) Update(c *entity.Condicionante) error {
	query := `
		UPDATE condicionantes SET descricao = $2, prazo_dias = $3, data_limite = $4,
			status = $5, responsavel = $6, observacoes = $7, data_envio_cumprimento = $8,
			comprovante_path = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		c.ID, c.Descricao, c.PrazoDias, c.DataLimite,
		c.Status, c.Responsavel, c.Observacoes, c.DataEnvioCumprimento,
		c.ComprovantePath, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update condicionante: %w", err)
	}
	return nil
}

// Delete remove a condicionante; notificações caem via cascade.
func (r *CondicionanteRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM condicionantes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete condicionante: %w", err)
	}
	return nil
}

// List devolve condicionantes com licença e empresa, aplicando filtros.
func (r *CondicionanteRepo) List(filtro repository.CondicionanteFiltro) ([]*repository.CondicionanteComLicenca, error) {
	query := `SELECT ` + condicionanteJoinCols + condicionanteJoin + `
		WHERE ($1 = '' OR c.licenca_id::text = $1)
		  AND ($2 = '' OR c.status = $2)` + ordemCanonica
	rows, err := r.db.Query(context.Background(), query, filtro.LicencaID, filtro.Status)
	if err != nil {
		return nil, fmt.Errorf("list condicionantes: %w", err)
	}
	return scanCondicionantesComLicenca(rows)
}

// ListByLicenca devolve as condicionantes de uma licença, na ordenação canônica.
func (r *CondicionanteRepo) ListByLicenca(licencaID string) ([]*entity.Condicionante, error) {
	query := `SELECT ` + condicionanteCols + ` FROM condicionantes c WHERE c.licenca_id = $1` + ordemCanonica
	rows, err := r.db.Query(context.Background(), query, licencaID)
	if err != nil {
		return nil, fmt.Errorf("list condicionantes da licença: %w", err)
	}
	defer rows.Close()

	var list []*entity.Condicionante
	for rows.Next() {
		var c entity.Condicionante
		if err := rows.Scan(
			&c.ID, &c.LicencaID, &c.Descricao, &c.PrazoDias, &c.DataLimite,
			&c.Status, &c.Responsavel, &c.Observacoes, &c.DataEnvioCumprimento, &c.ComprovantePath,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan condicionante: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// ListVencimento devolve condicionantes pendentes com data limite até a data.
func (r *CondicionanteRepo) ListVencimento(ate time.Time) ([]*repository.CondicionanteComLicenca, error) {
	query := `SELECT ` + condicionanteJoinCols + condicionanteJoin + `
		WHERE c.status = 'pendente' AND c.data_limite <= $1` + ordemCanonica
	rows, err := r.db.Query(context.Background(), query, ate)
	if err != nil {
		return nil, fmt.Errorf("list condicionantes por vencer: %w", err)
	}
	return scanCondicionantesComLicenca(rows)
}

// ListPendentesComDataLimite devolve as pendentes com data limite (universo do sync).
func (r *CondicionanteRepo) ListPendentesComDataLimite() ([]*repository.CondicionanteComLicenca, error) {
	query := `SELECT ` + condicionanteJoinCols + condicionanteJoin + `
		WHERE c.status = 'pendente' AND c.data_limite IS NOT NULL` + ordemCanonica
	rows, err := r.db.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list condicionantes pendentes: %w", err)
	}
	return scanCondicionantesComLicenca(rows)
}

func scanCondicionantesComLicenca(rows pgx.Rows) ([]*repository.CondicionanteComLicenca, error) {
	defer rows.Close()

	var list []*repository.CondicionanteComLicenca
	for rows.Next() {
		var cl repository.CondicionanteComLicenca
		c := &cl.Condicionante
		l := &cl.Licenca
		e := &cl.Empresa
		if err := rows.Scan(
			&c.ID, &c.LicencaID, &c.Descricao, &c.PrazoDias, &c.DataLimite,
			&c.Status, &c.Responsavel, &c.Observacoes, &c.DataEnvioCumprimento, &c.ComprovantePath,
			&c.CreatedAt, &c.UpdatedAt,
			&l.ID, &l.EmpresaID, &l.TipoLicenca, &l.NumeroLicenca, &l.OrgaoEmissor,
			&l.DataEmissao, &l.DataVencimento, &l.Status, &l.Observacoes, &l.CreatedAt, &l.UpdatedAt,
			&e.ID, &e.RazaoSocial, &e.CNPJ, &e.Email, &e.Endereco, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan condicionante com licença: %w", err)
		}
		list = append(list, &cl)
	}
	return list, rows.Err()
}
