package entity

import "time"

// Status possíveis de uma condicionante.
const (
	CondicionantePendente = "pendente"
	CondicionanteCumprida = "cumprida"
	CondicionanteVencida  = "vencida"
)

// Condicionante é uma obrigação atrelada a uma licença, com prazo próprio.
// O prazo pode ser informado como data absoluta (DataLimite) ou como
// deslocamento em dias (PrazoDias) a partir da emissão da licença.
type Condicionante struct {
	ID                   string
	LicencaID            string
	Descricao            string
	PrazoDias            *int       // prazo em dias (ex: 120, 30)
	DataLimite           *time.Time // data limite calculada ou informada
	Status               string     // ver constantes Condicionante*
	Responsavel          string
	Observacoes          string
	DataEnvioCumprimento *time.Time
	ComprovantePath      string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// CalcularDataLimite deriva DataLimite a partir de PrazoDias: base + prazo.
// A base é a data de emissão da licença; se ausente, hoje.
// Sem PrazoDias a data limite existente é preservada.
func (c *Condicionante) CalcularDataLimite(base *time.Time, hoje time.Time) {
	if c.PrazoDias == nil {
		return
	}
	b := hoje
	if base != nil {
		b = *base
	}
	limite := date(b).AddDate(0, 0, *c.PrazoDias)
	c.DataLimite = &limite
}

// DiasParaVencimento calcula quantos dias faltam para a data limite.
// Devolve nil quando a condicionante não tem data limite.
func (c *Condicionante) DiasParaVencimento(hoje time.Time) *int {
	if c.DataLimite == nil {
		return nil
	}
	d := diasEntre(hoje, *c.DataLimite)
	return &d
}
