package dto

// TotaisResumo contadores gerais do dashboard.
type TotaisResumo struct {
	Empresas       int `json:"empresas"`
	Licencas       int `json:"licencas"`
	Condicionantes int `json:"condicionantes"`
}

// AlertasResumo itens que exigem atenção nos próximos 30 dias.
type AlertasResumo struct {
	LicencasVencimento       int `json:"licencas_vencimento"`
	CondicionantesVencimento int `json:"condicionantes_vencimento"`
	CondicionantesVencidas   int `json:"condicionantes_vencidas"`
}

// ProximaAcaoResponse condicionante urgente com razão social e tipo de
// licença achatados para o widget do dashboard.
type ProximaAcaoResponse struct {
	CondicionanteResponse
	Empresa     string `json:"empresa"`
	TipoLicenca string `json:"tipo_licenca"`
}

// ResumoResponse resposta de GET /api/dashboard/resumo.
type ResumoResponse struct {
	Totais        TotaisResumo          `json:"totais"`
	Alertas       AlertasResumo         `json:"alertas"`
	ProximasAcoes []ProximaAcaoResponse `json:"proximas_acoes"`
}
