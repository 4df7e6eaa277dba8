package entity

import "time"

// RelatorioTecnico snapshot de um relatório técnico de peritagem de unidade
// compressora, nas quatro etapas preenchidas pelo técnico em campo.
type RelatorioTecnico struct {
	ID              int64
	NumeroRelatorio string
	FilialID        int
	DataCriacao     time.Time

	Cliente     Cliente
	Responsavel Responsavel

	FormularioServico string
	TipoServico       string
	DescricaoServico  string
	DataRecebimento   *time.Time

	// Etapa 1: condição inicial
	CondicaoEncontrada string
	PlacaIdentificacao string
	Acoplamento        string
	AspectosRotores    string
	ValvulasAcopladas  string

	// Etapa 2: peritagem do subconjunto
	ParafusosPinos    string
	SuperficieVedacao string
	Engrenagens       string
	BicoInjetor       string
	Rolamentos        string
	AspectoOleo       string

	// Etapa 3: desmembrando a unidade compressora
	InterfDesmontagem string
	AspectoRotores    string
	AspectoCarcaca    string
	InterfMancais     string
	GaleriaHidraulica string

	// Etapa 4: relação de peças e serviços
	ServicosPropostos string
	PecasRecomendadas string

	// Fotos apontadas pelo técnico em cada etapa.
	AnexosEtapa1 []Anexo
	AnexosEtapa2 []Anexo
	AnexosEtapa3 []Anexo
	AnexosEtapa4 []Anexo

	TempoTrabalhoTotal     string
	TempoDeslocamentoTotal string
}

// Anexo foto ou documento apontado pelo técnico numa etapa do relatório.
// Os anexos são guardados como JSON na linha do relatório.
type Anexo struct {
	Nome      string `json:"nome"`
	Caminho   string `json:"caminho"`
	Descricao string `json:"descricao"`
}
