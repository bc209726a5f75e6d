package models

import "time"

// Appointment é a linha de agendamento no backend Postgres do registro.
// Espelha as 11 colunas da planilha mais o canal (a aba).
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Channel string `gorm:"size:20;index" json:"channel"`

	WAID               string `gorm:"size:30;index" json:"wa_id"`
	TipoCliente        string `gorm:"size:20" json:"tipo_cliente"`
	NomeCliente        string `gorm:"size:100" json:"nome_cliente"`
	Servico            string `gorm:"size:255" json:"servico"`
	DataHora           string `gorm:"size:20" json:"data_hora"`
	Telefone           string `gorm:"size:20" json:"telefone"`
	Endereco           string `gorm:"size:255" json:"endereco"`
	ModeloEquipamento  string `gorm:"size:100" json:"modelo_equipamento"`
	Observacao         string `gorm:"size:255" json:"observacao"`
	Status             string `gorm:"size:20;default:'PENDENTE'" json:"status"`
	MotivoCancelamento string `gorm:"size:255" json:"motivo_cancelamento"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
