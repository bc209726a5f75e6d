package chat

import (
	"fmt"

	domain "github.com/Speakmu/whatsapp-bot-agendamento/internal/domain/chat"
)

// Nomes das operações do catálogo, tais como o colaborador os devolve.
const (
	ToolAgendar   = "agendar_atendimento"
	ToolReagendar = "reagendar_atendimento"
)

// SystemPrompt monta as instruções de sistema das personas Sofia (casa) e
// Júlio (empresa), com saudação personalizada quando o cliente já é
// conhecido.
func SystemPrompt(nomeCliente string) string {
	saudacao := ""
	if nomeCliente != "" {
		saudacao = fmt.Sprintf(
			"IMPORTANTE: Você identificou o cliente como '%s' em um contato anterior. "+
				"Na primeira interação, comece com uma saudação personalizada, como "+
				"'Bem-vindo de volta, %s!', e só então siga com o FLUXO OBRIGATÓRIO.\n",
			nomeCliente, nomeCliente,
		)
	}

	return `Você é o AGENTE DE ATENDIMENTO (Persona: Sofia para Casa, Júlio para Empresa) da Seu Suporte Tech.
` + saudacao + `
**MISSÃO CRÍTICA:** Coletar dados para a função ` + "`agendar_atendimento`" + `.
**REGRA DE OURO:** Use o histórico para preencher argumentos. NUNCA repita perguntas.

# --- 1. FLUXO INICIAL (ROTEAMENTO) ---
1. **PERGUNTA 1:** "Para qual cidade você gostaria do atendimento?"
2. **ANÁLISE:**
   - Se for São Sebastião do Paraíso (ou Paraíso, ignorando maiúsculas e acentos): fluxo **PRESENCIAL**.
   - Se for outra cidade: fluxo **REMOTO**.
3. Informe o tipo de atendimento sem repetir o nome da cidade.
4. **PERGUNTA 2:** "O atendimento é para sua casa ou empresa?" Empresa usa a persona Júlio; casa usa Sofia.

# --- 2. REGRAS DE COLETA ---
**FLUXO PRESENCIAL:** pergunte serviço, nome, telefone, endereço, data e horário, modelo do equipamento.
Regra de data: apenas dias úteis (segunda a sexta).
**FLUXO REMOTO:** pergunte apenas serviço, nome e telefone.
PROIBIDO perguntar data e horário: preencha ` + "`data_hora`" + ` com "Fila".
PROIBIDO perguntar endereço: preencha ` + "`endereco`" + ` com "Remoto" ou o nome da cidade.
Sempre olhe o histórico antes de perguntar a cidade: ela é respondida no início da conversa.

# --- 3. ARGUMENTOS DA FUNÇÃO (preencha TODOS antes de chamar) ---
- tipo_cliente: Casa/Empresa
- nome_cliente: nome completo (use o histórico se disponível)
- servico: descrição do problema, apenas registre, não marque como resolvido
- telefone: número de contato
- modelo_equipamento: modelo do equipamento
- cidade_atendimento: cidade informada no início, não pergunte novamente
- data_hora: data/hora solicitada se presencial; "Fila" se remoto
- endereco: endereço físico se presencial; "Remoto" se remoto

# --- 4. REAGENDAMENTO ---
Se o cliente quiser reagendar ou cancelar, chame ` + "`reagendar_atendimento`" + ` imediatamente.
Peça apenas a nova data ou o motivo; ignore o fluxo acima.

# --- 5. FINALIZAÇÃO ---
Chame ` + "`agendar_atendimento`" + ` apenas com os 7 argumentos obrigatórios preenchidos.
Após sucesso ('AGENDAMENTO_SUCESSO...'), despeça-se e encerre, sem novas perguntas.`
}

// ToolCatalog declara as duas operações chamáveis e seus parâmetros,
// exatamente o contrato que o colaborador de raciocínio enxerga.
func ToolCatalog() []domain.ToolSpec {
	return []domain.ToolSpec{
		{
			Name:        ToolAgendar,
			Description: "Agenda um novo atendimento de suporte técnico, após coletar todas as informações OBRIGATÓRIAS do cliente.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"tipo_cliente":       map[string]any{"type": "string", "description": "Se o atendimento é para 'casa' ou para a 'empresa'."},
					"nome_cliente":       map[string]any{"type": "string", "description": "Nome completo do cliente."},
					"servico":            map[string]any{"type": "string", "description": "Breve descrição do serviço solicitado (ex: 'Conserto de notebook')."},
					"data_hora":          map[string]any{"type": "string", "description": "Data e horário exatos solicitados."},
					"telefone":           map[string]any{"type": "string", "description": "Telefone de contato do cliente."},
					"endereco":           map[string]any{"type": "string", "description": "Endereço completo para o atendimento."},
					"cidade_atendimento": map[string]any{"type": "string", "description": "A cidade para a qual o atendimento está sendo solicitado."},
					"modelo_equipamento": map[string]any{"type": "string", "description": "Modelo do equipamento (ex: 'Dell Inspiron 5000'). Use 'Não Informado' se o cliente não souber."},
					"observacao":         map[string]any{"type": "string", "description": "Observação adicional do cliente. Use 'Nenhuma' se não houver."},
				},
				"required": []string{"tipo_cliente", "nome_cliente", "servico", "data_hora", "telefone", "endereco", "cidade_atendimento"},
			},
		},
		{
			Name:        ToolReagendar,
			Description: "Usar SOMENTE quando o cliente solicitar modificar ou cancelar um agendamento existente.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"acao":                map[string]any{"type": "string", "enum": []string{"reagendar", "cancelar"}, "description": "Ação desejada: 'reagendar' ou 'cancelar'."},
					"nova_data_hora":      map[string]any{"type": "string", "description": "A nova data e horário. OBRIGATÓRIO se 'acao' for 'reagendar'."},
					"motivo_cancelamento": map[string]any{"type": "string", "description": "O motivo do cancelamento, se 'acao' for 'cancelar'."},
				},
				"required": []string{"acao"},
			},
		},
	}
}
