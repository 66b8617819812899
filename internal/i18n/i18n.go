// Package i18n holds the pt-BR message catalog used by API responses and
// printed documents.
package i18n

import (
	"sync"
	"time"
)

// Locale is the only locale the service prints in.
const Locale = "pt-BR"

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator resolves message keys to pt-BR text.
type Translator struct {
	messages map[string]string
}

// NewTranslator creates a translator with the built-in catalog.
func NewTranslator() *Translator {
	return &Translator{messages: getDefaultMessages()}
}

// GetTranslator returns the shared translator.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the message for key, or the key itself when unknown.
func (t *Translator) Translate(key string) string {
	if msg, ok := t.messages[key]; ok {
		return msg
	}
	return key
}

// T translates key with the shared translator.
func T(key string) string {
	return GetTranslator().Translate(key)
}

var monthGenitive = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// MonthName returns the lower-case month name as written in a date line
// ("14 de março de 2026").
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthGenitive[m-1]
}

// LongDate formats t as "14 de março de 2026".
func LongDate(t time.Time) string {
	return t.Format("02") + " de " + MonthName(t.Month()) + " de " + t.Format("2006")
}

func getDefaultMessages() map[string]string {
	return map[string]string{
		// Errors
		ErrKeyInvalidRequest:       "Requisição inválida",
		ErrKeyInvalidRequestBody:   "Corpo da requisição inválido",
		ErrKeyInternalError:        "Ocorreu um erro inesperado",
		ErrKeyUnauthorized:         "Não autorizado",
		ErrKeyAPIKeyRequired:       "Chave de API é obrigatória",
		ErrKeyInvalidAPIKey:        "Chave de API inválida",
		ErrKeyNotFound:             "Não encontrado",
		ErrKeyRateLimitExceeded:    "Muitas requisições, tente novamente mais tarde",
		ErrKeyInvalidPrintAction:   "print_action: use order_slip ou invoice",
		ErrKeyInvalidFormat:        "format: use html ou pdf",
		ErrKeyInvalidOffset:        "offset: deve ser um inteiro não negativo",
		ErrKeyInvalidConfiguration: "Configuração de impressão inválida",
		ErrKeyInvalidSettings:      "Configurações inválidas",
		ErrKeySettingsUnavailable:  "Configurações indisponíveis no momento",
		ErrKeyRenderFailed:         "Falha ao gerar o documento",
		ErrKeyTimeout:              "Tempo limite excedido ao gerar o documento",

		// Success
		SuccessKeySettingsSaved:  "Configurações salvas",
		SuccessKeyPreviewCreated: "Pré-visualização gerada",

		// Printed documents
		DocLabelsTitle:      "Etiquetas",
		DocEmptySlot:        "vazio",
		DocOrderNumber:      "PEDIDO #%d",
		DocDeclaredValue:    "Valor declarado:",
		DocReceiver:         "Recebedor:",
		DocSignature:        "Assinatura:",
		DocDocument:         "Documento:",
		DocSender:           "Remetente:",
		DocRecipient:        "Destinatário",
		DocLocalPickup:      "retirada",
		DocImpressoFechado:  "IMPRESSO FECHADO",
		DocImpressoAberto:   "Pode ser aberto pela ECT",
		DocCarta:            "CARTA",
		DocCorreios:         "CORREIOS",
		DocDeclarationTitle: "Declaração de Conteúdo",
		DocSenderHeading:    "REMETENTE:",
		DocRecipientHeading: "DESTINATÁRIO:",
		DocTaxID:            "CPF/CNPJ:",
		DocAddress:          "ENDEREÇO:",
		DocCityState:        "CIDADE/UF:",
		DocPostcode:         "CEP:",
		DocGoods:            "IDENTIFICAÇÃO DOS BENS",
		DocItem:             "ITEM",
		DocDescription:      "DISCRIMINAÇÃO DO CONTEÚDO",
		DocQuantity:         "QTD.",
		DocValue:            "VALOR",
		DocTotals:           "TOTAIS",
		DocTotalWeight:      "PESO TOTAL",
		DocDeclaration:      "DECLARAÇÃO",
		DocDeclarationText1: "Declaro que não me enquadro no conceito de contribuinte previsto no art. 4º da Lei Complementar nº 87/1996, " +
			"uma vez que não realizo, com habitualidade ou em volume que caracterize intuito comercial, operações de circulação de mercadoria, " +
			"ainda que se iniciem no exterior, ou estou dispensado da emissão da nota fiscal por força da legislação tributária vigente, " +
			"responsabilizando-me, nos termos da lei e a quem de direito, por informações inverídicas.",
		DocDeclarationText2: "Declaro ainda que não estou postando conteúdo inflamável, explosivo, causador de combustão espontânea, " +
			"tóxico, corrosivo, gás ou qualquer outro conteúdo que constitua perigo, conforme o art. 13 da Lei Postal nº 6.538/78.",
		DocDeclarantSignature: "Assinatura do Declarante/Remetente",
		DocAttention:          "Atenção: O declarante/remetente é responsável exclusivamente pelas informações declaradas.",
		DocNotes:              "OBSERVAÇÕES:",
		DocNote1: "É Contribuinte de ICMS qualquer pessoa física ou jurídica, que realize, com habitualidade ou em volume " +
			"que caracterize intuito comercial, operações de circulação de mercadoria ou prestações de serviços de " +
			"transportes interestadual e intermunicipal e de comunicação, ainda que as operações e prestações se " +
			"iniciem no exterior (Lei Complementar nº 87/96 Art. 4º).",
		DocNote2: "Constitui crime contra a ordem tributária suprimir ou reduzir tributo, ou contribuição social e " +
			"qualquer acessório: quando negar ou deixar de fornecer, quando obrigatório, nota fiscal ou documento " +
			"equivalente, relativa a venda de mercadoria ou prestação de serviço, efetivamente realizada, ou fornecê-la " +
			"em desacordo com a legislação. Sob pena de reclusão de 2 (dois) a 5 (anos), e multa (Lei 8.137/90 Art. 1º, V).",
	}
}
