package i18n

// Error message keys.
const (
	ErrKeyInvalidRequest       = "error.invalid_request"
	ErrKeyInvalidRequestBody   = "error.invalid_request_body"
	ErrKeyInternalError        = "error.internal_error"
	ErrKeyUnauthorized         = "error.unauthorized"
	ErrKeyAPIKeyRequired       = "error.api_key_required"
	ErrKeyInvalidAPIKey        = "error.invalid_api_key"
	ErrKeyNotFound             = "error.not_found"
	ErrKeyRateLimitExceeded    = "error.rate_limit_exceeded"
	ErrKeyInvalidPrintAction   = "error.validation.print_action"
	ErrKeyInvalidFormat        = "error.validation.format"
	ErrKeyInvalidOffset        = "error.validation.offset"
	ErrKeyInvalidConfiguration = "error.invalid_configuration"
	ErrKeyInvalidSettings      = "error.invalid_settings"
	ErrKeySettingsUnavailable  = "error.settings_unavailable"
	ErrKeyRenderFailed         = "error.render_failed"
	ErrKeyTimeout              = "error.timeout"
)

// Success message keys.
const (
	SuccessKeySettingsSaved  = "success.settings_saved"
	SuccessKeyPreviewCreated = "success.preview_created"
)

// Printed document text.
const (
	DocLabelsTitle        = "doc.labels.title"
	DocEmptySlot          = "doc.empty_slot"
	DocOrderNumber        = "doc.order_number"
	DocDeclaredValue      = "doc.declared_value"
	DocReceiver           = "doc.receiver"
	DocSignature          = "doc.signature"
	DocDocument           = "doc.document"
	DocSender             = "doc.sender"
	DocRecipient          = "doc.recipient"
	DocLocalPickup        = "doc.shipping.local_pickup"
	DocImpressoFechado    = "doc.shipping.impresso_fechado"
	DocImpressoAberto     = "doc.shipping.impresso_aberto"
	DocCarta              = "doc.shipping.carta"
	DocCorreios           = "doc.shipping.correios"
	DocDeclarationTitle   = "doc.declaration.title"
	DocSenderHeading      = "doc.declaration.sender"
	DocRecipientHeading   = "doc.declaration.recipient"
	DocTaxID              = "doc.declaration.tax_id"
	DocAddress            = "doc.declaration.address"
	DocCityState          = "doc.declaration.city_state"
	DocPostcode           = "doc.declaration.postcode"
	DocGoods              = "doc.declaration.goods"
	DocItem               = "doc.declaration.item"
	DocDescription        = "doc.declaration.description"
	DocQuantity           = "doc.declaration.quantity"
	DocValue              = "doc.declaration.value"
	DocTotals             = "doc.declaration.totals"
	DocTotalWeight        = "doc.declaration.total_weight"
	DocDeclaration        = "doc.declaration.heading"
	DocDeclarationText1   = "doc.declaration.text_1"
	DocDeclarationText2   = "doc.declaration.text_2"
	DocDeclarantSignature = "doc.declaration.signature"
	DocAttention          = "doc.declaration.attention"
	DocNotes              = "doc.declaration.notes"
	DocNote1              = "doc.declaration.note_1"
	DocNote2              = "doc.declaration.note_2"
)
