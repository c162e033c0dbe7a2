package store

import "context"

// Record is one raw row keyed by column name. Values are strings exactly as
// the backend returns them; Codec owns parsing and normalization.
type Record map[string]string

type FieldUpdate struct {
	Position int
	Field    string
	Value    string
}

// RecordStore is the tabular persistence contract. The backend is append
// oriented and has no transactions; positions identify rows and shift as
// rows are appended, so they must never be cached across writes.
type RecordStore interface {
	// ListAll returns every record in insertion order.
	ListAll(ctx context.Context) ([]Record, error)
	Append(ctx context.Context, rec Record) error
	// FindPosition resolves a key to its current row position.
	FindPosition(ctx context.Context, keyField, keyValue string) (int, error)
	UpdateField(ctx context.Context, position int, field, value string) error
	// UpdateFieldBatch applies all updates in one write. Best-effort: on
	// failure the caller cannot know which updates landed.
	UpdateFieldBatch(ctx context.Context, updates []FieldUpdate) error
}

// Wire schema. Column names match the legacy registration sheet so existing
// spreadsheets keep working; registrador is the one column this service
// added, appended last to preserve legacy column positions.
const (
	FieldTicketID       = "id_ticket"
	FieldPlatePrimary   = "placa_tracto"
	FieldPlateSecondary = "placa_carreta"
	FieldDriverName     = "chofer_nombre"
	FieldLicense        = "licencia"
	FieldCarrier        = "transporte"
	FieldOperationType  = "tipo_operacion"
	FieldDate           = "fecha_cita"
	FieldSlotName       = "hora_cita"
	FieldNote           = "observacion"
	FieldStatus         = "estado"
	FieldCreatedAt      = "creado_en"
	FieldRegistrarName  = "registrador"
)

// Columns is the canonical column order.
var Columns = []string{
	FieldTicketID,
	FieldPlatePrimary,
	FieldPlateSecondary,
	FieldDriverName,
	FieldLicense,
	FieldCarrier,
	FieldOperationType,
	FieldDate,
	FieldSlotName,
	FieldNote,
	FieldStatus,
	FieldCreatedAt,
	FieldRegistrarName,
}

// Row 1 holds the header; data starts at row 2. Every adapter follows this
// convention so positions derived from a ListAll index stay interchangeable.
const (
	HeaderRow    = 1
	DataStartRow = 2
)

// PositionOf converts a ListAll slice index to a store position.
func PositionOf(index int) int {
	return DataStartRow + index
}
