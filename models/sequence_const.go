package models

// NumberStyle формат регистрационного номера
type NumberStyle string

const (
	// NumberStyleCompact {PREFIX}{YY}{NNN}, например C25001
	NumberStyleCompact NumberStyle = "compact"
	// NumberStyleDashed {PREFIX}-{YY}-{NNNN}, например COMP-25-0001
	NumberStyleDashed NumberStyle = "dashed"
)

// NumberFamily параметры нумерации для семейства записей
type NumberFamily struct {
	Prefix    string
	Style     NumberStyle
	TableName string
}

var (
	NumberFamilyCAR           = NumberFamily{Prefix: "C", Style: NumberStyleCompact, TableName: "tickets"}
	NumberFamilyIO            = NumberFamily{Prefix: "IO", Style: NumberStyleCompact, TableName: "tickets"}
	NumberFamilyAuditPlan     = NumberFamily{Prefix: "AP", Style: NumberStyleCompact, TableName: "audit_plans"}
	NumberFamilyExternalAudit = NumberFamily{Prefix: "EXT", Style: NumberStyleDashed, TableName: "external_audits"}
	NumberFamilyCertificate   = NumberFamily{Prefix: "CERT", Style: NumberStyleDashed, TableName: "certificates"}
	NumberFamilyDocument      = NumberFamily{Prefix: "DOC", Style: NumberStyleDashed, TableName: "documents"}
	NumberFamilyComplaint     = NumberFamily{Prefix: "COMP", Style: NumberStyleDashed, TableName: "complaints"}
)

// TicketNumberFamily семейство нумерации по виду запроса
func TicketNumberFamily(kind TicketKind) NumberFamily {
	if kind == TicketKindIO {
		return NumberFamilyIO
	}
	return NumberFamilyCAR
}
