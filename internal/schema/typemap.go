package schema

import "strings"

// defaultTypeMapping maps lower-cased source type spellings to the canonical
// type expected on the target side. Source types come from CRM describes
// (string, picklist, currency, ...) and relational exports (nvarchar, money,
// datetime2, ...); targets speak warehouse types (varchar, decimal, ...).
var defaultTypeMapping = map[string]string{
	// CRM / Salesforce field types
	"string": "varchar", "textarea": "varchar", "double": "float",
	"int": "integer", "integer": "integer", "datetime": "timestamp",
	"date": "date", "boolean": "boolean", "currency": "decimal",
	"id": "varchar", "phone": "varchar", "url": "varchar",
	"email": "varchar", "picklist": "varchar", "multipicklist": "varchar",
	"percent": "decimal", "long": "bigint",

	// SQL Server / relational types
	"nvarchar": "varchar", "nchar": "varchar",
	"varchar(max)": "varchar", "nvarchar(max)": "varchar",
	"datetime2": "timestamp", "datetimeoffset": "varchar",
	"smallint": "integer", "tinyint": "integer", "real": "float",
	"money": "decimal", "smallmoney": "decimal",
	"uniqueidentifier": "varchar", "text": "varchar", "ntext": "varchar",
	"image": "varchar",
}

// DefaultTypeMapping returns a copy of the built-in type table. Callers may
// merge their own overrides without affecting other engines.
func DefaultTypeMapping() map[string]string {
	m := make(map[string]string, len(defaultTypeMapping))
	for k, v := range defaultTypeMapping {
		m[k] = v
	}
	return m
}

// CanonicalType resolves the expected target type for a raw source type.
// Lookup is case-insensitive; unknown types pass through lower-cased.
// Whitespace is significant here; readers trim raw types on ingest.
func CanonicalType(mapping map[string]string, rawType string) string {
	key := strings.ToLower(rawType)
	if expected, ok := mapping[key]; ok {
		return expected
	}
	return key
}
