package generate

import "strings"

// inputSuffix is appended to a table's struct name to form the name of
// its insert-payload companion type.
const inputSuffix = "Input"

// StructName converts a table name to the exported struct name used in
// generated source: "customer_orders" → "CustomerOrders". Deterministic
// and idempotent on already-class-cased names.
func StructName(table string) string {
	return classCase(table)
}

// InputStructName returns the companion input-variant name for a table:
// "customer_orders" → "CustomerOrdersInput".
func InputStructName(table string) string {
	return classCase(table) + inputSuffix
}

// FieldName converts a column name to an exported Go field name using
// the same casing rule as StructName, so generated code is internally
// consistent.
func FieldName(column string) string {
	return classCase(column)
}

// classCase upper-camel-cases an identifier: each segment between
// underscores, hyphens, or spaces gets its first rune upper-cased,
// the rest is kept as-is.
func classCase(s string) string {
	var b strings.Builder
	for _, part := range strings.FieldsFunc(s, isSeparator) {
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
