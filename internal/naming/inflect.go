package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
	"github.com/jinzhu/inflection"
)

// CamelCase converts a word to StudlyCase ("invoice_item" -> "InvoiceItem").
// Words split on "_", "-" and spaces; only their first letter changes, so acronyms
// survive ("APIKey" stays "APIKey").
func CamelCase(s string) string {
	words := strings.FieldsFunc(s, func(c rune) bool {
		return c == '_' || c == '-' || unicode.IsSpace(c)
	})

	var b strings.Builder
	b.Grow(len(s))
	for _, w := range words {
		first, size := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(first))
		b.WriteString(w[size:])
	}
	return b.String()
}

// LowerCamel converts a word to lowerCamelCase ("InvoiceService" -> "invoiceService").
func LowerCamel(s string) string {
	return strcase.ToLowerCamel(s)
}

// Snake converts a word to snake_case ("InvoiceItems" -> "invoice_items").
func Snake(s string) string {
	return strcase.ToSnake(s)
}

// Pluralize returns the English plural of word, keeping its casing ("Factory" -> "Factories").
func Pluralize(word string) string {
	return inflection.Plural(word)
}

// Singularize returns the English singular of word.
func Singularize(word string) string {
	return inflection.Singular(word)
}

// TableName derives a conventional table name from a class name
// ("InvoiceItem" -> "invoice_items").
func TableName(class string) string {
	return Snake(Pluralize(CamelCase(class)))
}
