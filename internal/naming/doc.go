// Package naming derives namespaces, class names and file paths from raw artifact names.
//
// A raw name such as "Billing/Invoice" is normalized (root namespace and reserved words
// stripped, "/" turned into the configured separator), split into segments, and the first
// and last segments are StudlyCased. Every generator builds its strings from that parsed
// form:
//
//	r := naming.New(domain.DefaultNamingConfig())
//	r.GenerateFullNamespace("Billing/Invoice", "Controller")
//	// Domains.Billing.Controllers.InvoiceController
//
// A Resolver is immutable after New and safe for concurrent use.
package naming
