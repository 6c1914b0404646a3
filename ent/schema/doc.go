// Package schema declares the ent entities behind the SQLite store. No client
// is generated from them: internal/store keeps hand-written Tables that mirror
// these definitions and queries them with the ent dialect builders.
// schema_test.go fails when the two drift apart.
package schema
