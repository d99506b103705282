// Package repository implements the data access layer over database/sql.
// Sentinel errors defined in the per-entity files let handlers map failures
// to HTTP statuses without inspecting driver errors. SQL is kept portable
// (placeholders, LOWER(...) LIKE, timestamps bound from Go) so the same
// repositories run against MySQL in production and sqlite in tests.
package repository
