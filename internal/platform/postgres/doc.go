// Package postgres provides PostgreSQL implementations of the store
// interfaces for users and appointment services, the embedded goose
// migrations that create their tables, and the mapping from Postgres
// error codes to store errors.
package postgres
