// Package store defines interfaces for data persistence operations on users
// and appointment services. These interfaces abstract the underlying data
// storage mechanism from the application's core logic; the Postgres
// implementations live in internal/platform/postgres.
package store
