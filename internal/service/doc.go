// Package service orchestrates the application's use cases on top of the
// store interfaces: registration, login, token refresh and profile lookup in
// AuthService, and appointment service management in CatalogService.
//
// Services return *domain.Error for failures a client should see. The
// Message of such an error is safe to expose; the wrapped cause is only
// logged.
package service
