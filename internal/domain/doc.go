// Package domain contains the core business entities of the booking API:
// user accounts, appointment service records, the password policy, and the
// classified errors that the API boundary turns into response envelopes.
// It is independent of any storage or delivery mechanism.
package domain
