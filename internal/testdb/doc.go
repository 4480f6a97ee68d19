//go:build integration

// Package testdb provides helpers for tests that run against a real
// PostgreSQL database.
//
// Tests are isolated by running inside a transaction that is rolled back
// when the test function returns:
//
//	func TestSomething(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        users := postgres.NewPostgresUserStore(tx, bcrypt.MinCost, nil)
//	        // ...
//	    })
//	}
//
// GetTestDBWithT skips the test when no database URL is configured, so the
// integration suite can be compiled and run anywhere with -tags=integration.
package testdb
