// Package mocks provides hand-written test doubles for the store, token and
// password interfaces.
//
// Each mock exposes function fields (CreateFn, VerifyFn, ...) that override
// its behavior. When a field is nil the mock falls back to a small in-memory
// implementation, so most tests only set the fields they care about:
//
//	users := mocks.NewMockUserStore()
//	users.GetByIDFn = func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
//	    return nil, store.ErrUserNotFound
//	}
package mocks
