package interfaces

import "errors"

// ErrReferenceViolation marks a write the database rejected because a
// referenced registry row does not exist. Referential integrity lives in the
// schema's foreign keys; usecases translate this into their own validation
// error instead of a storage failure.
var ErrReferenceViolation = errors.New("referenced row does not exist")
