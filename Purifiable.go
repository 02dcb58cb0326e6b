package dispatch

// Purifiable defines the methods that any purifiable request model must
// implement.  The intention is to allow body models to validate themselves
// after deserialization - keeping the validation of user provided
// information out of controllers.  It runs in addition to any struct-tag
// validation on the model.
//
// The first return value is the name of the invalid field, the second is the
// error describing the problem.
type Purifiable interface {
	Purify() (string, error)
}
