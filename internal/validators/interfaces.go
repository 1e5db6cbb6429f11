// Package validators holds the declarative constraint sets for the three
// editable forms: login credentials, the registration profile and the
// session record. Validation is synchronous and side-effect free; a form's
// submit affordance is enabled iff Validate returns nil, re-evaluated on
// every field change.
package validators

// Validator validates a form value. With no fields given, every rule of the
// form's rule set is checked; otherwise only the named fields are.
type Validator interface {
	Validate(obj any, fields ...string) error
}
