package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Refusal kinds
	ErrMsgNotFound     = "not found"
	ErrMsgNotEligible  = "not eligible"
	ErrMsgAlreadyDone  = "already done"
	ErrMsgNothingToDo  = "nothing to do"
	ErrMsgAllocation   = "allocation failure"
	ErrMsgPermission   = "permission denied"
	ErrMsgInvalidInput = "invalid input"

	// Recipe errors
	ErrMsgInvalidRecipe       = "invalid recipe"
	ErrMsgInvalidVNUM         = "vnum must be set"
	ErrMsgDuplicateVNUM       = "vnum already in use"
	ErrMsgTooManyIngredients  = "too many ingredients"
	ErrMsgRecipeNotRegistered = "recipe not registered"
)

// Common domain errors
// Refusals wrap one of these as their kind so callers can classify with errors.Is.
var (
	ErrNotFound     = errors.New(ErrMsgNotFound)
	ErrNotEligible  = errors.New(ErrMsgNotEligible)
	ErrAlreadyDone  = errors.New(ErrMsgAlreadyDone)
	ErrNothingToDo  = errors.New(ErrMsgNothingToDo)
	ErrAllocation   = errors.New(ErrMsgAllocation)
	ErrPermission   = errors.New(ErrMsgPermission)
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	ErrInvalidRecipe       = errors.New(ErrMsgInvalidRecipe)
	ErrInvalidVNUM         = errors.New(ErrMsgInvalidVNUM)
	ErrDuplicateVNUM       = errors.New(ErrMsgDuplicateVNUM)
	ErrTooManyIngredients  = errors.New(ErrMsgTooManyIngredients)
	ErrRecipeNotRegistered = errors.New(ErrMsgRecipeNotRegistered)
)

// Refusal is a user-visible failure. Error returns the text shown to the
// player; Unwrap exposes the classification.
type Refusal struct {
	Kind error
	Msg  string
}

func (r *Refusal) Error() string {
	return r.Msg
}

func (r *Refusal) Unwrap() error {
	return r.Kind
}

// Refuse builds a Refusal of the given kind
func Refuse(kind error, msg string) error {
	return &Refusal{Kind: kind, Msg: msg}
}

// RefusalKind returns a short label for metrics, "error" for anything that
// is not a Refusal.
func RefusalKind(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrAlreadyDone):
		return "already_done"
	case errors.Is(err, ErrNothingToDo):
		return "nothing_to_do"
	case errors.Is(err, ErrInvalidRecipe):
		return "invalid_recipe"
	case errors.Is(err, ErrNotEligible):
		return "not_eligible"
	case errors.Is(err, ErrPermission):
		return "permission"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrAllocation):
		return "allocation"
	default:
		return "error"
	}
}
