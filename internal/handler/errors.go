package handler

import "errors"

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgMethodNotAllowed   = "Method not allowed"
	ErrMsgInvalidVNUM        = "Invalid recipe vnum"
	ErrMsgRecipeNotFound     = "Recipe not found"
	ErrMsgUnknownSkill       = "Unknown skill"
	ErrMsgUnknownStation     = "Unknown workstation type"
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgNotReady           = "No recipes registered"
)

// Health status values
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// Query parameters accepted by the recipe listing
const (
	QueryParamSkill   = "skill"
	QueryParamStation = "station"
	QueryParamName    = "name"
)

// URL parameters
const (
	URLParamVNUM = "vnum"
)

// errNoRecipes fails readiness until the store is populated
var errNoRecipes = errors.New(ErrMsgNotReady)
