package errors

// Error code constants.
// Errors contain code + params; messages stay short and English-only,
// frontends handle i18n translation from the code.

// Entity lookup error codes.
const (
	CodeSiteNotFound       = "SITE_NOT_FOUND"
	CodeDepartmentNotFound = "DEPARTMENT_NOT_FOUND"
	CodeSystemNotFound     = "SYSTEM_NOT_FOUND"
	CodeEquipmentNotFound  = "EQUIPMENT_NOT_FOUND"
)

// Delete engine error codes.
const (
	// CodeDeleteBlocked is the absolute business veto (active biomass).
	// Never bypassable; requires external state change before retry.
	CodeDeleteBlocked = "DELETE_BLOCKED"

	// CodeHasDependents is raised only when cascade=false and dependents
	// exist. Re-invoking with cascade=true resolves it.
	CodeHasDependents = "HAS_DEPENDENTS"

	// CodeStoreFailure wraps persistence errors during cascade execution.
	// The failed step/entity is carried in Params so the same delete call
	// can be safely re-run (all cascade updates are idempotent).
	CodeStoreFailure = "STORE_FAILURE"
)

// Validation error codes (sibling create/update paths; the delete engine
// never raises these but callers must be able to tell them apart).
const (
	CodeDuplicateCode    = "DUPLICATE_CODE"
	CodeDuplicateName    = "DUPLICATE_NAME"
	CodeValidationFailed = "VALIDATION_FAILED"
)

// Auth error codes.
const (
	CodeAuthFailed   = "AUTH_FAILED"
	CodeTokenExpired = "TOKEN_EXPIRED"
	CodeTokenInvalid = "TOKEN_INVALID"
)
