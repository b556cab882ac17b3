// Package i18n provides internationalization support for the habitat service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyValidationAnimal indicates a species not present in the catalog.
	ErrKeyValidationAnimal = "error.validation.animal"
	// ErrKeyValidationQuantidade indicates a zero or negative quantity.
	ErrKeyValidationQuantidade = "error.validation.quantidade"
	// ErrKeyNoViableEnclosure indicates that no enclosure can house the group.
	ErrKeyNoViableEnclosure = "error.no_viable_enclosure"
)

// Success message translation keys.
const (
	// SuccessKeyAnalysis indicates a successful enclosure analysis.
	SuccessKeyAnalysis = "success.analysis"
)
