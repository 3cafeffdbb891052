package api

const (
	CategoryDatabase     = ErrorCategory("Database")
	CategoryUser         = ErrorCategory("User") // used for errors related to user input, validation, etc.
	CategoryUnauthorized = ErrorCategory("Unauthorized")
	CategoryNotFound     = ErrorCategory("NotFound")
	CategoryInternal     = ErrorCategory("Internal") // used for internal server errors, not related to bad user input
)

const (
	// General

	ErrorCreateFailure         = ErrorKey("ErrorCreateFailure")
	ErrorDestroyFailure        = ErrorKey("ErrorDestroyFailure")
	ErrorForeignKeyViolation   = ErrorKey("ErrorForeignKeyViolation")
	ErrorGenericInternalServer = ErrorKey("ErrorGenericInternalServer")
	ErrorInvalidRequestBody    = ErrorKey("ErrorInvalidRequestBody")
	ErrorNoRows                = ErrorKey("ErrorNoRows")
	ErrorQueryFailure          = ErrorKey("ErrorQueryFailure")
	ErrorSaveFailure           = ErrorKey("ErrorSaveFailure")
	ErrorTransactionNotFound   = ErrorKey("ErrorTransactionNotFound")
	ErrorUniqueKeyViolation    = ErrorKey("ErrorUniqueKeyViolation")
	ErrorUnknown               = ErrorKey("ErrorUnknown")
	ErrorUpdateFailure         = ErrorKey("ErrorUpdateFailure")

	// Service arguments

	ErrorIDRequired          = ErrorKey("ErrorIDRequired")
	ErrorRequestBodyRequired = ErrorKey("ErrorRequestBodyRequired")
	ErrorValidation          = ErrorKey("ErrorValidation")

	// Person

	ErrorInvalidPersonID = ErrorKey("ErrorInvalidPersonID")

	// Country

	ErrorCountryNameInUse = ErrorKey("ErrorCountryNameInUse")

	// Pipeline

	ErrorFeatureDisabled = ErrorKey("ErrorFeatureDisabled")
	ErrorNotAuthorized   = ErrorKey("ErrorNotAuthorized")

	// File upload

	ErrorReceivingFile       = ErrorKey("ErrorReceivingFile")
	ErrorUnableToParseFile   = ErrorKey("ErrorUnableToParseFile")
	ErrorUnableToReadFile    = ErrorKey("ErrorUnableToReadFile")
	ErrorUnsupportedFileType = ErrorKey("ErrorUnsupportedFileType")
)
