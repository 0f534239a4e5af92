package consts

// Pagination defaults. The clamping rules live in the pagination package.
const (
	DefaultPage     = 1
	DefaultPageSize = 15
	DefaultMaxLimit = 100
)

// Student enrollment statuses
const (
	StudentEnrolled  = "enrolled"
	StudentGraduated = "graduated"
	StudentWithdrawn = "withdrawn"
)

// StudentStatuses lists the accepted values for the student status filter.
var StudentStatuses = []string{StudentEnrolled, StudentGraduated, StudentWithdrawn}

// EnvProduction is the app.env value that suppresses stack traces in error
// envelopes.
const EnvProduction = "production"
