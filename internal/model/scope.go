package model

// Scope carries the authenticated caller identity through use cases.
// UserID is the owner that scopes every event query and quota check.
type Scope struct {
	UserID   string
	Username string
}

// Environment names the runtime environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)
