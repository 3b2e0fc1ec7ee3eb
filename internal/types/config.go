package types

import "fmt"

type RunMode string

const (
	// ModeLocal is the mode for running the API server locally
	ModeLocal RunMode = "local"
	// ModeAPI is the mode for running the API server in a deployed environment
	ModeAPI RunMode = "api"
	// ModeAWSLambdaAPI serves the API behind API Gateway from a Lambda function
	ModeAWSLambdaAPI RunMode = "aws_lambda_api"
)

func (m RunMode) Validate() error {
	switch m {
	case ModeLocal, ModeAPI, ModeAWSLambdaAPI:
		return nil
	}
	return fmt.Errorf("unknown deployment mode %q", string(m))
}

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)
