package types

import "time"

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile      string
	EnvFile         string
	ClientID        string
	ClientSecret    string
	Tags            []string
	TagsFile        string
	Dir             string
	ReportName      string
	FailedLog       string
	ReportType      []string
	Delay           *time.Duration
	Timeout         *time.Duration
	TokenURL        string
	ComponentsURL   string
	EntitlementsURL string
	S3Bucket        string
	S3Prefix        string
	AWSProfile      string
	LogGroup        string
}
