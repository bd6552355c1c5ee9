package types

import "time"

const (
	DefaultTokenURL        = "https://apigtwb2c.us.dell.com/auth/oauth/v2/token"
	DefaultComponentsURL   = "https://apigtwb2c.us.dell.com/PROD/sbil/eapi/v5/asset-components"
	DefaultEntitlementsURL = "https://apigtwb2c.us.dell.com/PROD/sbil/eapi/v5/asset-entitlements"

	DefaultReportName = "dell_summary_inventory"
	DefaultFailedLog  = "failed_tags.log"

	DefaultRequestDelay = 300 * time.Millisecond
	DefaultHTTPTimeout  = 60 * time.Second
)

// Config represents the application configuration that can be loaded from a file.
// Durations are expressed in milliseconds in the file.
type Config struct {
	ClientID        string   `json:"client_id" yaml:"client_id" toml:"client_id"`
	ClientSecret    string   `json:"client_secret" yaml:"client_secret" toml:"client_secret"`
	ServiceTags     []string `json:"service_tags" yaml:"service_tags" toml:"service_tags"`
	TagsFile        string   `json:"tags_file" yaml:"tags_file" toml:"tags_file"`
	TokenURL        string   `json:"token_url" yaml:"token_url" toml:"token_url"`
	ComponentsURL   string   `json:"components_url" yaml:"components_url" toml:"components_url"`
	EntitlementsURL string   `json:"entitlements_url" yaml:"entitlements_url" toml:"entitlements_url"`
	Dir             string   `json:"dir" yaml:"dir" toml:"dir"`
	ReportName      string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	FailedLog       string   `json:"failed_log" yaml:"failed_log" toml:"failed_log"`
	ReportType      []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	DelayMillis     *int     `json:"delay_ms" yaml:"delay_ms" toml:"delay_ms"`
	TimeoutMillis   *int     `json:"timeout_ms" yaml:"timeout_ms" toml:"timeout_ms"`
	S3Bucket        string   `json:"s3_bucket" yaml:"s3_bucket" toml:"s3_bucket"`
	S3Prefix        string   `json:"s3_prefix" yaml:"s3_prefix" toml:"s3_prefix"`
	AWSProfile      string   `json:"aws_profile" yaml:"aws_profile" toml:"aws_profile"`
	LogGroup        string   `json:"cloudwatch_log_group" yaml:"cloudwatch_log_group" toml:"cloudwatch_log_group"`
}

// Delay returns the configured pause between tags.
func (c *Config) Delay() time.Duration {
	if c.DelayMillis == nil {
		return DefaultRequestDelay
	}
	return time.Duration(*c.DelayMillis) * time.Millisecond
}

// Timeout returns the configured HTTP client timeout. Zero disables it.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutMillis == nil {
		return DefaultHTTPTimeout
	}
	return time.Duration(*c.TimeoutMillis) * time.Millisecond
}

// ApplyDefaults fills every empty endpoint and output setting.
func (c *Config) ApplyDefaults() {
	if c.TokenURL == "" {
		c.TokenURL = DefaultTokenURL
	}
	if c.ComponentsURL == "" {
		c.ComponentsURL = DefaultComponentsURL
	}
	if c.EntitlementsURL == "" {
		c.EntitlementsURL = DefaultEntitlementsURL
	}
	if c.ReportName == "" {
		c.ReportName = DefaultReportName
	}
	if c.FailedLog == "" {
		c.FailedLog = DefaultFailedLog
	}
}
