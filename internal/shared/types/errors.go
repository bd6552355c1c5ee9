package types

import "errors"

var (
	ErrMissingCredentials = errors.New("API credentials not found. Set DELL_CLIENT_ID and DELL_CLIENT_SECRET, use --client-id/--client-secret or a config file")
	ErrNoServiceTags      = errors.New("no service tags to process. Use --tags, --tags-file or service_tags in the config file")
)

var (
	ErrEmptyEntitlements = errors.New("entitlements endpoint returned an empty list")
	ErrMissingComponents = errors.New("components payload is missing")
)
