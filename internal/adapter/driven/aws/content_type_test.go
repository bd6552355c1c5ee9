package aws

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/csv; charset=utf-8", contentType("report.CSV"))
	assert.Equal(t, "application/json", contentType("/tmp/report.json"))
	assert.Equal(t, "application/pdf", contentType("report.pdf"))
	assert.Equal(t, "text/plain; charset=utf-8", contentType("failed_tags.log"))
}

func TestProfileName(t *testing.T) {
	assert.Equal(t, "default", profileName(""))
	assert.Equal(t, "reports", profileName("reports"))
}
