package issues

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jessy-bgl/postman-collection-to-html/internal/severity"
)

func TestIssueString(t *testing.T) {
	t.Run("with path", func(t *testing.T) {
		i := Issue{Path: "Users/Get user", Message: "duplicate anchor", Severity: severity.SeverityWarning}
		assert.Equal(t, "[warning] Users/Get user: duplicate anchor", i.String())
	})

	t.Run("without path", func(t *testing.T) {
		i := Issue{Message: "something happened", Severity: severity.SeverityInfo}
		assert.Equal(t, "[info] something happened", i.String())
	})
}
