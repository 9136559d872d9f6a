package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleMCP_Help(t *testing.T) {
	err := HandleMCP([]string{"--help"})
	assert.NoError(t, err)
}

func TestHandleMCP_UnknownFlag(t *testing.T) {
	err := HandleMCP([]string{"--bogus"})
	assert.Error(t, err)
}
