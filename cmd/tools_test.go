package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolsCommandListsCatalog(t *testing.T) {
	var out bytes.Buffer
	toolsCmd.SetOut(&out)
	defer toolsCmd.SetOut(nil)

	require.NoError(t, runTools(toolsCmd, nil))

	output := out.String()
	assert.Contains(t, output, "get_customers")
	assert.Contains(t, output, "record_contract_payment")
	assert.Contains(t, output, "oauth2_status")
	// Required arguments column is populated.
	assert.Contains(t, output, "customer_id")
}
