package integrity

import (
	"testing"

	"catalog-sync/feature/catalogs/definitions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestService_CheckSchema_NilDB(t *testing.T) {
	reg, err := definitions.NewRegistry()
	require.NoError(t, err)

	svc := NewService(nil, reg, zap.NewNop())
	report, err := svc.CheckSchema()
	assert.Error(t, err)
	assert.Nil(t, report)
}
