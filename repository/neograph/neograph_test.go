package neograph

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestExecute_NotInitialized(t *testing.T) {
	Close()
	assert.False(t, Initialized())

	_, err := Execute("RETURN 1", nil)
	assert.Equal(t, ErrNotInitialized, err)
}

/*
TestExecute 需要本地的 neo4j，连接不上时跳过。
*/
func TestExecute(t *testing.T) {
	d, err := CreateDriver(GenerateTestConfig())
	if err != nil {
		t.Skipf("neo4j is not available: %s", err)
	}
	defer d.Close()

	records, err := ExecuteWith(d, "RETURN $x + 1 AS y", map[string]interface{}{"x": 41})
	require.Nil(t, err)
	require.Len(t, records, 1)

	y, ok := records[0].Get("y")
	require.True(t, ok)
	assert.Equal(t, int64(42), y)
}
