package ids

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJobID(t *testing.T) {
	id := NewJobID()

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())

	assert.NotEqual(t, id, NewJobID(), "ids must be unique")
}

func TestNewRunID(t *testing.T) {
	id := NewRunID()

	require.True(t, strings.HasPrefix(id, "run-"), "run ids carry the run- prefix: %s", id)

	_, err := uuid.Parse(strings.TrimPrefix(id, "run-"))
	assert.NoError(t, err)
}
