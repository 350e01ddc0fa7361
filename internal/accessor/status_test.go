package accessor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worktime-tracker/system/internal/domain"
)

func TestNextStatusEmptyExistingUsesBaseInput(t *testing.T) {
	got, err := nextStatus("", domain.RoleAdmin, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "ADMIN_INPUT", got)

	got, err = nextStatus("", domain.RoleTeamLeader, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "TEAM_INPUT", got)

	got, err = nextStatus("", domain.RoleUser, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "USER_INPUT", got)
}

func TestNextStatusFinalRejected(t *testing.T) {
	_, err := nextStatus("ADMIN_FINAL", domain.RoleUser, time.Now())
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = nextStatus("TEAM_FINAL", domain.RoleAdmin, time.Now())
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNextStatusExistingNonFinalGetsTimestampedEdit(t *testing.T) {
	now := time.Date(2026, 7, 31, 10, 0, 0, 0, time.UTC)
	got, err := nextStatus("USER_INPUT", domain.RoleUser, now)
	require.NoError(t, err)
	assert.Contains(t, got, "USER_EDITED_")

	got, err = nextStatus("USER_INPUT", domain.RoleAdmin, now)
	require.NoError(t, err)
	assert.Contains(t, got, "ADMIN_EDITED_")
}
