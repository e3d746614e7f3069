package branch_test

import (
	"testing"

	"tracking/internal/core/domain/model/branch"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBranch(t *testing.T) {
	t.Run("with_address", func(t *testing.T) {
		address := "12 Norodom Blvd, Phnom Penh"

		b, err := branch.NewBranch("Phnom Penh Central", &address)

		require.NoError(t, err)
		require.NoError(t, b.Validate())
		assert.Equal(t, "Phnom Penh Central", b.Name())
		require.NotNil(t, b.Address())
		assert.Equal(t, address, *b.Address())
		assert.Zero(t, b.ID())
	})

	t.Run("without_address", func(t *testing.T) {
		b, err := branch.NewBranch("Siem Reap", nil)

		require.NoError(t, err)
		assert.Nil(t, b.Address())
	})

	t.Run("empty_name", func(t *testing.T) {
		_, err := branch.NewBranch("", nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreBranch(t *testing.T) {
	b, err := branch.RestoreBranch(3, "Battambang", nil)

	require.NoError(t, err)
	assert.Equal(t, int64(3), b.ID())
	assert.Equal(t, "Battambang", b.Name())
}

func TestBranch_IsEqual(t *testing.T) {
	a, err := branch.RestoreBranch(1, "Phnom Penh Central", nil)
	require.NoError(t, err)
	b, err := branch.RestoreBranch(1, "Renamed", nil)
	require.NoError(t, err)
	c, err := branch.RestoreBranch(2, "Siem Reap", nil)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}

func TestBranch_ZeroValueFailsValidation(t *testing.T) {
	var b branch.Branch

	require.ErrorIs(t, b.Validate(), branch.ErrBranchIsNotConstructed)
}
