package platform

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleInstanceRejectsSecondHolder(t *testing.T) {
	name := "workplay-test-" + t.Name()

	guard, err := AcquireSingleInstance(name)
	require.NoError(t, err)

	_, err = AcquireSingleInstance(name)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, guard.Release())
	require.NoError(t, guard.Release())

	again, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	require.NoError(t, again.Release())
}

func TestGuardAddressIsStable(t *testing.T) {
	assert.Equal(t, GuardAddress("workplay"), GuardAddress("workplay"))
	assert.NotEqual(t, GuardAddress("workplay"), GuardAddress("eagle"))
}

func TestConfigDirHonoursXDG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "xdg")
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", t.TempDir())

	got, err := ConfigDir()
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

func TestFallbackConfigDirUnderHome(t *testing.T) {
	home := t.TempDir()
	assert.Contains(t, fallbackConfigDir(home), home)
}

func TestReleaseNilGuard(t *testing.T) {
	var guard *InstanceGuard
	assert.NoError(t, guard.Release())
}
