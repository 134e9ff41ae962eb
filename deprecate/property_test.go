package deprecate_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/deprecate/deprecate"
	"github.com/sghaida/deprecate/props"
)

func collect(cfg deprecate.Config) (*deprecate.Facility, *[]string) {
	var messages []string
	f := deprecate.New(cfg,
		deprecate.WithLogger(zerolog.Nop()),
		deprecate.WithHandler(func(m string) { messages = append(messages, m) }),
	)
	return f, &messages
}

//
// -----------------------------------------------------------------------------
// RemoveProperty
// -----------------------------------------------------------------------------

// TestRemoveProperty_Missing verifies a missing own property is an invalid argument.
func TestRemoveProperty_Missing(t *testing.T) {
	t.Parallel()

	f, messages := collect(deprecate.Config{})
	obj, err := deprecate.RemoveProperty(f, props.New(nil), "x")
	require.ErrorIs(t, err, deprecate.ErrInvalidArgument)
	assert.Nil(t, obj)
	assert.Empty(t, *messages)
}

// TestRemoveProperty_KeepsWorkingAndWarnsOnce verifies reads and writes still work and warn once.
func TestRemoveProperty_KeepsWorkingAndWarnsOnce(t *testing.T) {
	t.Parallel()

	f, messages := collect(deprecate.Config{})
	bag := props.New(map[string]any{"color": "red"})

	obj, err := deprecate.RemoveProperty(f, bag, "color")
	require.NoError(t, err)
	require.Same(t, bag, obj)
	assert.Empty(t, *messages, "installing the accessor does not warn")

	v, err := bag.Get("color")
	require.NoError(t, err)
	assert.Equal(t, "red", v)

	require.NoError(t, bag.Set("color", "blue"))
	v, err = bag.Get("color")
	require.NoError(t, err)
	assert.Equal(t, "blue", v)

	assert.True(t, bag.HasOwn("color"))
	assert.Equal(t, []string{"The 'color' property has been deprecated and marked for removal."}, *messages)
}

// TestRemoveProperty_SetFirst verifies a write alone triggers the warning.
func TestRemoveProperty_SetFirst(t *testing.T) {
	t.Parallel()

	f, messages := collect(deprecate.Config{})
	bag := props.New(map[string]any{"n": 1})

	_, err := deprecate.RemoveProperty(f, bag, "n")
	require.NoError(t, err)

	require.NoError(t, bag.Set("n", 2))
	require.NoError(t, bag.Set("n", 3))
	assert.Len(t, *messages, 1)
}

// TestRemoveProperty_ThrowMode verifies the first access fails with a DeprecationError.
func TestRemoveProperty_ThrowMode(t *testing.T) {
	t.Parallel()

	f := deprecate.New(deprecate.Config{ThrowOnDeprecation: true}, deprecate.WithLogger(zerolog.Nop()))
	bag := props.New(map[string]any{"n": 1})

	_, err := deprecate.RemoveProperty(f, bag, "n")
	require.NoError(t, err)

	_, err = bag.Get("n")
	require.ErrorIs(t, err, deprecate.ErrDeprecated)

	v, err := bag.Get("n")
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

//
// -----------------------------------------------------------------------------
// RenameProperty
// -----------------------------------------------------------------------------

// TestRenameProperty_Migrates verifies old=5 moves to new and old forwards to new.
func TestRenameProperty_Migrates(t *testing.T) {
	t.Parallel()

	f, messages := collect(deprecate.Config{})
	bag := props.New(map[string]any{"old": 5})

	obj, err := deprecate.RenameProperty(f, bag, "old", "new")
	require.NoError(t, err)
	require.Same(t, bag, obj)

	v, err := bag.Get("new")
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	v, err = bag.Get("old")
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	require.NoError(t, bag.Set("old", 6))
	v, err = bag.Get("new")
	require.NoError(t, err)
	assert.Equal(t, 6, v)

	require.NoError(t, bag.Set("new", 7))
	v, err = bag.Get("old")
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	assert.Equal(t, []string{"'old' is deprecated. Use 'new' instead."}, *messages)
}

// TestRenameProperty_NewAlreadySet verifies an existing new value wins and no migration warns.
func TestRenameProperty_NewAlreadySet(t *testing.T) {
	t.Parallel()

	f, messages := collect(deprecate.Config{})
	bag := props.New(map[string]any{"old": 1, "new": 2})

	_, err := deprecate.RenameProperty(f, bag, "old", "new")
	require.NoError(t, err)
	assert.Empty(t, *messages)

	v, err := bag.Get("old")
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Len(t, *messages, 1)
}

// TestRenameProperty_NeitherSet verifies the accessor is installed even without values.
func TestRenameProperty_NeitherSet(t *testing.T) {
	t.Parallel()

	f, messages := collect(deprecate.Config{})
	bag := props.New(nil)

	_, err := deprecate.RenameProperty(f, bag, "old", "new")
	require.NoError(t, err)
	assert.False(t, bag.HasOwn("new"))

	require.NoError(t, bag.Set("old", "x"))
	v, err := bag.Get("new")
	require.NoError(t, err)
	assert.Equal(t, "x", v)
	assert.Len(t, *messages, 1)
}

// TestRenameProperty_Suppressed verifies forwarding without messages.
func TestRenameProperty_Suppressed(t *testing.T) {
	t.Parallel()

	f, messages := collect(deprecate.Config{SuppressDeprecation: true})
	bag := props.New(map[string]any{"old": 5})

	_, err := deprecate.RenameProperty(f, bag, "old", "new")
	require.NoError(t, err)

	v, err := bag.Get("old")
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.Empty(t, *messages)
}

// TestRenameProperty_ThrowModeDuringMigration verifies the migration error propagates.
func TestRenameProperty_ThrowModeDuringMigration(t *testing.T) {
	t.Parallel()

	f := deprecate.New(deprecate.Config{ThrowOnDeprecation: true}, deprecate.WithLogger(zerolog.Nop()))
	bag := props.New(map[string]any{"old": 5})

	obj, err := deprecate.RenameProperty(f, bag, "old", "new")
	require.ErrorIs(t, err, deprecate.ErrDeprecated)
	assert.Nil(t, obj)
	assert.False(t, bag.HasOwn("new"))
}
