package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestResolved(t *testing.T) *Resolved {
	t.Helper()
	loader := NewLoader(DefaultSchema(),
		WithEnviron([]string{"FLUXA_APP_NAME=TestFluxa"}),
		WithFile(filepath.Join(t.TempDir(), "absent.yaml")),
	)
	resolved, err := loader.Load()
	require.NoError(t, err)
	return resolved
}

func TestResolved_TypedAccessors(t *testing.T) {
	resolved := loadTestResolved(t)

	name, err := resolved.String("app.name")
	require.NoError(t, err)
	assert.Equal(t, "TestFluxa", name)

	tokens, err := resolved.Int("lmstudio.max_tokens")
	require.NoError(t, err)
	assert.Equal(t, int64(2048), tokens)

	temp, err := resolved.Float("lmstudio.temperature")
	require.NoError(t, err)
	assert.Equal(t, 0.7, temp)

	stream, err := resolved.Bool("lmstudio.stream")
	require.NoError(t, err)
	assert.True(t, stream)

	formats, err := resolved.Strings("vision.supported_formats")
	require.NoError(t, err)
	assert.Equal(t, []string{"jpg", "png"}, formats)
}

func TestResolved_TypeMismatch(t *testing.T) {
	resolved := loadTestResolved(t)

	_, err := resolved.Int("app.name")
	require.Error(t, err)

	var mismatch *TypeMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, "app.name", mismatch.Key)
	assert.Equal(t, KindInt, mismatch.Want)
	assert.Equal(t, KindString, mismatch.Got)

	// A failed accessor call does not invalidate the resolved state.
	name, err := resolved.String("app.name")
	require.NoError(t, err)
	assert.Equal(t, "TestFluxa", name)
}

func TestResolved_UnknownKeyLookupFails(t *testing.T) {
	resolved := loadTestResolved(t)

	_, err := resolved.Lookup("app.nmae")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownKey))
}

func TestResolved_LookupIsCaseInsensitive(t *testing.T) {
	resolved := loadTestResolved(t)

	v, err := resolved.Lookup("APP.NAME")
	require.NoError(t, err)
	s, _ := v.AsString()
	assert.Equal(t, "TestFluxa", s)
}

func TestResolved_RepeatedLookupsIdentical(t *testing.T) {
	resolved := loadTestResolved(t)

	first, err := resolved.Lookup("database.max_connections")
	require.NoError(t, err)
	second, err := resolved.Lookup("database.max_connections")
	require.NoError(t, err)
	assert.True(t, first.Equal(second))
}

func TestResolved_Section(t *testing.T) {
	resolved := loadTestResolved(t)

	section := resolved.Section("logging")
	assert.Len(t, section, 3)
	level, ok := section["level"].AsString()
	require.True(t, ok)
	assert.Equal(t, "info", level)

	assert.Empty(t, resolved.Section("nonexistent"))
}

func TestValue_EqualAcrossKinds(t *testing.T) {
	assert.True(t, IntValue(3).Equal(IntValue(3)))
	assert.False(t, IntValue(3).Equal(IntValue(4)))
	assert.False(t, IntValue(3).Equal(FloatValue(3)))
	assert.True(t, StringsValue([]string{"a", "b"}).Equal(StringsValue([]string{"a", "b"})))
	assert.False(t, StringsValue([]string{"a"}).Equal(StringsValue([]string{"b"})))
	assert.True(t, MapValue(map[string]Value{"k": BoolValue(true)}).Equal(MapValue(map[string]Value{"k": BoolValue(true)})))
}

func TestValue_AccessorsGuardKind(t *testing.T) {
	v := StringValue("x")
	_, ok := v.AsInt()
	assert.False(t, ok)

	s, ok := v.AsString()
	assert.True(t, ok)
	assert.Equal(t, "x", s)

	var zero Value
	assert.True(t, zero.IsZero())
	assert.Equal(t, KindInvalid, zero.Kind())
}

func TestValue_StringsCopyOnAccess(t *testing.T) {
	v := StringsValue([]string{"a", "b"})
	got, _ := v.AsStrings()
	got[0] = "mutated"

	again, _ := v.AsStrings()
	assert.Equal(t, "a", again[0], "accessors hand out copies")
}
