package jsonassert

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/jsontools/differ"
	"github.com/erraggy/jsontools/jsonerrors"
)

func TestNewConfig(t *testing.T) {
	cfg, err := NewConfig(
		differ.WithTolerance(0.01),
		differ.WithExtraFields(differ.ExtraFieldsLenient),
	)
	require.NoError(t, err)

	rt := &recorderT{}
	assert.True(t, cfg.Equal(rt, `{"a":1.0}`, `{"a":1.005,"b":"extra"}`),
		"tolerance and lenient extras should both apply: %v", rt.failures)
}

func TestNewConfigInvalid(t *testing.T) {
	_, err := NewConfig(differ.WithTolerance(-1))
	require.Error(t, err)
	assert.ErrorIs(t, err, jsonerrors.ErrConfig)

	var cfgErr *jsonerrors.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "WithTolerance", cfgErr.Option)
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	rt := &recorderT{}
	assert.False(t, cfg.Equal(rt, `{"a":1}`, `{"a":1,"b":2}`),
		"default config reports extra fields")

	rt = &recorderT{}
	assert.True(t, cfg.Equal(rt, `{"a":"${json-unit.ignore}"}`, `{"a":[1,2,3]}`),
		"default ignore marker applies: %v", rt.failures)
}

func TestConfigPerCallOptions(t *testing.T) {
	cfg, err := NewConfig(differ.WithExtraFields(differ.ExtraFieldsStrict))
	require.NoError(t, err)

	rt := &recorderT{}
	assert.True(t, cfg.Equal(rt, `{"a":1}`, `{"a":1,"b":2}`,
		differ.WithExtraFields(differ.ExtraFieldsLenient)),
		"per-call option should win: %v", rt.failures)
}

func TestConfigMethods(t *testing.T) {
	cfg, err := NewConfig(differ.WithTolerance(0.5))
	require.NoError(t, err)

	doc := `{"metrics":{"cpu":[0.5,0.9]}}`

	t.Run("PartEqual", func(t *testing.T) {
		rt := &recorderT{}
		assert.True(t, cfg.PartEqual(rt, `[0.4,1.2]`, doc, "metrics.cpu"),
			"within tolerance: %v", rt.failures)
	})

	t.Run("StructureEqual", func(t *testing.T) {
		rt := &recorderT{}
		assert.True(t, cfg.StructureEqual(rt, `{"metrics":{"cpu":[0,0]}}`, doc),
			"same shape: %v", rt.failures)
	})

	t.Run("PartStructureEqual", func(t *testing.T) {
		rt := &recorderT{}
		assert.True(t, cfg.PartStructureEqual(rt, `["a","b"]`, doc, "metrics.cpu"),
			"scalar kinds are interchangeable structurally: %v", rt.failures)
	})
}

func TestConfigReusable(t *testing.T) {
	cfg, err := NewConfig(differ.WithIgnoreMarker("#any"))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		rt := &recorderT{}
		assert.True(t, cfg.Equal(rt, `{"v":"#any"}`, `{"v":{"nested":true}}`),
			"run %d: %v", i, rt.failures)
	}
}
