package registry

import (
	"testing"

	"github.com/holdco/brandkit/internal/domain/styles"
	"github.com/holdco/brandkit/internal/domain/ventures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_JoinsStyle(t *testing.T) {
	b, err := Resolve("brainfruit")
	require.NoError(t, err)
	assert.Equal(t, "brainfruit", b.Key)
	assert.Equal(t, "verdant", b.Venture.Style)
	assert.Equal(t, "Verdant", b.Style.Name)
	assert.Equal(t, "#2E7D32", b.Style.Primary)
}

func TestResolve_UnknownKey(t *testing.T) {
	_, err := Resolve("not-a-venture")
	assert.ErrorIs(t, err, ventures.ErrNotFound)
}

func TestStyleReferences_AllResolve(t *testing.T) {
	for _, key := range ventures.Keys() {
		v, err := ventures.Get(key)
		require.NoError(t, err)
		_, err = styles.Get(v.Style)
		assert.NoError(t, err, "venture %q references style %q", key, v.Style)
	}
}

func TestAll_PreservesVentureOrder(t *testing.T) {
	joined := All()
	keyed := ventures.All()
	require.Len(t, joined, len(keyed))
	for i := range keyed {
		assert.Equal(t, keyed[i].Key, joined[i].Key)
		assert.NotEmpty(t, joined[i].Style.Name)
	}
}

func TestByDomain_ExactMatch(t *testing.T) {
	b, ok := ByDomain("primovivo.com")
	require.True(t, ok)
	assert.Equal(t, "primovivo", b.Key)
	assert.Equal(t, "Ember", b.Style.Name)
}

func TestByDomain_CaseSensitive(t *testing.T) {
	_, ok := ByDomain("PRIMOVIVO.COM")
	assert.False(t, ok)
}

func TestByDomain_Missing(t *testing.T) {
	_, ok := ByDomain("nonexistent.tld")
	assert.False(t, ok)
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Active", StatusLabel(ventures.StatusActive))
	assert.Equal(t, "In Pipeline", StatusLabel(ventures.StatusPipeline))
}

func TestContrastFor_VentureScoped(t *testing.T) {
	info, err := ContrastFor("amorphing")
	require.NoError(t, err)
	assert.Equal(t, "Ultraviolet", info.StyleName)
	assert.Equal(t, "7.2:1", info.Ratio)
	assert.Equal(t, styles.StandardLabel, info.Standard)
	assert.Equal(t, "#6A0DAD", info.Foreground, "style primary color is the foreground")
	assert.Equal(t, DarkBackground, info.Background)
}

func TestContrastFor_UnknownVenture(t *testing.T) {
	_, err := ContrastFor("nope")
	assert.ErrorIs(t, err, ventures.ErrNotFound)
}

func TestVerify_AuthoredTablesAreConsistent(t *testing.T) {
	assert.NoError(t, Verify())
}

func TestVerify_BrokenStyleReference(t *testing.T) {
	fixture := map[string]ventures.Venture{
		"demo": {Name: "Demo", Style: "missing", Status: ventures.StatusActive},
	}
	lookup := func(key string) (ventures.Venture, error) {
		return fixture[key], nil
	}

	err := verify([]string{"demo"}, lookup, styles.Keys(), styles.Get)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `venture "demo" references unknown style "missing"`)
}

func TestVerify_UnknownStatus(t *testing.T) {
	fixture := map[string]ventures.Venture{
		"demo": {Name: "Demo", Style: "ember", Status: "retired"},
	}
	lookup := func(key string) (ventures.Venture, error) {
		return fixture[key], nil
	}

	err := verify([]string{"demo"}, lookup, nil, styles.Get)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `venture "demo" has unknown status "retired"`)
}

func TestVerify_UnknownCategory(t *testing.T) {
	fixture := map[string]styles.Style{
		"demo": {Name: "Demo", Category: "tertiary"},
	}
	lookup := func(key string) (styles.Style, error) {
		return fixture[key], nil
	}

	err := verify(nil, ventures.Get, []string{"demo"}, lookup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `style "demo" has unknown category "tertiary"`)
}

func TestVerify_AggregatesEveryViolation(t *testing.T) {
	fixture := map[string]ventures.Venture{
		"demo": {Name: "Demo", Style: "missing", Status: "retired"},
	}
	lookup := func(key string) (ventures.Venture, error) {
		return fixture[key], nil
	}

	err := verify([]string{"demo"}, lookup, nil, styles.Get)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "references unknown style")
	assert.Contains(t, err.Error(), "has unknown status")
}
