package template

import (
	"testing"

	"github.com/Ateeq-afk/sahara/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every built-in catalog must validate; a malformed one would break
// every estimate at startup.
func TestBuiltins_Validate(t *testing.T) {
	for _, c := range Builtins() {
		t.Run(c.ID, func(t *testing.T) {
			assert.Empty(t, Validate(c))
			for _, pt := range domain.ProjectTypes {
				assert.NotEmpty(t, c.PhasesFor(pt), "%s has no %s phases", c.ID, pt)
			}
		})
	}
}

func TestForVariant(t *testing.T) {
	c, err := ForVariant(domain.VariantDetailed)
	require.NoError(t, err)
	assert.Equal(t, "detailed", c.ID)
	assert.Len(t, c.PhasesFor(domain.ProjectConstruction), 8)

	c, err = ForVariant(domain.VariantCompact)
	require.NoError(t, err)
	assert.Equal(t, domain.VariantCompact, c.Variant)
	assert.Len(t, c.PhasesFor(domain.ProjectConstruction), 5)

	_, err = ForVariant("brief")
	assert.Error(t, err)
}
