package script

import (
	"testing"

	"github.com/rocketscienceinc/connectfive/internal/apperror"
	"github.com/rocketscienceinc/connectfive/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplate(t *testing.T) {
	t.Run("Reads marks in row-major order", func(t *testing.T) {
		// Given: a template with a cross line and a naught
		template := ".x..\n" +
			"....\n" +
			"..o.\n" +
			"x..X"

		// When: parsing it
		plays, err := ParseTemplate(template)

		// Then: every mark comes back with its column and row
		require.NoError(t, err)
		assert.Equal(t, []entity.Play{
			{Player: entity.Cross, At: entity.At(1, 0)},
			{Player: entity.Naught, At: entity.At(2, 2)},
			{Player: entity.Cross, At: entity.At(0, 3)},
			{Player: entity.Cross, At: entity.At(3, 3)},
		}, plays)
	})

	t.Run("Ignores indentation and a trailing newline", func(t *testing.T) {
		plays, err := ParseTemplate("  o.\n  .x\n")

		require.NoError(t, err)
		assert.Len(t, plays, 2)
	})

	t.Run("Rejects ragged rows", func(t *testing.T) {
		_, err := ParseTemplate("...\n..\n...")

		require.ErrorIs(t, err, apperror.ErrRaggedTemplate)
		assert.Contains(t, err.Error(), "row 2")
	})

	t.Run("Rejects unknown characters", func(t *testing.T) {
		_, err := ParseTemplate("..\n.#")

		require.ErrorIs(t, err, apperror.ErrInvalidTemplate)
	})
}
