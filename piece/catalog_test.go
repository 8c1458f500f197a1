package piece

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	require.Len(t, All, 7)
	for _, k := range All {
		t.Run(k.String(), func(t *testing.T) {
			require.True(t, k.Valid())
			s := k.Shape()
			for r, p := range s {
				assert.Equal(t, s[0].Width, p.Width, "rotation %d width", r)
				assert.Equal(t, s[0].Height, p.Height, "rotation %d height", r)
				assert.Len(t, p.Mask, p.Width*p.Height)
				assert.Len(t, p.Cells(), 4, "rotation %d must have four cells", r)
				for _, v := range p.Mask {
					if v != 0 {
						assert.Equal(t, k.Material(), v)
					}
				}
			}
			assert.Equal(t, s[0], s[0].rotated().rotated().rotated().rotated())
		})
	}
}

func TestCatalog_Rotations(t *testing.T) {
	assert.Equal(t, []int{
		0, 1, 0, 0,
		0, 1, 0, 0,
		0, 1, 0, 0,
		0, 1, 0, 0,
	}, I.Rotation(1).Mask)
	assert.Equal(t, []int{
		0, 6, 0,
		0, 6, 6,
		0, 6, 0,
	}, T.Rotation(1).Mask)
	assert.Equal(t, []int{
		0, 0, 0,
		6, 6, 6,
		0, 6, 0,
	}, T.Rotation(2).Mask)
	assert.Equal(t, O.Base(), O.Rotation(1))
	assert.Equal(t, T.Rotation(0), T.Rotation(4))
	assert.Equal(t, T.Rotation(3), T.Rotation(-1))
}

func TestCatalog_CopiesAreIndependent(t *testing.T) {
	p := S.Base()
	p.Mask[1] = 0
	assert.Equal(t, 5, S.Base().Mask[1])

	s := Z.Shape()
	s[2].Mask[4] = 0
	assert.Equal(t, 7, Z.Rotation(2).Mask[4])
}

func TestKind_Invalid(t *testing.T) {
	assert.False(t, Kind(0).Valid())
	assert.Equal(t, "Kind(42)", Kind(42).String())
	assert.Panics(t, func() { Kind(42).Base() })
}

func TestRelaxed(t *testing.T) {
	assert.Equal(t, []Kind{I, O}, Relaxed)
}
