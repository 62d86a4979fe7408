package gpu

import (
	"errors"
	"testing"

	"github.com/gekko3d/phonglight/rt/core"
	"github.com/gekko3d/phonglight/rt/geometry"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncUniforms_RoutesSlots(t *testing.T) {
	u := core.NewUniforms()
	u.WriteLight(core.LightInputs{}.Defaults())
	u.WritePositions(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 2, 3})

	seen := map[int][]uint64{}
	err := SyncUniforms(u, func(slot int, offset uint64, data []byte) error {
		seen[slot] = append(seen[slot], offset)
		return nil
	})
	require.NoError(t, err)

	assert.NotContains(t, seen, 0)
	assert.Equal(t, []uint64{core.LightPositionOffset, core.EyePositionOffset}, seen[1])
	assert.Equal(t, []uint64{0}, seen[2])
}

func TestSyncUniforms_RetriesFailedUpload(t *testing.T) {
	u := core.NewUniforms()
	u.WriteLight(core.LightInputs{}.Defaults())

	errLost := errors.New("device lost")
	err := SyncUniforms(u, func(slot int, offset uint64, data []byte) error {
		if slot == 2 {
			return errLost
		}
		return nil
	})
	require.ErrorIs(t, err, errLost)
	assert.NotEmpty(t, u.Light.Dirty(), "failed light upload stays pending")

	var lightBytes int
	require.NoError(t, SyncUniforms(u, func(slot int, offset uint64, data []byte) error {
		if slot == 2 {
			lightBytes += len(data)
		}
		return nil
	}))
	assert.Equal(t, core.LightUniformSize, lightBytes)
	assert.Empty(t, u.Light.Dirty())
}

func TestNewMeshBuffers_RejectsInvalidMesh(t *testing.T) {
	_, err := NewMeshBuffers(nil, geometry.Mesh{})
	assert.ErrorIs(t, err, geometry.ErrMeshEmpty)

	_, err = NewMeshBuffers(nil, geometry.Mesh{Positions: []float32{0, 0, 0}, Normals: []float32{0, 1, 0, 1}})
	assert.ErrorIs(t, err, geometry.ErrMeshMismatch)
}
