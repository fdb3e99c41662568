package anim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GHzytp/vedo/internal/scene"
)

func newTestTimeline() *Timeline {
	return New(scene.NewScene(), Options{})
}

func TestFadeInSampleGrid(t *testing.T) {
	tl := newTestTimeline()
	cube := scene.NewCube("cube", 1)

	tl.FadeIn(Targets(cube), Start(0), Duration(1))
	require.NoError(t, tl.Err())

	events := tl.Events()
	require.Len(t, events, 51) // round(1/0.02)+1 inclusive samples

	prev := math.Inf(-1)
	for _, e := range events {
		assert.Equal(t, "fade_in", e.Label)
		assert.Greater(t, e.Time, prev, "times must be strictly increasing")
		prev = e.Time
	}

	first := events[0].Payload.(AlphaPayload)
	last := events[len(events)-1].Payload.(AlphaPayload)
	assert.InDelta(t, 0.0, first.Value, 1e-9)
	assert.InDelta(t, 1.0, last.Value, 1e-9)
	assert.InDelta(t, 0.0, events[0].Time, 1e-9)
	assert.InDelta(t, 1.0, events[len(events)-1].Time, 1e-9)
}

func TestDurationSnapsToResolution(t *testing.T) {
	tl := newTestTimeline()
	cube := scene.NewCube("cube", 1)

	// 0.07s at 0.02s resolution rounds half up to 4 steps = 5 samples.
	tl.FadeIn(Targets(cube), Start(0), Duration(0.07))
	require.NoError(t, tl.Err())

	events := tl.Events()
	require.Len(t, events, 5)
	assert.InDelta(t, 0.08, events[len(events)-1].Time, 1e-9)
}

func TestZeroDurationSingleSample(t *testing.T) {
	tl := newTestTimeline()
	cube := scene.NewCube("cube", 1)

	tl.SwitchOn(Targets(cube), Start(0.5))
	require.NoError(t, tl.Err())

	events := tl.Events()
	require.Len(t, events, 1)
	assert.InDelta(t, 0.5, events[0].Time, 1e-9)
	assert.InDelta(t, 1.0, events[0].Payload.(AlphaPayload).Value, 1e-9)
}

func TestOmittedArgumentsContinue(t *testing.T) {
	tl := newTestTimeline()
	cube := scene.NewCube("cube", 1)

	tl.FadeIn(Targets(cube), Start(1), Duration(2))
	tl.FadeOut() // no targets, no start, no duration
	require.NoError(t, tl.Err())

	events := tl.Events()
	require.Len(t, events, 202)

	// The second declaration picks up where the first ended: start 3,
	// duration 2, same target.
	out := events[101:]
	assert.Equal(t, "fade_out", out[0].Label)
	assert.InDelta(t, 3.0, out[0].Time, 1e-9)
	assert.InDelta(t, 5.0, out[len(out)-1].Time, 1e-9)
	require.Len(t, out[0].Targets, 1)
	assert.Same(t, cube, out[0].Targets[0].(*scene.Mesh))
}

func TestFirstCallWithoutTargetsFails(t *testing.T) {
	tl := newTestTimeline()

	tl.FadeIn(Start(0), Duration(1))
	assert.ErrorIs(t, tl.Err(), ErrMissingTarget)
	assert.Empty(t, tl.Events())
}

func TestErrorLatchesAndSilencesLaterCalls(t *testing.T) {
	tl := newTestTimeline()
	cube := scene.NewCube("cube", 1)

	tl.FadeIn(Start(0), Duration(1)) // fails: no target yet
	first := tl.Err()
	require.Error(t, first)

	tl.FadeIn(Targets(cube), Start(0), Duration(1)) // valid, but latched
	assert.Same(t, first, tl.Err(), "first error must stick")
	assert.Empty(t, tl.Events())
}

func TestMoveRejectsMultipleTargets(t *testing.T) {
	tl := newTestTimeline()
	a := scene.NewCube("a", 1)
	b := scene.NewCube("b", 1)

	tl.Move(scene.Vec3{X: 1}, Targets(a, b), Start(0), Duration(1))
	assert.ErrorIs(t, tl.Err(), ErrInvalidTargetCount)
}

func TestMoveRejectsUnknownStyle(t *testing.T) {
	tl := newTestTimeline()
	cube := scene.NewCube("cube", 1)

	tl.Move(scene.Vec3{X: 1}, Targets(cube), Start(0), Duration(1), Style("bounce"))
	assert.ErrorIs(t, tl.Err(), ErrUnknownStyle)
}

func TestMoveLinearReachesDestination(t *testing.T) {
	tl := newTestTimeline()
	cube := scene.NewCube("cube", 1)
	dest := scene.Vec3{X: 2, Y: -1, Z: 0.5}

	tl.Move(dest, Targets(cube), Start(0), Duration(1))
	require.NoError(t, tl.Err())

	events := tl.Events()
	require.NotEmpty(t, events)
	last := events[len(events)-1].Payload.(MovePayload)
	assert.InDelta(t, dest.X, last.Pos.X, 1e-9)
	assert.InDelta(t, dest.Y, last.Pos.Y, 1e-9)
	assert.InDelta(t, dest.Z, last.Pos.Z, 1e-9)
}

func TestMoveQuadEasesIn(t *testing.T) {
	tl := newTestTimeline()
	cube := scene.NewCube("cube", 1)

	tl.Move(scene.Vec3{X: 1}, Targets(cube), Start(0), Duration(1), Style("quad"))
	require.NoError(t, tl.Err())

	events := tl.Events()
	mid := events[len(events)/2].Payload.(MovePayload)
	// Quadratic easing lags behind linear in the first half.
	assert.Less(t, mid.Pos.X, 0.5)
	last := events[len(events)-1].Payload.(MovePayload)
	assert.InDelta(t, 1.0, last.Pos.X, 1e-9)
}

func TestChangeColorEndpoints(t *testing.T) {
	tl := newTestTimeline()
	cube := scene.NewCube("cube", 1)
	from := scene.RGB{R: 1, G: 0, B: 0}
	to := scene.RGB{R: 0, G: 0, B: 1}
	cube.SetColor(from)

	tl.ChangeColor(to, Targets(cube), Start(0), Duration(1))
	require.NoError(t, tl.Err())

	events := tl.Events()
	first := events[0].Payload.(ColorPayload).Colors[0]
	last := events[len(events)-1].Payload.(ColorPayload).Colors[0]
	assert.InDelta(t, from.R, first.R, 1e-9)
	assert.InDelta(t, from.B, first.B, 1e-9)
	assert.InDelta(t, to.R, last.R, 1e-9)
	assert.InDelta(t, to.B, last.B, 1e-9)
}

func TestChangeBackColorSkipsTargetsWithoutOne(t *testing.T) {
	tl := newTestTimeline()
	plain := scene.NewCube("plain", 1)
	backed := scene.NewCube("backed", 1)
	backed.SetBackColor(scene.RGB{R: 1})

	tl.ChangeBackColor(scene.RGB{B: 1}, Targets(plain, backed), Start(0), Duration(1))
	require.NoError(t, tl.Err())

	events := tl.Events()
	p := events[0].Payload.(BackColorPayload)
	assert.Nil(t, p.Colors[0])
	assert.NotNil(t, p.Colors[1])
}

func TestChangeLightingUnknownStyle(t *testing.T) {
	tl := newTestTimeline()
	cube := scene.NewCube("cube", 1)

	tl.ChangeLighting("sparkly", Targets(cube), Start(0), Duration(1))
	assert.ErrorIs(t, tl.Err(), ErrUnknownStyle)
}

func TestChangeLightingReachesStyle(t *testing.T) {
	tl := newTestTimeline()
	cube := scene.NewCube("cube", 1)

	tl.ChangeLighting("metallic", Targets(cube), Start(0), Duration(1))
	require.NoError(t, tl.Err())

	events := tl.Events()
	last := events[len(events)-1].Payload.(LightingPayload).Coeffs[0]
	want := lightingStyles["metallic"]
	assert.InDelta(t, want.Ambient, last.Ambient, 1e-9)
	assert.InDelta(t, want.Diffuse, last.Diffuse, 1e-9)
	assert.InDelta(t, want.Specular, last.Specular, 1e-9)
	assert.InDelta(t, want.SpecularPower, last.SpecularPower, 1e-9)
}

func TestRotateSplitsAngleEvenly(t *testing.T) {
	tl := newTestTimeline()
	cube := scene.NewCube("cube", 1)

	tl.Rotate(scene.AxisZ, 90, Targets(cube), Start(0), Duration(1))
	require.NoError(t, tl.Err())

	events := tl.Events()
	total := 0.0
	for _, e := range events {
		total += e.Payload.(RotatePayload).Angle
	}
	assert.InDelta(t, 90.0, total, 1e-9)
}

func TestMeshErodeSkipsDegenerateSamples(t *testing.T) {
	tl := newTestTimeline()
	cube := scene.NewCube("cube", 2)

	tl.MeshErode(0, Targets(cube), Start(0), Duration(1))
	require.NoError(t, tl.Err())

	events := tl.Events()
	// The first sample sits exactly on a cube vertex, so its radius is
	// zero and it is skipped.
	assert.Less(t, len(events), 51)
	require.NotEmpty(t, events)

	// The final radius exceeds the bounding-box diagonal: every point is in.
	last := events[len(events)-1].Payload.(ErodePayload)
	assert.Len(t, last.IDs, cube.NPoints())
}

func TestMeshErodeCornerOutOfRange(t *testing.T) {
	tl := newTestTimeline()
	cube := scene.NewCube("cube", 1)

	tl.MeshErode(8, Targets(cube), Start(0), Duration(1))
	assert.Error(t, tl.Err())
}

func TestTargetsRegisteredOnStage(t *testing.T) {
	stage := scene.NewScene()
	tl := New(stage, Options{})
	cube := scene.NewCube("cube", 1)

	tl.FadeIn(Targets(cube), Start(0), Duration(0.1))
	tl.FadeOut() // reuses the same target: no duplicate registration
	require.NoError(t, tl.Err())
	assert.Equal(t, 1, stage.Len())
}

func TestCustomResolution(t *testing.T) {
	tl := New(scene.NewScene(), Options{TimeResolution: 0.1})
	cube := scene.NewCube("cube", 1)

	tl.FadeIn(Targets(cube), Start(0), Duration(1))
	require.NoError(t, tl.Err())
	assert.Len(t, tl.Events(), 11)
}
