package roll

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

var epoch = time.Unix(1000, 0)

func mountedAnimator() *Animator {
	a := NewAnimator()
	a.Mount(NewNode(mgl64.Vec3{}), NewNode(mgl64.Vec3{}))
	return a
}

// roll issues dir at *now and runs the animation to completion
func roll(t *testing.T, a *Animator, dir Direction, now *time.Time) {
	t.Helper()
	if !a.Move(dir, *now) {
		t.Fatalf("Move(%v) dropped", dir)
	}
	*now = now.Add(a.Duration())
	if !a.Update(*now) {
		t.Fatalf("Update after Move(%v) did not commit", dir)
	}
}

func bodyCenter(a *Animator) mgl64.Vec3 {
	return a.BodyWorld().Col(3).Vec3()
}

func TestRollClosureSameDirection(t *testing.T) {
	for _, dir := range []Direction{Up, Down, Left, Right} {
		t.Run(dir.String(), func(t *testing.T) {
			a := mountedAnimator()
			now := epoch
			m := moves[dir]

			for i := 0; i < 4; i++ {
				roll(t, a, dir, &now)
			}

			s := a.State()
			if !s.Orientation.IsIdentity() {
				t.Errorf("Closure failed: expected identity orientation, got %v", s.Orientation)
			}
			expected := GridPos{X: 4 * m.dx, Z: 4 * m.dz}
			if s.Grid != expected {
				t.Errorf("Closure failed: expected grid %v, got %v", expected, s.Grid)
			}
			if !a.Body().Rotation.Mat4().ApproxEqualThreshold(mgl64.Ident4(), 1e-12) {
				t.Errorf("Closure failed: body rotation not identity: %v", a.Body().Rotation)
			}
		})
	}
}

func TestRollClosureOppositePairs(t *testing.T) {
	pairs := [][2]Direction{{Up, Down}, {Down, Up}, {Left, Right}, {Right, Left}}

	for _, pair := range pairs {
		a := mountedAnimator()
		now := epoch
		roll(t, a, pair[0], &now)
		roll(t, a, pair[1], &now)

		s := a.State()
		if s.Grid != (GridPos{}) || !s.Orientation.IsIdentity() {
			t.Errorf("%v then %v failed: expected origin/identity, got %v %v", pair[0], pair[1], s.Grid, s.Orientation)
		}
		if !bodyCenter(a).ApproxEqualThreshold(mgl64.Vec3{0.5, 0.5, 0.5}, 1e-9) {
			t.Errorf("%v then %v failed: body centre drifted to %v", pair[0], pair[1], bodyCenter(a))
		}
	}
}

func TestRollSquareLoopReturnsToOrigin(t *testing.T) {
	a := mountedAnimator()
	now := epoch

	for i := 0; i < 25; i++ {
		for _, dir := range []Direction{Up, Right, Down, Left} {
			roll(t, a, dir, &now)
		}
	}

	if g := a.State().Grid; g != (GridPos{}) {
		t.Errorf("Loop failed: expected origin, got %v", g)
	}
	if p := a.Pivot(); p.Position != (mgl64.Vec3{}) || p.Rotation != mgl64.QuatIdent() {
		t.Errorf("Loop failed: pivot not at rest: %+v", p)
	}
	if b := a.Body().Position; b != a.RestOffset() {
		t.Errorf("Loop failed: body offset drifted to %v", b)
	}
}

func TestLockExclusivity(t *testing.T) {
	a := mountedAnimator()
	commits := 0
	a.OnCommit(func(State) { commits++ })

	if !a.Move(Right, epoch) {
		t.Fatal("First move dropped")
	}
	if a.Move(Left, epoch.Add(100*time.Millisecond)) {
		t.Error("Lock failed: second move accepted while rotating")
	}
	if a.Move(Right, epoch.Add(299*time.Millisecond)) {
		t.Error("Lock failed: move accepted just before commit")
	}

	a.Update(epoch.Add(300 * time.Millisecond))
	a.Update(epoch.Add(600 * time.Millisecond))

	if commits != 1 {
		t.Errorf("Lock failed: expected 1 commit, got %d", commits)
	}
	if g := a.State().Grid; g != (GridPos{X: 1}) {
		t.Errorf("Lock failed: expected grid (1, 0), got %v", g)
	}
}

func TestMoveCommitsFinishedRollFirst(t *testing.T) {
	a := mountedAnimator()

	a.Move(Left, epoch)
	// No frame ran between the end of the first roll and the next key press
	if !a.Move(Left, epoch.Add(400*time.Millisecond)) {
		t.Fatal("Move failed: finished roll still holds the lock")
	}
	if g := a.State().Grid; g != (GridPos{X: -1}) {
		t.Errorf("Move failed: expected first roll committed, got %v", g)
	}
}

func TestScenarioRightThenLeft(t *testing.T) {
	a := mountedAnimator()
	now := epoch

	roll(t, a, Right, &now)

	s := a.State()
	if s.Grid != (GridPos{X: 1}) {
		t.Errorf("Right failed: expected grid (1, 0), got %v", s.Grid)
	}
	if a.Pivot().Rotation != mgl64.QuatIdent() {
		t.Errorf("Right failed: pivot rotation not reset: %v", a.Pivot().Rotation)
	}
	if s.Orientation != QuarterTurn(AxisZ, -1) {
		t.Errorf("Right failed: expected -90° about Z, got %v", s.Orientation)
	}
	expected := mgl64.QuatRotate(-math.Pi/2, mgl64.Vec3{0, 0, 1}).Mat4()
	if !a.Body().Rotation.Mat4().ApproxEqualThreshold(expected, 1e-12) {
		t.Errorf("Right failed: body rotation %v", a.Body().Rotation)
	}
	if c := bodyCenter(a); !c.ApproxEqualThreshold(mgl64.Vec3{1.5, 0.5, 0.5}, 1e-9) {
		t.Errorf("Right failed: expected body centre (1.5, 0.5, 0.5), got %v", c)
	}

	roll(t, a, Left, &now)

	s = a.State()
	if s.Grid != (GridPos{}) || !s.Orientation.IsIdentity() {
		t.Errorf("Left failed: expected origin/identity, got %v %v", s.Grid, s.Orientation)
	}
}

func TestCommitIsVisuallyContinuous(t *testing.T) {
	for _, dir := range []Direction{Up, Down, Left, Right} {
		t.Run(dir.String(), func(t *testing.T) {
			a := mountedAnimator()
			a.Move(dir, epoch)

			a.Update(epoch.Add(a.Duration() - time.Nanosecond))
			before := a.BodyWorld()

			a.Update(epoch.Add(a.Duration()))
			after := a.BodyWorld()

			if !before.ApproxEqualThreshold(after, 1e-6) {
				t.Errorf("Commit failed: body jumped from %v to %v", before, after)
			}
		})
	}
}

func TestArcStaysOnFloor(t *testing.T) {
	h := 0.5
	corners := []mgl64.Vec4{}
	for _, x := range []float64{-h, h} {
		for _, y := range []float64{-h, h} {
			for _, z := range []float64{-h, h} {
				corners = append(corners, mgl64.Vec4{x, y, z, 1})
			}
		}
	}

	for _, dir := range []Direction{Up, Down, Left, Right} {
		t.Run(dir.String(), func(t *testing.T) {
			a := mountedAnimator()
			a.Move(dir, epoch)

			for i := 0; i <= 10; i++ {
				a.Update(epoch.Add(a.Duration() * time.Duration(i) / 10))

				world := a.BodyWorld()
				lowest := math.Inf(1)
				for _, c := range corners {
					lowest = math.Min(lowest, world.Mul4x1(c).Y())
				}
				if math.Abs(lowest) > 1e-9 {
					t.Fatalf("Arc failed at step %d: lowest corner at y=%v, expected the cube to rest on an edge", i, lowest)
				}
			}
		})
	}
}

func TestMidArcPivotRotation(t *testing.T) {
	a := mountedAnimator()
	a.Move(Up, epoch)
	a.Update(epoch.Add(150 * time.Millisecond))

	expected := mgl64.QuatRotate(-math.Pi/4, mgl64.Vec3{1, 0, 0}).Mat4()
	if !a.Pivot().Rotation.Mat4().ApproxEqualThreshold(expected, 1e-12) {
		t.Errorf("Mid arc failed: expected -45° about X, got %v", a.Pivot().Rotation)
	}
	if !a.State().Orientation.IsIdentity() || a.State().Grid != (GridPos{}) {
		t.Error("Mid arc failed: state committed before the roll finished")
	}
	if a.Phase() != Rotating || !a.Busy() {
		t.Errorf("Mid arc failed: expected rotating, got %v", a.Phase())
	}
}

func TestTrailingMovePreOffset(t *testing.T) {
	a := mountedAnimator()
	a.Move(Down, epoch)

	if p := a.Pivot().Position; p != (mgl64.Vec3{0, 0, 1}) {
		t.Errorf("Pre-offset failed: expected pivot at (0, 0, 1), got %v", p)
	}
	if b := a.Body().Position; b != (mgl64.Vec3{0.5, 0.5, -0.5}) {
		t.Errorf("Pre-offset failed: expected body at (0.5, 0.5, -0.5), got %v", b)
	}
	// The shift is instantaneous and invisible
	if c := bodyCenter(a); !c.ApproxEqualThreshold(mgl64.Vec3{0.5, 0.5, 0.5}, 1e-12) {
		t.Errorf("Pre-offset failed: body centre moved to %v", c)
	}
}

func TestUnmountedIsNoop(t *testing.T) {
	a := NewAnimator()

	if a.Move(Up, epoch) {
		t.Error("Unmounted failed: move accepted")
	}
	if a.Update(epoch.Add(time.Second)) {
		t.Error("Unmounted failed: update committed")
	}
	if a.Busy() || a.State().Grid != (GridPos{}) {
		t.Error("Unmounted failed: state changed")
	}

	a.Mount(NewNode(mgl64.Vec3{}), nil)
	if a.Move(Up, epoch) {
		t.Error("Half mounted failed: move accepted")
	}
}

func TestMountPlacesNodesAtState(t *testing.T) {
	a := mountedAnimator()
	now := epoch
	roll(t, a, Right, &now)
	roll(t, a, Down, &now)

	pivot, body := NewNode(mgl64.Vec3{9, 9, 9}), NewNode(mgl64.Vec3{})
	a.Mount(pivot, body)

	if pivot.Position != (mgl64.Vec3{1, 0, 1}) {
		t.Errorf("Mount failed: expected pivot at (1, 0, 1), got %v", pivot.Position)
	}
	if body.Position != a.RestOffset() {
		t.Errorf("Mount failed: expected body at rest offset, got %v", body.Position)
	}
}

func TestOnCommitReceivesState(t *testing.T) {
	a := mountedAnimator()
	var got []State
	a.OnCommit(func(s State) { got = append(got, s) })

	now := epoch
	roll(t, a, Up, &now)
	roll(t, a, Up, &now)

	if len(got) != 2 {
		t.Fatalf("OnCommit failed: expected 2 calls, got %d", len(got))
	}
	if got[1].Grid != (GridPos{Z: -2}) {
		t.Errorf("OnCommit failed: expected grid (0, -2), got %v", got[1].Grid)
	}
}
