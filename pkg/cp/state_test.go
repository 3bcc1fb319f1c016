package cp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrailerRestoresLastValueBeforeFrame(t *testing.T) {
	sm := NewTrailer()
	x := sm.MakeStateInt(0)

	sm.SaveState()
	x.SetValue(1)
	x.SetValue(2)
	x.SetValue(3)
	require.Equal(t, 3, x.Value())

	sm.RestoreState()
	require.Equal(t, 0, x.Value(), "several writes within one frame must collapse to the pre-frame value")
}

func TestTrailerNestedFrames(t *testing.T) {
	sm := NewTrailer()
	x := sm.MakeStateInt(10)

	sm.SaveState()
	x.SetValue(20)
	sm.SaveState()
	x.SetValue(30)
	require.Equal(t, 1, sm.Level())

	sm.RestoreState()
	require.Equal(t, 20, x.Value())
	sm.RestoreState()
	require.Equal(t, 10, x.Value())
	require.Equal(t, -1, sm.Level())
}

func TestCopierMatchesTrailerSemantics(t *testing.T) {
	sm := NewCopier()
	x := sm.MakeStateInt(0)
	b := sm.MakeStateBool(false)

	sm.SaveState()
	x.SetValue(5)
	b.SetValue(true)
	sm.RestoreState()

	require.Equal(t, 0, x.Value())
	require.False(t, b.Value())
}

func TestWithNewStateRestoresOnError(t *testing.T) {
	sm := NewTrailer()
	x := sm.MakeStateInt(1)

	err := sm.WithNewState(func() error {
		x.SetValue(99)
		return ErrInconsistency
	})
	require.ErrorIs(t, err, ErrInconsistency)
	require.Equal(t, 1, x.Value())
}

func TestOnRestoreListenerFires(t *testing.T) {
	sm := NewTrailer()
	calls := 0
	sm.OnRestore(func() { calls++ })

	sm.SaveState()
	sm.RestoreState()
	require.Equal(t, 1, calls)
}
