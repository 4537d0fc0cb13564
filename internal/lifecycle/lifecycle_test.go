package lifecycle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeInstance struct {
	closed bool
}

func (f *fakeInstance) Close_() { f.closed = true }

func (*fakeInstance) String() string { return "fakeInstance" }

func TestStart(t *testing.T) {
	t.Parallel()

	inst := &fakeInstance{}
	m := NewManager[*fakeInstance](inst)
	err := m.Start(func(*fakeInstance) error { return nil })
	require.NoError(t, err)
}

func TestErrorStart(t *testing.T) {
	t.Parallel()

	inst := &fakeInstance{}
	m := NewManager[*fakeInstance](inst)
	err := m.Start(func(*fakeInstance) error { return errors.New("boom") })
	require.Error(t, err)
}

func TestStartAfterStart(t *testing.T) {
	t.Parallel()

	inst := &fakeInstance{}
	m := NewManager[*fakeInstance](inst)
	err := m.Start(func(*fakeInstance) error { return nil })
	require.NoError(t, err)

	err = m.Start(func(*fakeInstance) error { return nil })
	target := &StartedAlreadyError{}
	require.ErrorAs(t, err, &target)
}

func TestStartRecoversPanic(t *testing.T) {
	t.Parallel()

	inst := &fakeInstance{}
	m := NewManager[*fakeInstance](inst)
	err := m.Start(func(*fakeInstance) error {
		panic("malformed bitstream index out of range")
	})
	require.Error(t, err)

	m.Close()
	require.True(t, inst.closed)
}

func TestClose(t *testing.T) {
	t.Parallel()

	inst := &fakeInstance{}
	m := NewManager[*fakeInstance](inst)
	err := m.Start(func(*fakeInstance) error { return nil })
	require.NoError(t, err)

	m.Close()
	require.True(t, inst.closed)
}

func TestCloseBeforeStart(t *testing.T) {
	t.Parallel()

	inst := &fakeInstance{}
	m := NewManager[*fakeInstance](inst)
	m.Close()
	require.True(t, inst.closed)
}

func TestStartAfterClose(t *testing.T) {
	t.Parallel()

	inst := &fakeInstance{}
	m := NewManager[*fakeInstance](inst)
	m.Close()

	err := m.Start(func(*fakeInstance) error { return nil })
	target := &StartedAfterCloseError{}
	require.ErrorAs(t, err, &target)
}
