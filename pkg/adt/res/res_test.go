package res

import (
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/adt/pkg/adt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortHandsMatchConstructors(t *testing.T) {
	t.Parallel()

	r := Ok[int, string](123)
	assert.True(t, r.IsOk())
	assert.Equal(t, 123, r.Get())
	assert.True(t, r.Equal(adt.Ok[int, string](123)))

	r = Err[int, string]("e")
	assert.True(t, r.IsErr())
	assert.Equal(t, "e", r.GetErr())
	assert.True(t, r.Equal(adt.Err[int, string]("e")))
}

func TestAndThenTo_Chaining(t *testing.T) {
	t.Parallel()

	r := AndThenTo(
		AndThenTo(Ok[int, int](2), func(v int) adt.Result[int, int] { return Ok[int, int](2 * v) }),
		func(v int) adt.Result[int, int] { return Err[int, int](v) })

	require.True(t, r.IsErr())
	assert.Equal(t, 4, r.GetErr())
}

func TestAndThenTo_ShortCircuitOnErr(t *testing.T) {
	t.Parallel()

	called := false
	r := AndThenTo(Err[int, string]("boom"), func(v int) adt.Result[string, string] {
		called = true
		return Ok[string, string]("x")
	})

	assert.False(t, called)
	assert.True(t, r.Equal(Err[string, string]("boom")))
}

func TestOrElseTo_Recovery(t *testing.T) {
	t.Parallel()

	r := OrElseTo(
		OrElseTo(Err[int, int](4), func(v int) adt.Result[int, int] { return Err[int, int](v - 2) }),
		func(v int) adt.Result[int, int] { return Ok[int, int](2 * v) })

	require.True(t, r.IsOk())
	assert.Equal(t, 4, r.Get())
}

func TestOrElseTo_ShortCircuitOnOk(t *testing.T) {
	t.Parallel()

	called := false
	r := OrElseTo(Ok[int, string](1), func(e string) adt.Result[int, error] {
		called = true
		return Err[int, error](errors.New(e))
	})

	assert.False(t, called)
	assert.True(t, r.Equal(Ok[int, error](1)))
}

func TestAndThen(t *testing.T) {
	t.Parallel()

	r := AndThen(Ok[int, string](5), strconv.Itoa)
	assert.True(t, r.Equal(Ok[string, string]("5")))

	called := false
	r = AndThen(Err[int, string]("e"), func(v int) string {
		called = true
		return ""
	})
	assert.False(t, called)
	assert.True(t, r.Equal(Err[string, string]("e")))
}

func TestOrElse(t *testing.T) {
	t.Parallel()

	r := OrElse(Err[string, int](1), func(e int) string { return "err" })
	require.True(t, r.IsErr())
	assert.Equal(t, "err", r.GetErr())

	called := false
	r = OrElse(Ok[string, int]("foo"), func(e int) string {
		called = true
		return "err"
	})
	assert.False(t, called)
	assert.Equal(t, "foo", r.Get())
}

func TestMapOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "3", MapOr(Ok[int, string](3), "default", strconv.Itoa))

	called := false
	got := MapOr(Err[int, string]("e"), "default", func(v int) string {
		called = true
		return strconv.Itoa(v)
	})
	assert.Equal(t, "default", got)
	assert.False(t, called)
}

func TestMapOrElse(t *testing.T) {
	t.Parallel()

	var errCalls, okCalls int
	onErr := func(e string) string {
		errCalls++
		return "failed: " + e
	}
	onOk := func(v int) string {
		okCalls++
		return strconv.Itoa(v)
	}

	assert.Equal(t, "3", MapOrElse(Ok[int, string](3), onErr, onOk))
	assert.Equal(t, 0, errCalls)
	assert.Equal(t, 1, okCalls)

	assert.Equal(t, "failed: e", MapOrElse(Err[int, string]("e"), onErr, onOk))
	assert.Equal(t, 1, errCalls)
	assert.Equal(t, 1, okCalls)
}

func TestTry(t *testing.T) {
	t.Parallel()

	r := Try(func() (int, error) { return strconv.Atoi("42") })
	require.True(t, r.IsOk())
	assert.Equal(t, 42, r.Get())

	r = Try(func() (int, error) { return strconv.Atoi("x") })
	require.True(t, r.IsErr())

	var numErr *strconv.NumError
	assert.ErrorAs(t, r.GetErr(), &numErr)
}

func TestFromPairAndUnpack(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	v, err := Unpack(FromPair(7, nil))
	assert.NoError(t, err)
	assert.Equal(t, 7, v)

	v, err = Unpack(FromPair(7, boom))
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, v)
}

func TestTryChain(t *testing.T) {
	t.Parallel()

	parse := func(s string) adt.Result[int, error] {
		return Try(func() (int, error) { return strconv.Atoi(s) })
	}
	positive := func(v int) adt.Result[int, error] {
		if v <= 0 {
			return Err[int, error](errors.New("not positive"))
		}
		return Ok[int, error](v)
	}

	assert.Equal(t, 10, AndThenTo(parse("10"), positive).Get())
	assert.EqualError(t, AndThenTo(parse("-1"), positive).GetErr(), "not positive")
	assert.True(t, AndThenTo(parse("x"), positive).IsErr())
}
