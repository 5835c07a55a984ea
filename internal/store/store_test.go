package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symls-lang/symls/internal/store"
	"github.com/symls-lang/symls/internal/values"
)

func noIndex(string) (int64, error) { return 0, nil }

func TestResolve_Scalar(t *testing.T) {
	st := store.New()
	st.DeclareInteger("x", 5)
	st.DeclareText("name", "ada")
	st.DeclareReal("pi", 3.14)

	ref, err := st.Resolve("x", 1, noIndex)
	require.NoError(t, err)
	require.True(t, ref.Found())
	v, ok := ref.GetInt()
	require.True(t, ok)
	assert.Equal(t, int64(5), v)

	ref, err = st.Resolve("name", 1, noIndex)
	require.NoError(t, err)
	text, ok := ref.GetText()
	require.True(t, ok)
	assert.Equal(t, "ada", text)
}

func TestResolve_NotFound(t *testing.T) {
	st := store.New()
	ref, err := st.Resolve("nope", 1, noIndex)
	require.NoError(t, err)
	assert.False(t, ref.Found())
	assert.Equal(t, values.KindNotFound, ref.Kind)
}

func TestResolve_Array(t *testing.T) {
	st := store.New()
	st.DeclareIntegerArray("scores", 3, 0)

	ref, err := st.Resolve("scores-1", 1, func(expr string) (int64, error) {
		assert.Equal(t, "1", expr)
		return 1, nil
	})
	require.NoError(t, err)
	require.True(t, ref.Found())
	*ref.Int = 42

	ref, err = st.Resolve("scores-1", 1, func(string) (int64, error) { return 1, nil })
	require.NoError(t, err)
	v, _ := ref.GetInt()
	assert.Equal(t, int64(42), v)
}

func TestResolve_ArrayOutOfBounds(t *testing.T) {
	st := store.New()
	st.DeclareIntegerArray("scores", 3, 0)

	_, err := st.Resolve("scores-5", 7, func(string) (int64, error) { return 5, nil })
	require.Error(t, err)
}

func TestPartitioned(t *testing.T) {
	st := store.New()
	assert.False(t, st.Partitioned("x"))
	st.DeclareInteger("x", 0)
	assert.True(t, st.Partitioned("x"))
}
