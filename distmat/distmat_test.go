// Package distmat_test validates matrix construction, accessors, and the
// letter-labeled pretty printer.
package distmat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orel33/tsp/distmat"
)

func TestNew_RejectsTinySizes(t *testing.T) {
	for _, size := range []int{-1, 0, 1} {
		_, err := distmat.New(size)
		assert.ErrorIsf(t, err, distmat.ErrBadSize, "size=%d", size)
	}

	m, err := distmat.New(3)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Size())
	assert.Zero(t, m.At(1, 2))
}

func TestNewFromRows_Validation(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
		want error
	}{
		{
			name: "single row",
			rows: [][]int{{0}},
			want: distmat.ErrBadSize,
		},
		{
			name: "ragged rows",
			rows: [][]int{{0, 1}, {1, 0, 2}},
			want: distmat.ErrNonSquare,
		},
		{
			name: "negative entry",
			rows: [][]int{{0, -1}, {-1, 0}},
			want: distmat.ErrNegativeDistance,
		},
		{
			name: "asymmetric pair",
			rows: [][]int{{0, 1, 2}, {1, 0, 3}, {2, 4, 0}},
			want: distmat.ErrAsymmetry,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := distmat.NewFromRows(tc.rows)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewFromRows_CopiesInput(t *testing.T) {
	rows := [][]int{
		{0, 2},
		{2, 0},
	}
	m, err := distmat.NewFromRows(rows)
	require.NoError(t, err)

	// Mutating the caller's rows afterwards must not affect the matrix.
	rows[0][1] = 99
	assert.Equal(t, 2, m.At(0, 1))
}

func TestSet_MirrorsSymmetrically(t *testing.T) {
	m, err := distmat.New(3)
	require.NoError(t, err)

	m.Set(0, 2, 7)
	assert.Equal(t, 7, m.At(0, 2))
	assert.Equal(t, 7, m.At(2, 0))
}

func TestClone_IsIndependent(t *testing.T) {
	m, err := distmat.Random(4, 1, 10)
	require.NoError(t, err)

	c := m.Clone()
	require.Equal(t, m.Size(), c.Size())
	assert.Equal(t, m.At(1, 3), c.At(1, 3))

	c.Set(1, 3, 99)
	assert.NotEqual(t, m.At(1, 3), c.At(1, 3))
}

func TestCityName(t *testing.T) {
	assert.Equal(t, "A", distmat.CityName(0))
	assert.Equal(t, "D", distmat.CityName(3))
	assert.Equal(t, "Z", distmat.CityName(25))
}

func TestString_LetterLabeledTable(t *testing.T) {
	m, err := distmat.NewFromRows([][]int{
		{0, 2, 4},
		{2, 0, 3},
		{4, 3, 0},
	})
	require.NoError(t, err)

	want := "" +
		"     A  B  C \n" +
		"  ------------\n" +
		"A |  0  2  4 |\n" +
		"B |  2  0  3 |\n" +
		"C |  4  3  0 |\n" +
		"  ------------\n"
	assert.Equal(t, want, m.String())
}
