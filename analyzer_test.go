package hnsw

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnalyzer_EmptyGraph(t *testing.T) {
	g := buildTestGraph(t, nil, Params{M: 2, M0: 4, Ml: 0.5, EfConstruction: 4}, 1)
	a := &Analyzer{Graph: g}

	require.Equal(t, 0, a.Height())
	require.Empty(t, a.Topography())
	require.Empty(t, a.Connectivity())
}

func TestAnalyzer_HeightMatchesMaxLayer(t *testing.T) {
	vectors := randomVectors(200, 8, 40)
	g := buildTestGraph(t, vectors, Params{M: 8, M0: 16, Ml: 0.3, EfConstruction: 32}, 40)
	a := &Analyzer{Graph: g}

	require.Equal(t, g.maxLayer+1, a.Height())
}

func TestAnalyzer_TopographyIsNonIncreasingByLayer(t *testing.T) {
	vectors := randomVectors(200, 8, 41)
	g := buildTestGraph(t, vectors, Params{M: 8, M0: 16, Ml: 0.3, EfConstruction: 32}, 41)
	a := &Analyzer{Graph: g}

	topo := a.Topography()
	require.Len(t, topo, g.maxLayer+1)
	require.Equal(t, g.Len(), topo[0])
	for i := 1; i < len(topo); i++ {
		require.LessOrEqual(t, topo[i], topo[i-1])
	}
}

func TestAnalyzer_ConnectivityMatchesLayerCount(t *testing.T) {
	vectors := randomVectors(150, 8, 42)
	g := buildTestGraph(t, vectors, Params{M: 8, M0: 16, Ml: 0.3, EfConstruction: 32}, 42)
	a := &Analyzer{Graph: g}

	conn := a.Connectivity()
	require.Len(t, conn, g.maxLayer+1)
	for _, avg := range conn {
		require.GreaterOrEqual(t, avg, 0.0)
	}
}
