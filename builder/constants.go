// Package builder defines shared constants used by graph builders, ensuring
// consistent validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodIsolated is the canonical name for the Isolated constructor.
	MethodIsolated = "Isolated"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinIsolatedNodes is the smallest meaningful size for an edgeless block.
const MinIsolatedNodes = 1

// MinPathNodes is the smallest meaningful size for a simple path.
// A path of fewer than 2 nodes has no edges.
const MinPathNodes = 2

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
// A cycle with fewer than 3 nodes cannot form a valid ring without loops
// or multi-edges.
const MinCycleNodes = 3

// MinStarNodes is the smallest meaningful size for a star: one hub plus at
// least one leaf.
const MinStarNodes = 2

// MinCompleteNodes is the smallest meaningful size for K_n.
const MinCompleteNodes = 1

// MinGridSide is the smallest meaningful side length of a grid.
const MinGridSide = 1
