package cube

// Comb returns the binomial coefficient C(n, k), or 0 if k is out of
// [0, n]. Symmetric reduction (k = min(k, n-k)) and integer-only
// accumulation avoid both overflow-prone factorials and floating-point
// rounding.
func Comb(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	if k == 0 {
		return 1
	}
	numer := 1
	for i := 0; i < k; i++ {
		numer = numer * (n - i) / (i + 1)
	}
	return numer
}

// NumCOCoords, NumEOCoords and NumUDSCoords are the sizes of the three
// coordinate spaces: 3^7, 2^11 and C(12,4) respectively.
const (
	NumCOCoords  = 2187
	NumEOCoords  = 2048
	NumUDSCoords = 495
)

// SolvedUDSCoord is the UD-slice coordinate of the solved state: slice
// edges (8,9,10,11) occupy slice positions, giving
// C(11,4)+C(10,3)+C(9,2)+C(8,1) = 494.
const SolvedUDSCoord = 494

// SliceEdgeThreshold is the smallest edge-cubie value considered a
// UD-slice edge (cubies 8,9,10,11).
const SliceEdgeThreshold = 8

// CornerOrientationCoord encodes c.CO[0:7] in base 3. CO[7] is the implied
// eighth orientation (sum-zero invariant) and is not part of the encoding.
func (c *Cube) CornerOrientationCoord() int {
	coord := 0
	for i := 0; i < NumCorners-1; i++ {
		coord = coord*3 + c.CO[i]
	}
	return coord
}

// EdgeOrientationCoord encodes c.EO[0:11] in base 2. EO[11] is the implied
// twelfth orientation and is not part of the encoding.
func (c *Cube) EdgeOrientationCoord() int {
	coord := 0
	for i := 0; i < NumEdges-1; i++ {
		coord = coord*2 + c.EO[i]
	}
	return coord
}

// UDSliceCoord returns the combinatorial index of the set of edge slots
// holding a UD-slice edge (cubie value >= 8), scanning positions from 11
// down to 0 and consuming C(n,k) terms with k decrementing from 4.
func (c *Cube) UDSliceCoord() int {
	coord := 0
	k := 4
	for n := NumEdges - 1; n >= 0 && k > 0; n-- {
		if c.EP[n] >= SliceEdgeThreshold {
			coord += Comb(n, k)
			k--
		}
	}
	return coord
}

// NumCPCoords, NumEPCoords and NumSliceEPCoords are the sizes of the three
// phase-2-only permutation coordinate spaces: 8!, 8! and 4! respectively.
// They are meaningful only once the phase-1 goal (CO, EO and UDS all
// solved) has been reached: phase 2 additionally tracks corner
// permutation and edge permutation (U/D edges and slice edges) so its
// goal test requires those coordinates, not only UDS membership, to
// reach solved.
const (
	NumCPCoords      = 40320 // 8!
	NumEPCoords      = 40320 // 8!
	NumSliceEPCoords = 24    // 4!
)

// CornerPermCoord is the Lehmer-code rank of the corner permutation CP,
// a full permutation of {0,...,7}.
func (c *Cube) CornerPermCoord() int {
	return PermIndex(c.CP[:])
}

// EdgePermCoord is the Lehmer-code rank of the eight U/D-layer edges'
// permutation (EP[0:8]), which is itself a permutation of {0,...,7}
// whenever the cube is in the phase-1 goal subgroup (slice edges occupy
// positions 8..11, so positions 0..7 hold exactly the non-slice edges).
func (c *Cube) EdgePermCoord() int {
	return PermIndex(c.EP[:NumEdges-4])
}

// SliceEdgePermCoord is the Lehmer-code rank of the four slice edges'
// permutation (EP[8:12]), relabeled to {0,...,3} by subtracting
// SliceEdgeThreshold. Like EdgePermCoord, meaningful only within G1.
func (c *Cube) SliceEdgePermCoord() int {
	rel := make([]int, 4)
	for i, v := range c.EP[NumEdges-4:] {
		rel[i] = v - SliceEdgeThreshold
	}
	return PermIndex(rel)
}
