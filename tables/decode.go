package tables

import "github.com/cubeforge/kociemba/cube"

// decodeCO reconstructs a representative cube.Cube whose corner-orientation
// coordinate is coord: interpret coord in base 3 to recover CO[0:7], then
// set CO[7] so the sum-zero invariant holds.
func decodeCO(coord int) *cube.Cube {
	c := cube.New()
	sum := 0
	for i := cube.NumCorners - 2; i >= 0; i-- {
		d := coord % 3
		c.CO[i] = d
		sum += d
		coord /= 3
	}
	c.CO[cube.NumCorners-1] = (3 - sum%3) % 3
	return c
}

// decodeEO reconstructs a representative cube.Cube whose edge-orientation
// coordinate is coord, analogous to decodeCO but base 2.
func decodeEO(coord int) *cube.Cube {
	c := cube.New()
	sum := 0
	for i := cube.NumEdges - 2; i >= 0; i-- {
		d := coord % 2
		c.EO[i] = d
		sum += d
		coord /= 2
	}
	c.EO[cube.NumEdges-1] = (2 - sum%2) % 2
	return c
}

// decodeUDS reconstructs a representative cube.Cube whose UD-slice
// coordinate is coord. For n from 11 down to 0 it either places the next
// slice-edge marker (cubie values 8..11, in no particular internal order)
// or the next non-slice-edge marker (cubie values 0..7); which of the two
// classes lands at which position is the only thing coord determines, and
// any consistent labeling within each class is acceptable because the
// coordinate is invariant under permutations within a class.
func decodeUDS(coord int) *cube.Cube {
	c := cube.New()
	k := 4
	sliceNext := cube.SliceEdgeThreshold
	otherNext := 0
	for n := cube.NumEdges - 1; n >= 0; n-- {
		comb := cube.Comb(n, k)
		if k > 0 && coord >= comb {
			c.EP[n] = sliceNext
			sliceNext++
			coord -= comb
			k--
		} else {
			c.EP[n] = otherNext
			otherNext++
		}
	}
	return c
}

// decodeCP reconstructs a representative cube.Cube whose corner-
// permutation coordinate is coord: CP is the length-8 permutation with
// Lehmer-code rank coord (cube.PermFromIndex), CO/EP/EO stay solved,
// since phase-2 moves never touch orientation and this table is built
// with the phase-2 move set alone.
func decodeCP(coord int) *cube.Cube {
	c := cube.New()
	copy(c.CP[:], cube.PermFromIndex(coord, cube.NumCorners))
	return c
}

// decodeEP reconstructs a representative cube.Cube whose U/D-edge-
// permutation coordinate is coord: EP[0:8] is the length-8 permutation
// with Lehmer-code rank coord; EP[8:12] stays the solved slice-edge
// identity (cube.New already sets it), which phase-2 moves never mix
// with EP[0:8] (see cube/moves.go's edge cycles: U and D cycle four
// non-slice positions, and each of L2, R2, F2, B2 swaps two non-slice
// positions with each other and two slice positions with each other, so
// no phase-2 move carries an edge between the two classes).
func decodeEP(coord int) *cube.Cube {
	c := cube.New()
	copy(c.EP[:cube.NumEdges-4], cube.PermFromIndex(coord, cube.NumEdges-4))
	return c
}

// decodeSliceEP reconstructs a representative cube.Cube whose slice-edge-
// permutation coordinate is coord: EP[8:12] is the length-4 permutation
// with Lehmer-code rank coord, relabeled back up by
// cube.SliceEdgeThreshold; EP[0:8] stays the solved identity.
func decodeSliceEP(coord int) *cube.Cube {
	c := cube.New()
	perm := cube.PermFromIndex(coord, 4)
	for i, v := range perm {
		c.EP[cube.NumEdges-4+i] = v + cube.SliceEdgeThreshold
	}
	return c
}
