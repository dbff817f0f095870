package epipolar

// actionMatrix assembles the 10x10 action matrix representing
// multiplication by z on the quotient-algebra basis
// {x2, xy, y2, xz, yz, z2, x, y, z, 1}.
//
// Rows 0-5 are the negated rows of G selected below; rows 6-9 are unit
// vectors, encoding that z*(x,y,z,1) is already expressed in the basis
// as (xz, yz, z2, z).
func actionMatrix(g groebnerMatrix) [10][10]float64 {
	var a [10][10]float64

	negRows := []int{0, 1, 2, 4, 5, 7}
	for dstRow, srcRow := range negRows {
		for c := 0; c < 10; c++ {
			a[dstRow][c] = -g[srcRow][c]
		}
	}

	unitCols := []int{0, 1, 3, 6}
	for i, col := range unitCols {
		a[6+i][col] = 1
	}

	return a
}
