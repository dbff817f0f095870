package epipolar

// Monomial ordering for the ten cubic constraint polynomials produced by
// Nistér's five-point method. Every later stage (the Gauss-Jordan
// reduction and the action-matrix assembly) relies on this exact order.
//
//	x3, x2y, xy2, y3, x2z, xyz, y2z, xz2, yz2, z3,   (leading degree-3, cols 0..9)
//	x2,  xy,  y2,  xz,  yz,  z2,                      (degree-2, cols 10..15)
//	x,   y,   z,   1                                  (degree<=1, cols 16..19)
const (
	monoX3 = iota
	monoX2Y
	monoXY2
	monoY3
	monoX2Z
	monoXYZ
	monoY2Z
	monoXZ2
	monoYZ2
	monoZ3
	monoX2
	monoXY
	monoY2
	monoXZ
	monoYZ
	monoZ2
	monoX
	monoY
	monoZ
	monoW // the constant monomial "1"
)

const numMonomials = 20

// poly is a polynomial in (x, y, z) of total degree <= 3, stored as 20
// coefficients indexed by the monomial ordering above.
type poly [numMonomials]float64

func (p poly) add(q poly) poly {
	var r poly
	for i := range r {
		r[i] = p[i] + q[i]
	}
	return r
}

func (p poly) sub(q poly) poly {
	var r poly
	for i := range r {
		r[i] = p[i] - q[i]
	}
	return r
}

// linear is a degree-1 polynomial in (x, y, z): coefficients of x, y, z
// and the constant term, in that order — matching monomials 16..19.
type linear [4]float64

func (l linear) scale(c float64) linear {
	return linear{l[0] * c, l[1] * c, l[2] * c, l[3] * c}
}

// quad is a polynomial of total degree <= 2, stored as the 10
// coefficients of monomials 10..19 (x2, xy, y2, xz, yz, z2, x, y, z, 1).
type quad [10]float64

func (q quad) add(r quad) quad {
	var s quad
	for i := range s {
		s[i] = q[i] + r[i]
	}
	return s
}

func (q quad) sub(r quad) quad {
	var s quad
	for i := range s {
		s[i] = q[i] - r[i]
	}
	return s
}

func (q quad) scale(c float64) quad {
	var s quad
	for i := range s {
		s[i] = q[i] * c
	}
	return s
}

// mulLinLin multiplies two linear forms, producing their (total degree
// <= 2) product.
func mulLinLin(a, b linear) quad {
	ax, ay, az, aw := a[0], a[1], a[2], a[3]
	bx, by, bz, bw := b[0], b[1], b[2], b[3]
	return quad{
		ax * bx,                   // x2
		ax*by + ay*bx,              // xy
		ay * by,                   // y2
		ax*bz + az*bx,              // xz
		ay*bz + az*by,              // yz
		az * bz,                   // z2
		ax*bw + aw*bx,              // x
		ay*bw + aw*by,              // y
		az*bw + aw*bz,              // z
		aw * bw,                   // 1
	}
}

// mulLinQuad multiplies a linear form by a quadratic, producing their
// (total degree <= 3) product. The constraint expansion below only ever
// multiplies a linear form by a quadratic, so this is the one general
// product rule it needs.
func mulLinQuad(a linear, q quad) poly {
	ax, ay, az, aw := a[0], a[1], a[2], a[3]
	q0, q1, q2, q3, q4, q5, q6, q7, q8, q9 := q[0], q[1], q[2], q[3], q[4], q[5], q[6], q[7], q[8], q[9]

	var p poly
	p[monoX3] = ax * q0
	p[monoX2Y] = ax*q1 + ay*q0
	p[monoXY2] = ax*q2 + ay*q1
	p[monoY3] = ay * q2
	p[monoX2Z] = ax*q3 + az*q0
	p[monoXYZ] = ax*q4 + ay*q3 + az*q1
	p[monoY2Z] = ay*q4 + az*q2
	p[monoXZ2] = ax*q5 + az*q3
	p[monoYZ2] = ay*q5 + az*q4
	p[monoZ3] = az * q5
	p[monoX2] = ax*q6 + aw*q0
	p[monoXY] = ax*q7 + ay*q6 + aw*q1
	p[monoY2] = ay*q7 + aw*q2
	p[monoXZ] = ax*q8 + az*q6 + aw*q3
	p[monoYZ] = ay*q8 + az*q7 + aw*q4
	p[monoZ2] = az*q8 + aw*q5
	p[monoX] = ax*q9 + aw*q6
	p[monoY] = ay*q9 + aw*q7
	p[monoZ] = az*q9 + aw*q8
	p[monoW] = aw * q9
	return p
}

// rowMajorToColMajor maps a row-major 3x3 index (r*3+c) to the
// column-major index (c*3+r) that basis9 and the eigenvector
// reconstruction use. The nine entries of E are addressed row-major
// here; B0..B3 store their entries column-major (see basis9's doc
// comment), so every parametric entry construction below goes through
// this table.
var rowMajorToColMajor = [9]int{0, 3, 6, 1, 4, 7, 2, 5, 8}

// parametricEntries builds the nine degree-1 polynomials E0..E8 (row
// major) of E(x, y, z) = x*B0 + y*B1 + z*B2 + B3, the parametric form of
// the essential matrix over the four-dimensional nullspace basis.
func parametricEntries(b0, b1, b2, b3 basis9) [9]linear {
	var e [9]linear
	for k := 0; k < 9; k++ {
		idx := rowMajorToColMajor[k]
		e[k] = linear{b0[idx], b1[idx], b2[idx], b3[idx]}
	}
	return e
}

// constraintPolynomials expands the ten cubic constraints that any valid
// essential matrix must satisfy — the determinant constraint det(E) = 0
// plus the nine singular-value constraints from
// 2*E*E^T*E - trace(E*E^T)*E = 0 — into [det, C0..C8].
func constraintPolynomials(b0, b1, b2, b3 basis9) [10]poly {
	e := parametricEntries(b0, b1, b2, b3)

	// det = E4*(E0E8-E6E2) + E5*(E1E6-E0E7) + E3*(E2E7-E1E8)
	e0e8 := mulLinLin(e[0], e[8])
	e6e2 := mulLinLin(e[6], e[2])
	e1e6 := mulLinLin(e[1], e[6])
	e0e7 := mulLinLin(e[0], e[7])
	e2e7 := mulLinLin(e[2], e[7])
	e1e8 := mulLinLin(e[1], e[8])

	det := mulLinQuad(e[4], e0e8.sub(e6e2))
	det = det.add(mulLinQuad(e[5], e1e6.sub(e0e7)))
	det = det.add(mulLinQuad(e[3], e2e7.sub(e1e8)))

	// S = sum_k Ek^2
	var s quad
	for k := 0; k < 9; k++ {
		s = s.add(mulLinLin(e[k], e[k]))
	}

	var out [10]poly
	out[0] = det
	for i := 0; i < 9; i++ {
		j := i % 3

		var inner1, inner2, inner3 quad
		for t := 0; t < 3; t++ {
			inner1 = inner1.add(mulLinLin(e[t], e[3*j+t]))
			inner2 = inner2.add(mulLinLin(e[3+t], e[3*j+t]))
			inner3 = inner3.add(mulLinLin(e[6+t], e[3*j+t]))
		}

		term1 := mulLinQuad(e[j], inner1.scale(2))
		term2 := mulLinQuad(e[j+3], inner2.scale(2))
		term3 := mulLinQuad(e[j+6], inner3.scale(2))
		eiS := mulLinQuad(e[i], s)

		out[i+1] = term1.add(term2).add(term3).sub(eiS)
	}
	return out
}
