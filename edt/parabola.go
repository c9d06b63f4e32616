package edt

// parabola evaluates f_i(x) = (x-i)² + g², the squared distance from column
// x to the nearest feature reachable through column i, where g is the
// vertical distance recorded for column i.
func parabola(x, i, g int) int {
	d := x - i
	return d*d + g*g
}

// separation returns, for i < u, the last integer x at which the parabola of
// column i is not above the parabola of column u; from x+1 on, u wins:
//
//	Sep(i, u) = floor((u² - i² + gu² - gi²) / (2(u - i)))
//
// Sep(i, i) is defined as 0.
func separation(i, u, gi, gu int) int {
	if i == u {
		return 0
	}

	return floorDiv(u*u-i*i+gu*gu-gi*gi, 2*(u-i))
}

// floorDiv divides rounding toward negative infinity. b must be non-zero.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}
