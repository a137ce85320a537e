package textwrap

import "math"

// Column minima searches over implicit totally monotone matrices,
// after the SMAWK algorithm and David Eppstein's online variant
// (Galil–Park). The optimal-fit dynamic program uses the online
// search to find, for every break boundary, the cheapest predecessor
// in close to linear total time.

// minimum records the smallest value seen in a matrix column and the
// row it came from.
type minimum struct {
	index int
	value float64
}

// concaveMinima fills out[c] with the column minimum for every column
// in cols, restricted to the given rows. The matrix m must be totally
// monotone; rows and cols are ascending. Ties keep the earliest row.
func concaveMinima(rows, cols []int, m func(i, j int) float64, out []minimum) {
	if len(cols) == 0 {
		return
	}

	// Reduce: drop rows that cannot hold any column minimum until at
	// most len(cols) rows remain.
	stack := make([]int, 0, len(cols))
	for _, r := range rows {
		for len(stack) > 0 && m(stack[len(stack)-1], cols[len(stack)-1]) > m(r, cols[len(stack)-1]) {
			stack = stack[:len(stack)-1]
		}
		if len(stack) < len(cols) {
			stack = append(stack, r)
		}
	}
	rows = stack

	// Recurse on every other column.
	odd := make([]int, 0, len(cols)/2)
	for i := 1; i < len(cols); i += 2 {
		odd = append(odd, cols[i])
	}
	concaveMinima(rows, odd, m, out)

	// Interpolate the even columns: total monotonicity bounds each
	// minimum between the minima of the neighboring odd columns.
	r := 0
	for c := 0; c < len(cols); c += 2 {
		col := cols[c]
		lastRow := rows[len(rows)-1]
		if c+1 < len(cols) {
			lastRow = out[cols[c+1]].index
		}
		best := minimum{index: rows[r], value: m(rows[r], col)}
		for rows[r] != lastRow {
			r++
			if v := m(rows[r], col); v < best.value {
				best = minimum{index: rows[r], value: v}
			}
		}
		out[col] = best
	}
}

// onlineColumnMinima computes the minimum of every column j over rows
// i < j of an implicit totally monotone size×size matrix. The matrix
// function receives the minima finished so far, which lets the caller
// define entry (i, j) in terms of the column minimum of i, as the
// line-breaking dynamic program does. minima[0] is the seed value 0
// at index 0.
func onlineColumnMinima(size int, m func(minima []minimum, i, j int) float64) []minimum {
	minima := make([]minimum, size)
	for j := 1; j < size; j++ {
		minima[j].value = math.Inf(1)
	}

	// finished: all columns <= finished hold their true minima.
	// base: rows below base can no longer supply any minimum.
	// tentative: columns in (finished, tentative] hold provisional
	// minima over the rows seen when they were computed.
	finished, base, tentative := 0, 0, 0
	for finished < size-1 {
		i := finished + 1

		if i > tentative {
			// Fill a fresh block of tentative columns from the
			// largest square of usable rows.
			rowCount := finished + 1 - base
			tentative = finished + rowCount
			if tentative > size-1 {
				tentative = size - 1
			}
			rows := make([]int, 0, rowCount)
			for r := base; r <= finished; r++ {
				rows = append(rows, r)
			}
			cols := make([]int, 0, tentative-finished)
			for c := finished + 1; c <= tentative; c++ {
				cols = append(cols, c)
			}
			fresh := make([]minimum, size)
			concaveMinima(rows, cols, func(r, c int) float64 {
				return m(minima, r, c)
			}, fresh)
			for _, c := range cols {
				if fresh[c].value < minima[c].value {
					minima[c] = fresh[c]
				}
			}
			finished = i
			continue
		}

		// The newly available row may hold the next column minimum
		// on the diagonal; if so, every earlier row is dominated
		// from here on.
		if d := m(minima, i-1, i); d < minima[i].value {
			minima[i] = minimum{index: i - 1, value: d}
			base = i - 1
			tentative = i
			finished = i
			continue
		}

		// If the new row does not beat the last tentative column
		// either, total monotonicity says it beats none of them.
		if m(minima, i-1, tentative) >= minima[tentative].value {
			finished = i
			continue
		}

		// The new row improves a later tentative column: rows before
		// it are dominated there and beyond, so rebase and let the
		// columns past i be recomputed.
		base = i - 1
		tentative = i
	}
	return minima
}
