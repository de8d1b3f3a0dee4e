// Package matrix provides in-place transforms of square matrices.
//
// Every function requires a square matrix: n rows of n elements each.
// Anything else is a programming error and panics.
package matrix

import "fmt"

// Transpose swaps element (i,j) with (j,i).
func Transpose[T any](m [][]T) {
	mustSquare(m)
	for i := range m {
		for j := i + 1; j < len(m); j++ {
			m[i][j], m[j][i] = m[j][i], m[i][j]
		}
	}
}

// ReverseRows reverses the element order within each row.
func ReverseRows[T any](m [][]T) {
	mustSquare(m)
	for _, row := range m {
		for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
}

// ReverseColumns reverses the order of the rows, so each column reads
// bottom to top. Row contents are swapped element by element because the
// rows may alias storage the caller owns.
func ReverseColumns[T any](m [][]T) {
	mustSquare(m)
	for i, j := 0, len(m)-1; i < j; i, j = i+1, j-1 {
		for k := range m[i] {
			m[i][k], m[j][k] = m[j][k], m[i][k]
		}
	}
}

// reverseColumnsByTranspose is the transpose/reverse/transpose form of
// ReverseColumns. Tests hold the two to the same output.
func reverseColumnsByTranspose[T any](m [][]T) {
	Transpose(m)
	ReverseRows(m)
	Transpose(m)
}

// Rotate90 rotates the matrix a quarter turn clockwise.
func Rotate90[T any](m [][]T) {
	Transpose(m)
	ReverseRows(m)
}

// RotateMinus90 rotates the matrix a quarter turn counter-clockwise.
func RotateMinus90[T any](m [][]T) {
	Transpose(m)
	ReverseColumns(m)
}

// Rotate180 rotates the matrix a half turn.
func Rotate180[T any](m [][]T) {
	ReverseColumns(m)
	ReverseRows(m)
}

// IsSquare reports whether m has as many elements in every row as it has rows.
func IsSquare[T any](m [][]T) bool {
	for _, row := range m {
		if len(row) != len(m) {
			return false
		}
	}
	return true
}

func mustSquare[T any](m [][]T) {
	for i, row := range m {
		if len(row) != len(m) {
			panic(fmt.Sprintf("matrix: not square: row %d has %d elements, want %d", i, len(row), len(m)))
		}
	}
}
