package spmatrix

import "sort"

// emptySlot marks an unused (row, value) pair within a column's fixed-size
// storage arrays.
const emptySlot = -1

// column is the fixed-capacity, parallel-array representation of one column
// of the matrix: rowIdx[k] == emptySlot means slot k is free; otherwise
// vals[k] is the entry at row rowIdx[k].
type column struct {
	rowIdx []int
	vals   []float64
}

func newColumn(capacity int) column {
	c := column{
		rowIdx: make([]int, capacity),
		vals:   make([]float64, capacity),
	}
	for k := range c.rowIdx {
		c.rowIdx[k] = emptySlot
	}

	return c
}

// Matrix is a column-major sparse matrix with a fixed per-column non-zero
// capacity. Columns may be appended cheaply (ExtendColumns*); rows may be
// extended in place (ExtendRows) without moving any storage, since row
// indices are just integers inside each column's rowIdx array.
type Matrix struct {
	rows     int
	capacity int // s: max non-zero entries per column
	columns  []column
}

// NewMatrix constructs an empty (zero-column) Matrix with the given initial
// row count and per-column non-zero capacity.
// Fails with ErrBadShape if rows <= 0 or capacity <= 0.
func NewMatrix(rows, capacity int) (*Matrix, error) {
	if rows <= 0 || capacity <= 0 {
		return nil, ErrBadShape
	}

	return &Matrix{rows: rows, capacity: capacity, columns: nil}, nil
}

// Rows returns the current row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the current column count.
func (m *Matrix) Cols() int { return len(m.columns) }

// Capacity returns the maximum number of non-zero entries per column.
func (m *Matrix) Capacity() int { return m.capacity }

// At returns the value at (i, j), or 0 if no entry is stored there.
// Fails with ErrOutOfRange if the indices are outside current bounds.
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= len(m.columns) {
		return 0, ErrOutOfRange
	}
	col := &m.columns[j]
	for k, ri := range col.rowIdx {
		if ri == i {
			return col.vals[k], nil
		}
	}

	return 0, nil
}

// Set writes value v at (i, j), in place.
//
//   - Updating an existing entry overwrites its value.
//   - Setting a new entry to zero is a no-op success.
//   - Setting an existing entry to zero deletes it (frees the slot).
//   - Setting a new non-zero entry uses the first free slot.
//   - If the column is full and holds no matching/zero slot, Set fails with
//     ErrColumnFull (per spec §4.2, this is a normal "false" return, not a
//     panic).
//
// Fails with ErrOutOfRange if the indices are outside current bounds.
func (m *Matrix) Set(i, j int, v float64) error {
	if i < 0 || i >= m.rows || j < 0 || j >= len(m.columns) {
		return ErrOutOfRange
	}
	col := &m.columns[j]

	emptyK := emptySlot
	for k, ri := range col.rowIdx {
		if ri == i {
			if v == 0 {
				col.rowIdx[k] = emptySlot
				col.vals[k] = 0
			} else {
				col.vals[k] = v
			}

			return nil
		}
		if ri == emptySlot && emptyK == emptySlot {
			emptyK = k
		}
	}
	if v == 0 {
		// Setting a not-yet-present entry to zero is already satisfied.
		return nil
	}
	if emptyK == emptySlot {
		return ErrColumnFull
	}
	col.rowIdx[emptyK] = i
	col.vals[emptyK] = v

	return nil
}

// ExtendRows increases the row count by k. No storage is moved: row indices
// already stored in existing columns remain valid, and the new rows simply
// become addressable.
func (m *Matrix) ExtendRows(k int) {
	if k <= 0 {
		return
	}
	m.rows += k
}

// ExtendColumns appends k empty columns.
func (m *Matrix) ExtendColumns(k int) {
	for i := 0; i < k; i++ {
		m.columns = append(m.columns, newColumn(m.capacity))
	}
}

// ExtendColumnFromMap appends one column built from a row->value map.
// Entries whose row index is out of range are skipped; if more non-zero
// entries are supplied than the column capacity allows, the remainder
// (in ascending row order, for determinism) are truncated.
func (m *Matrix) ExtendColumnFromMap(entries map[int]float64) {
	rowsOrder := sortedIntKeys(entries)

	col := newColumn(m.capacity)
	slot := 0
	for _, row := range rowsOrder {
		if slot >= m.capacity {
			break
		}
		v := entries[row]
		if v == 0 || row < 0 || row >= m.rows {
			continue
		}
		col.rowIdx[slot] = row
		col.vals[slot] = v
		slot++
	}
	m.columns = append(m.columns, col)
}

// ExtendColumnsFrom steals all of other's columns and appends them to m, iff
// other.rows <= m.rows and other.capacity <= m.capacity (so every stolen
// column remains valid storage under m's shape). Returns ErrIncompatibleDonor
// otherwise, leaving m unchanged.
func (m *Matrix) ExtendColumnsFrom(other *Matrix) error {
	if other == nil {
		return nil
	}
	if other.rows > m.rows || other.capacity > m.capacity {
		return ErrIncompatibleDonor
	}
	if other.capacity == m.capacity {
		m.columns = append(m.columns, other.columns...)
	} else {
		// Donor columns are narrower; re-host them in freshly sized slots.
		for _, c := range other.columns {
			nc := newColumn(m.capacity)
			copy(nc.rowIdx, c.rowIdx)
			copy(nc.vals, c.vals)
			m.columns = append(m.columns, nc)
		}
	}
	other.columns = nil

	return nil
}

// DenseColumn materializes column j as a dense []float64 of length m.rows.
// Fails with ErrOutOfRange if j is outside current bounds.
func (m *Matrix) DenseColumn(j int) ([]float64, error) {
	if j < 0 || j >= len(m.columns) {
		return nil, ErrOutOfRange
	}
	out := make([]float64, m.rows)
	col := &m.columns[j]
	for k, ri := range col.rowIdx {
		if ri != emptySlot {
			out[ri] = col.vals[k]
		}
	}

	return out, nil
}

// Dense materializes the full matrix as a row-major [][]float64 of shape
// rows x cols. Intended for handing the system to an LP solver; not for use
// on hot paths.
func (m *Matrix) Dense() [][]float64 {
	out := make([][]float64, m.rows)
	for i := range out {
		out[i] = make([]float64, len(m.columns))
	}
	for j := range m.columns {
		col := &m.columns[j]
		for k, ri := range col.rowIdx {
			if ri != emptySlot {
				out[ri][j] = col.vals[k]
			}
		}
	}

	return out
}

// sortedIntKeys returns m's keys in ascending order, so that column
// construction from a map is deterministic across runs.
func sortedIntKeys(m map[int]float64) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}
