package spmatrix_test

import (
	"errors"
	"testing"

	"github.com/DavidToh2/GeometryTheoremProver-sub000/spmatrix"
)

func TestSetAndAt(t *testing.T) {
	t.Parallel()

	m, err := spmatrix.NewMatrix(3, 2)
	if err != nil {
		t.Fatalf("NewMatrix: %v", err)
	}
	m.ExtendColumns(1)

	if err := m.Set(0, 0, 5); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := m.Set(2, 0, 7); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := m.At(0, 0)
	if err != nil || got != 5 {
		t.Fatalf("At(0,0) = %v, %v; want 5, nil", got, err)
	}

	// Overwrite existing entry.
	if err := m.Set(0, 0, 9); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	got, _ = m.At(0, 0)
	if got != 9 {
		t.Fatalf("At(0,0) after overwrite = %v, want 9", got)
	}

	// Deleting via zero.
	if err := m.Set(0, 0, 0); err != nil {
		t.Fatalf("Set to zero: %v", err)
	}
	got, _ = m.At(0, 0)
	if got != 0 {
		t.Fatalf("At(0,0) after delete = %v, want 0", got)
	}
}

func TestSetColumnFull(t *testing.T) {
	t.Parallel()

	m, _ := spmatrix.NewMatrix(3, 1)
	m.ExtendColumns(1)
	if err := m.Set(0, 0, 1); err != nil {
		t.Fatalf("first Set: %v", err)
	}
	if err := m.Set(1, 0, 1); !errors.Is(err, spmatrix.ErrColumnFull) {
		t.Fatalf("expected ErrColumnFull, got %v", err)
	}
}

func TestExtendColumnFromMap(t *testing.T) {
	t.Parallel()

	m, _ := spmatrix.NewMatrix(4, 2)
	m.ExtendColumnFromMap(map[int]float64{0: 1, 2: -1})
	if m.Cols() != 1 {
		t.Fatalf("Cols() = %d, want 1", m.Cols())
	}
	col, err := m.DenseColumn(0)
	if err != nil {
		t.Fatalf("DenseColumn: %v", err)
	}
	want := []float64{1, 0, -1, 0}
	for i := range want {
		if col[i] != want[i] {
			t.Fatalf("DenseColumn = %v, want %v", col, want)
		}
	}
}

func TestExtendColumnsFrom(t *testing.T) {
	t.Parallel()

	donor, _ := spmatrix.NewMatrix(3, 1)
	donor.ExtendColumns(2)
	_ = donor.Set(0, 0, 1)
	_ = donor.Set(1, 1, 2)

	recv, _ := spmatrix.NewMatrix(3, 1)
	if err := recv.ExtendColumnsFrom(donor); err != nil {
		t.Fatalf("ExtendColumnsFrom: %v", err)
	}
	if recv.Cols() != 2 {
		t.Fatalf("Cols() = %d, want 2", recv.Cols())
	}
	if donor.Cols() != 0 {
		t.Fatalf("donor.Cols() = %d, want 0 (stolen)", donor.Cols())
	}
}

func TestExtendColumnsFromIncompatible(t *testing.T) {
	t.Parallel()

	donor, _ := spmatrix.NewMatrix(5, 3)
	recv, _ := spmatrix.NewMatrix(3, 1)
	if err := recv.ExtendColumnsFrom(donor); !errors.Is(err, spmatrix.ErrIncompatibleDonor) {
		t.Fatalf("expected ErrIncompatibleDonor, got %v", err)
	}
}
