package gen

import (
	"errors"
	"testing"
)

func TestTopoSortDecls_Order(t *testing.T) {
	order, err := topoSortDecls(3, func(i int) []int {
		switch i {
		case 0:
			return []int{2}
		case 1:
			return nil
		case 2:
			return []int{1}
		default:
			return nil
		}
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	exp := []int{1, 2, 0}
	if len(order) != len(exp) {
		t.Fatalf("expected %v, got %v", exp, order)
	}

	for i := range exp {
		if order[i] != exp[i] {
			t.Fatalf("expected %v, got %v", exp, order)
		}
	}
}

func TestTopoSortDecls_KeepsOrderWithoutDeps(t *testing.T) {
	order, err := topoSortDecls(4, func(int) []int { return nil })
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	for i, idx := range order {
		if i != idx {
			t.Fatalf("expected identity order, got %v", order)
		}
	}
}

func TestTopoSortDecls_Cycle(t *testing.T) {
	_, err := topoSortDecls(2, func(i int) []int {
		if i == 0 {
			return []int{1}
		}

		return []int{0}
	})
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("expected ErrCycle, got %v", err)
	}
}

func TestTopoSortDecls_OutOfRange(t *testing.T) {
	_, err := topoSortDecls(1, func(int) []int { return []int{3} })
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}
