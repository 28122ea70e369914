package repository

import (
	"testing"

	"realtor-listings/internal/data/entity"
)

func TestNewHomeFilter(t *testing.T) {
	filter, err := NewHomeFilter("Toronto", "1500000", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filter.City == nil || *filter.City != "Toronto" {
		t.Fatalf("expected city Toronto, got %v", filter.City)
	}
	if filter.MinPrice == nil || *filter.MinPrice != 1500000 {
		t.Fatalf("expected min price 1500000, got %v", filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		t.Fatalf("expected no max price, got %v", *filter.MaxPrice)
	}
	if filter.PropertyType != nil {
		t.Fatalf("expected no property type, got %v", *filter.PropertyType)
	}
}

func TestNewHomeFilterEmpty(t *testing.T) {
	filter, err := NewHomeFilter("", "", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filter.City != nil || filter.MinPrice != nil || filter.MaxPrice != nil || filter.PropertyType != nil {
		t.Fatal("expected all filter fields to be nil")
	}

	where, args := filter.buildWhere()
	if where != "" {
		t.Fatalf("expected empty where clause, got %q", where)
	}
	if args != nil {
		t.Fatalf("expected nil args, got %v", args)
	}
}

func TestNewHomeFilterRejectsBadInput(t *testing.T) {
	if _, err := NewHomeFilter("", "cheap", "", ""); err == nil {
		t.Fatal("expected error for non-numeric minPrice")
	}
	if _, err := NewHomeFilter("", "", "1e99x", ""); err == nil {
		t.Fatal("expected error for non-numeric maxPrice")
	}
	if _, err := NewHomeFilter("", "", "", "CASTLE"); err == nil {
		t.Fatal("expected error for unknown propertyType")
	}
}

func TestHomeFilterBuildWhere(t *testing.T) {
	filter, err := NewHomeFilter("Toronto", "1000000", "1500000", "RESIDENTIAL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	where, args := filter.buildWhere()
	want := " WHERE city = $1 AND price >= $2 AND price <= $3 AND property_type = $4"
	if where != want {
		t.Fatalf("expected %q got %q", want, where)
	}
	if len(args) != 4 {
		t.Fatalf("expected 4 args, got %d", len(args))
	}
	if args[0] != "Toronto" {
		t.Fatalf("expected first arg Toronto, got %v", args[0])
	}
	if args[1] != 1000000.0 || args[2] != 1500000.0 {
		t.Fatalf("expected price bounds 1000000/1500000, got %v/%v", args[1], args[2])
	}
	if args[3] != entity.PropertyResidential {
		t.Fatalf("expected property type RESIDENTIAL, got %v", args[3])
	}
}

func TestHomeFilterBuildWhereSparse(t *testing.T) {
	filter, err := NewHomeFilter("", "", "900000", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	where, args := filter.buildWhere()
	want := " WHERE price <= $1"
	if where != want {
		t.Fatalf("expected %q got %q", want, where)
	}
	if len(args) != 1 || args[0] != 900000.0 {
		t.Fatalf("expected single arg 900000, got %v", args)
	}
}
