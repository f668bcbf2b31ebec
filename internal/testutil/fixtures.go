// Package testutil holds fixtures shared by landkit tests.
package testutil

import (
	"testing"
)

// Fixture is one parcel of a seed data set.
type Fixture struct {
	City    string
	Address string
	Region  string
	ID      uint64
}

// ReferenceParcels is the five-parcel data set used by the reference
// scenario, in insertion order.
var ReferenceParcels = []Fixture{
	{City: "Prague", Address: "Thakurova", Region: "Dejvice", ID: 12345},
	{City: "Prague", Address: "Evropska", Region: "Vokovice", ID: 12345},
	{City: "Prague", Address: "Technicka", Region: "Dejvice", ID: 9873},
	{City: "Plzen", Address: "Evropska", Region: "Plzen mesto", ID: 78901},
	{City: "Liberec", Address: "Evropska", Region: "Librec", ID: 4552},
}

// Adder is the insertion side of a registry.
type Adder interface {
	Add(city, address, region string, id uint64) error
}

// Seed adds every fixture to a, failing the test on the first error.
//
// Example:
//
//	r := registry.New(nil)
//	testutil.Seed(t, r, testutil.ReferenceParcels)
func Seed(t testing.TB, a Adder, fixtures []Fixture) {
	t.Helper()
	for _, f := range fixtures {
		if err := a.Add(f.City, f.Address, f.Region, f.ID); err != nil {
			t.Fatalf("seed %s/%s: %v", f.City, f.Address, err)
		}
	}
}
