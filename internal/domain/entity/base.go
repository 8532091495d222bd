package entity

// Base is a physical military installation holding inventory. Reference data, immutable.
type Base struct {
	ID       int64
	Name     string
	Location string
}
