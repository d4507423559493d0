package models

// Brand is a reference entity items point at by foreign key.
type Brand struct {
	ID    int64
	Label string
}

// Category is a reference entity items point at by foreign key.
type Category struct {
	ID    int64
	Label string
}
