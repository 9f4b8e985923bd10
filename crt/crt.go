package crt

// QuadraticProbing - Open addressing where collisions are resolved by probing (base + j*j) mod capacity.
// Deleted records are kept as tombstones so that probe sequences of other keys stay intact.
const QuadraticProbing int = 1

// SeparateChaining - Every bucket holds a chain of records, collisions are appended to the chain.
// Deleted records are unlinked from their chain directly.
const SeparateChaining int = 2

// Name - Returns a readable name of the collision resolution technique
func Name(crtType int) string {
	switch crtType {
	case QuadraticProbing:
		return "QuadraticProbing"
	case SeparateChaining:
		return "SeparateChaining"
	default:
		return "Unknown"
	}
}
