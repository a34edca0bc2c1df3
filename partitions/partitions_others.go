//go:build !windows
// +build !windows

package partitions

// ListSystem lists the partitions of the machine we're running on.
// Only Windows assigns drive letters, so everywhere else this returns
// ErrUnsupported.
func ListSystem() ([]Partition, error) {
	return nil, ErrUnsupported
}
