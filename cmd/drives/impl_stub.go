//go:build !windows
// +build !windows

package drives

import (
	"fmt"

	"github.com/itchio/partizan/mansion"
)

func Do(ctx *mansion.Context) error {
	return fmt.Errorf("drives is a windows-only command")
}
