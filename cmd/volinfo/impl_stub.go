//go:build !windows
// +build !windows

package volinfo

import (
	"fmt"

	"github.com/itchio/partizan/mansion"
)

func Do(ctx *mansion.Context, root string) error {
	return fmt.Errorf("volinfo is a windows-only command")
}
