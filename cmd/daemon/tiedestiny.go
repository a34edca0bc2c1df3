package daemon

import (
	"log"
	"os"
	"time"

	"github.com/shirou/gopsutil/v4/process"
)

// tieDestiny ties our fate to another process: when it goes away, so
// do we. Parents pass their own PID so no daemon outlives them.
func tieDestiny(destinyPid int64) {
	for {
		exists, err := process.PidExists(int32(destinyPid))
		if err != nil {
			log.Printf("While looking for destiny PID %d: %+v", destinyPid, err)
			os.Exit(1)
		}

		if !exists {
			log.Printf("Destiny PID %d exited, exiting too", destinyPid)
			os.Exit(0)
		}

		time.Sleep(1 * time.Second)
	}
}
