// Command arbitro referees iterated two-player games between external
// programs driven over their standard streams.
package main

import (
	"os"

	"github.com/Iron-Ham/arbitro/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
