package behaviortree

import (
	"fmt"
	"log"
)

// Logger is the log sink PrintLog action nodes write through. Its single
// method can fail, so an I/O failure can surface as TickIOError.
type Logger interface {
	Log(line string) error
}

// stdLogger adapts the standard library's log package (matching the
// teacher's own examples, which import "log" directly, e.g.
// examples/tcell-pick-and-place/logic/logic.go) to Logger.
type stdLogger struct{ l *log.Logger }

// DefaultLogger returns a Logger backed by log.Default().
func DefaultLogger() Logger { return stdLogger{l: log.Default()} }

func (s stdLogger) Log(line string) error {
	return s.l.Output(2, line)
}

// formatPrintLog renders the one-line-per-tick log message:
// "[bt_node_id=<n>] <message>".
func formatPrintLog(nodeID int32, message string) string {
	return fmt.Sprintf(`[bt_node_id=%d] %s`, nodeID, message)
}
