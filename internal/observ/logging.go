// Package observ provides single-line JSON event logging and an in-process
// metrics registry. The simulation core emits match lifecycle events and a
// handful of counters; it owns no network surface, so there is no exposition
// endpoint — tests and the cmd harnesses read Snapshot instead.
package observ

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

var out io.Writer = os.Stdout

// SetOutput redirects event logging, mainly so tests can silence it.
func SetOutput(w io.Writer) { out = w }

// Log writes one JSON event line with ts and event keys added.
func Log(event string, kv map[string]any) {
	if kv == nil {
		kv = map[string]any{}
	}
	kv["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	kv["event"] = event
	b, _ := json.Marshal(kv)
	fmt.Fprintln(out, string(b))
}
