package cmdutil

import (
	"io"

	"gopkg.in/cheggaaa/pb.v1"
)

// Progress draws a per-sequence progress bar on w. The returned callback
// matches pipeline.ProgressFunc; finish must be called once the scan ends.
// With enabled=false both are no-ops.
func Progress(w io.Writer, enabled bool) (report func(done, total int, seqID string), finish func()) {
	if !enabled {
		return func(int, int, string) {}, func() {}
	}
	var bar *pb.ProgressBar
	report = func(done, total int, seqID string) {
		if bar == nil {
			bar = pb.New(total)
			bar.Output = w
			bar.ShowSpeed = false
			bar.SetMaxWidth(80)
			bar.Prefix("scan ")
			bar.Start()
		}
		bar.Set(done)
	}
	finish = func() {
		if bar != nil {
			bar.Finish()
		}
	}
	return report, finish
}
