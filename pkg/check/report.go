package check

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fabricops/fabcheck/pkg/cli"
)

const bannerWidth = 60

// Render writes the human-readable run report: one section per device, a
// status table for its audited interfaces, and a summary banner.
func Render(w io.Writer, r *Report) {
	for _, d := range r.Devices {
		fmt.Fprintf(w, "\n%s (%s)\n", cli.Bold(d.Hostname), d.SourceFile)

		if !d.Connected {
			fmt.Fprintf(w, "Connection failed: %s\n", d.ErrorMessage)
			continue
		}
		if len(d.Interfaces) == 0 {
			fmt.Fprintln(w, "No interfaces without policy to check")
			continue
		}

		t := cli.NewTableTo(w, "INTERFACE", "DESCRIPTION", "STATUS", "EXPECTED", "MATCH")
		for _, i := range d.Interfaces {
			t.Row(i.Name, i.Description, i.Status,
				strconv.FormatBool(i.ExpectedEnabled), cli.PassFail(i.Matches))
		}
		t.Flush()
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.Banner(fmt.Sprintf("%s  %s", cli.PassFail(r.Passed), verdictText(r)), bannerWidth))
}

// Summary returns the one-line run outcome used for notifications.
func Summary(r *Report) string {
	return fmt.Sprintf("fabcheck %s: %d devices, %d unreachable, %d interface mismatches (%s)",
		verdict(r.Passed), len(r.Devices), r.Unreachable(), r.Mismatched(),
		r.Duration.Round(10*time.Millisecond))
}

func verdict(passed bool) string {
	if passed {
		return "PASS"
	}
	return "FAIL"
}

func verdictText(r *Report) string {
	if r.Passed {
		return "Interconnects match the topology documents"
	}
	return "Interconnects do NOT match the topology documents or connection issues occurred"
}
