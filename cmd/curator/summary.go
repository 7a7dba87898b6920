package main

import (
	"fmt"
	"io"
	"strings"

	"curator/internal/cleanup"
	"curator/internal/merge"
	"curator/internal/organizer"
)

func writeMergeSummary(out io.Writer, res merge.Result, colorize bool) {
	fmt.Fprintln(out, renderSectionHeader("Merge", colorize))
	fmt.Fprintln(out, renderStatusLine("Output", statusOK, res.Output, colorize))
	if res.DuplicateKeys > 0 {
		msg := fmt.Sprintf("%d filename(s) repeated in the annotation table; first occurrence kept", res.DuplicateKeys)
		fmt.Fprintln(out, renderStatusLine("Duplicates", statusWarn, msg, colorize))
	}
	fmt.Fprintln(out, renderCounts(
		countRow{"Metadata rows", res.LeftRows},
		countRow{"Annotation rows", res.RightRows},
		countRow{"Matched", res.Matched},
		countRow{"Output rows", res.OutputRows},
	))
	if res.Preview != nil && res.Preview.Len() > 0 {
		fmt.Fprintf(out, "Preview (first %d rows):\n", res.Preview.Len())
		fmt.Fprintln(out, renderTable(res.Preview.Header, res.Preview.Rows))
	}
}

func writeCleanupSummary(out io.Writer, res cleanup.Result, colorize bool) {
	fmt.Fprintln(out, renderSectionHeader("Cleanup", colorize))
	fmt.Fprintln(out, renderStatusLine("Output", statusOK, res.Output, colorize))
	for _, warning := range res.Warnings {
		fmt.Fprintln(out, renderStatusLine("Warning", statusWarn, warning, colorize))
	}
	fmt.Fprintln(out, renderStatusLine("Wiped", statusInfo, fmt.Sprintf("%d real row(s) cleared", res.Wiped), colorize))
	fmt.Fprintln(out, "Row order:")
	fmt.Fprintln(out, renderTable(
		[]string{"#", "Group", "Rows"},
		[][]string{
			{"1", fmt.Sprintf("fake, with %s", res.MatchColumn), fmt.Sprint(res.FakesWithData)},
			{"2", fmt.Sprintf("fake, without %s", res.MatchColumn), fmt.Sprint(res.FakesWithoutData)},
			{"3", "real", fmt.Sprint(res.Reals)},
		},
		0, 2,
	))
}

func writeOrganizeSummary(out io.Writer, res organizer.Result, colorize bool) {
	fmt.Fprintln(out, renderSectionHeader("Organize", colorize))
	kind := statusOK
	switch {
	case res.Failed() > 0:
		kind = statusError
	case res.Missing > 0:
		kind = statusWarn
	}
	fmt.Fprintln(out, renderStatusLine("Output", kind, res.OutputDir, colorize))
	fmt.Fprintln(out, renderCounts(
		countRow{"Copied", res.Processed},
		countRow{"Real", res.Real},
		countRow{"Fake", res.Fake},
		countRow{"Missing", res.Missing},
		countRow{"Failed", res.Failed()},
	))
	if len(res.MissingFiles) > 0 {
		fmt.Fprintln(out, renderStatusLine("Missing", statusWarn, strings.Join(res.MissingFiles, ", "), colorize))
	}
	for _, failure := range res.Failures {
		fmt.Fprintln(out, renderStatusLine("Copy failed", statusError, failure.Error(), colorize))
	}
}
