package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/model"
	"github.com/olekukonko/tablewriter"
)

func writeReport(w io.Writer, report model.RecalculationReport) {
	summary := tablewriter.NewWriter(w)
	summary.SetHeader([]string{"Total", "Processed", "Success", "Failed"})
	summary.Append([]string{
		strconv.Itoa(report.Total),
		strconv.Itoa(report.Processed),
		strconv.Itoa(report.Success),
		strconv.Itoa(report.Failed),
	})
	summary.Render()

	if len(report.Errors) == 0 {
		return
	}

	_, _ = fmt.Fprintln(w)
	failures := tablewriter.NewWriter(w)
	failures.SetHeader([]string{"Wallet", "Error"})
	failures.SetAutoWrapText(false)
	for _, e := range report.Errors {
		wallet, reason, ok := strings.Cut(e, ": ")
		if !ok {
			wallet, reason = "", e
		}
		failures.Append([]string{wallet, reason})
	}
	failures.Render()
}
