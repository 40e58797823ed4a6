package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mmdatafocus/fleetops_backend/config"
	"github.com/mmdatafocus/fleetops_backend/models"
	"github.com/mmdatafocus/fleetops_backend/models/reports"
	"github.com/mmdatafocus/fleetops_backend/utils"
)

func main() {
	input := flag.String("input", "", "Path to a records JSON file (\"-\" for stdin).")
	projectID := flag.String("project", "", "Load records for this project from the database instead of -input.")
	nowFlag := flag.String("now", "", "Optional: compute as of this instant (RFC3339 or YYYY-MM-DD). Defaults to now.")
	xlsxPath := flag.String("xlsx", "", "Optional: also write the dashboard workbook to this path.")
	strict := flag.Bool("strict", config.StrictRecordTags(), "Reject unknown status/type tags instead of ignoring them.")
	flag.Parse()

	now := time.Now().UTC()
	if raw := strings.TrimSpace(*nowFlag); raw != "" {
		t := utils.ParseTimestamp(&raw)
		if t == nil {
			fmt.Fprintf(os.Stderr, "invalid -now %q\n", raw)
			os.Exit(2)
		}
		now = *t
	}

	records, err := loadRecords(*input, *projectID, *strict)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	snap := reports.ComputeProjectSnapshot(records, now, reports.DefaultSnapshotOptions())

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write snapshot: %v\n", err)
		os.Exit(1)
	}

	if *xlsxPath != "" {
		if err := writeWorkbook(*xlsxPath, snap); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", *xlsxPath, err)
			os.Exit(1)
		}
	}
}

func loadRecords(input, projectID string, strict bool) (*models.ProjectRecords, error) {
	projectID = strings.TrimSpace(projectID)
	switch {
	case input != "" && projectID != "":
		return nil, fmt.Errorf("use either -input or -project, not both")
	case projectID != "":
		// Explicit DB connect (config does not connect in init()).
		config.ConnectDatabaseWithRetry()
		return models.LoadProjectRecords(context.Background(), projectID)
	case input == "":
		return nil, fmt.Errorf("one of -input or -project is required")
	}

	var r io.Reader = os.Stdin
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return models.DecodeProjectRecords(r, strict)
}

func writeWorkbook(path string, snap reports.ProjectSnapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := reports.WriteSnapshotExcel(f, snap); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
