package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ankei1026/schedai-go/internal/models"
	"github.com/ankei1026/schedai-go/internal/service"
)

var format string

func main() {
	log.SetFlags(0)

	root := &cobra.Command{
		Use:   "scheduler",
		Short: "Constraint-based timetable generation, load assignment, and conflict checking",
	}

	cmdSolve := &cobra.Command{
		Use:   "solve <config.json>",
		Short: "solve a Configuration into a conflict-free Timetable",
		Args:  cobra.ExactArgs(1),
		Run:   runSolve,
	}
	cmdSolve.Flags().StringVar(&format, "format", "", "export format for the solved timetable: csv or pdf (default: JSON to stdout)")
	root.AddCommand(cmdSolve)

	cmdAssign := &cobra.Command{
		Use:   "assign <courses.json> <instructors.json>",
		Short: "assign courses to instructors within department and load bounds",
		Args:  cobra.ExactArgs(2),
		Run:   runAssign,
	}
	root.AddCommand(cmdAssign)

	cmdCheckConflict := &cobra.Command{
		Use:   "check-conflict <candidate.json> <existing.json>",
		Short: "check a candidate schedule record for conflicts against existing records",
		Args:  cobra.ExactArgs(2),
		Run:   runCheckConflict,
	}
	root.AddCommand(cmdCheckConflict)

	if err := root.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func runSolve(cmd *cobra.Command, args []string) {
	var cfg models.Configuration
	readJSONFile(args[0], &cfg)

	svc := service.NewScheduleGeneratorService(nil, nil, nil, nil, service.ScheduleGeneratorConfig{})
	timetable, err := svc.Generate(context.Background(), cfg)
	if err != nil {
		log.Fatalf("solve: %v", err)
	}

	if format == "" {
		writeJSON(timetable)
		return
	}

	exportSvc := service.NewExportService(nil, nil, nil)
	payload, _, err := exportSvc.RenderTimetable(timetable, service.ExportFormat(format))
	if err != nil {
		log.Fatalf("export: %v", err)
	}
	os.Stdout.Write(payload)
}

func runAssign(cmd *cobra.Command, args []string) {
	var courses []models.Course
	readJSONFile(args[0], &courses)
	var instructors []models.Instructor
	readJSONFile(args[1], &instructors)

	svc := service.NewLoadAssignerService(nil, nil, nil, nil, service.LoadAssignerConfig{})
	assignments, err := svc.Assign(context.Background(), service.AssignRequest{Courses: courses, Instructors: instructors})
	if err != nil {
		log.Fatalf("assign: %v", err)
	}
	writeJSON(assignments)
}

func runCheckConflict(cmd *cobra.Command, args []string) {
	var candidate models.ScheduleRecord
	readJSONFile(args[0], &candidate)
	var existing []models.ScheduleRecord
	readJSONFile(args[1], &existing)

	svc := service.NewConflictService(nil, nil, nil, nil, service.ConflictConfig{})
	report, err := svc.Check(context.Background(), service.ConflictCheckRequest{Candidate: candidate, Existing: existing})
	if err != nil {
		log.Fatalf("check-conflict: %v", err)
	}
	writeJSON(report)
}

func readJSONFile(path string, dest interface{}) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("reading %s: %v", path, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		log.Fatalf("parsing %s: %v", path, err)
	}
}

func writeJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatalf("encoding output: %v", err)
	}
}
