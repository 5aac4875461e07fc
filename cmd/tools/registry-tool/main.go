// cmd/tools/registry-tool/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"mergington-activities/pkg/registry"
)

func main() {
	addCmd := flag.NewFlagSet("add", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)

	// Add command flags
	addPath := addCmd.String("path", "configs/activities.json", "Path to registry seed file")
	name := addCmd.String("name", "", "Activity name (e.g., Robotics Club)")
	description := addCmd.String("description", "", "Description")
	schedule := addCmd.String("schedule", "", "Schedule (e.g., Mondays, 3:30 PM - 5:00 PM)")
	maxParticipants := addCmd.Int("max", 20, "Maximum participants (advisory)")
	participants := addCmd.String("participants", "", "Comma-separated initial participant emails")

	// Validate command flags
	validatePath := validateCmd.String("path", "configs/activities.json", "Path to registry seed file")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "add":
		addCmd.Parse(os.Args[2:])
		if *name == "" || *description == "" || *schedule == "" {
			fmt.Println("Error: name, description, and schedule are required for add.")
			addCmd.Usage()
			os.Exit(1)
		}
		activity := registry.Activity{
			Name:            *name,
			Description:     *description,
			Schedule:        *schedule,
			MaxParticipants: *maxParticipants,
			Participants:    splitEmails(*participants),
		}
		if err := addActivity(*addPath, &activity); err != nil {
			fmt.Printf("Error adding activity: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Added activity: %s\n", *name)

	case "validate":
		validateCmd.Parse(os.Args[2:])
		if err := validateFile(*validatePath); err != nil {
			fmt.Printf("Registry invalid: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Registry valid: %s\n", *validatePath)

	default:
		help()
		os.Exit(1)
	}
}

func addActivity(path string, activity *registry.Activity) error {
	reg, err := registry.LoadRegistry(path)
	if err != nil {
		return err
	}

	for _, existing := range reg.Activities {
		if existing.Name == activity.Name {
			return fmt.Errorf("activity %q already exists", activity.Name)
		}
	}

	reg.Activities = append(reg.Activities, *activity)
	reg.LastUpdated = time.Now().UTC().Format("2006-01-02")
	return registry.SaveRegistry(path, reg)
}

func validateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return registry.Validate(data)
}

func splitEmails(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	emails := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			emails = append(emails, trimmed)
		}
	}
	return emails
}

func help() {
	fmt.Println("Usage: registry-tool <command> [flags]")
	fmt.Println("Commands:")
	fmt.Println("  add       Add an activity to the seed file")
	fmt.Println("  validate  Validate a seed file against the registry schema")
}
