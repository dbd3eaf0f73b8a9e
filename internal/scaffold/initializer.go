package scaffold

import (
	"embed"
	"fmt"
	"os"

	"github.com/dyluth/blud/internal/config"
	"github.com/dyluth/blud/internal/printer"
)

//go:embed templates/*
var templatesFS embed.FS

// Template returns the default blud.yml content.
func Template() ([]byte, error) {
	content, err := templatesFS.ReadFile("templates/blud.yml.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to read blud.yml template: %w", err)
	}
	return content, nil
}

// CheckExisting returns an error if a config file already exists at path
func CheckExisting(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("configuration already exists: %s", path)
	}
	return nil
}

// Initialize writes the default configuration to path.
// If force is true, an existing file is removed first.
func Initialize(path string, force bool) error {
	if force {
		if err := handleForce(path); err != nil {
			return err
		}
	}

	content, err := Template()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	// Round-trip through the loader so a broken template is caught here
	if _, err := config.Load(path); err != nil {
		return fmt.Errorf("created %s is not a valid configuration: %w", path, err)
	}

	return nil
}

// handleForce removes an existing config file if --force was specified
func handleForce(path string) error {
	if _, err := os.Stat(path); err == nil {
		printer.Warning("Removing existing %s...\n", path)
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}
	return nil
}

// PrintSuccess prints the success message with the created file
func PrintSuccess(path string) {
	printer.Success("Successfully initialized Blud configuration!\n")
	printer.Printf("\nCreated:\n")
	printer.Printf("  ✓ %s\n", path)
	printer.Printf("\nNext steps:\n")
	printer.Printf("  1. Adjust output.format or chart.colors to taste\n")
	printer.Printf("  2. Run 'blud calc A+ O-' to compute a child's blood type\n")
}
