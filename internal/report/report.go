package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/irpanzy/sport-area-stp-backend/internal/model"
)

// Generator writes booking report files under a base directory and returns
// the paths the store records. Reports are plain-text artifacts meant to be
// printed and shown when using the field.
type Generator struct {
	Dir string
}

// NewGenerator creates a report generator rooted at dir.
func NewGenerator(dir string) *Generator {
	return &Generator{Dir: dir}
}

// Generate renders the report for an approved booking and writes it to disk.
// It returns the file name and the path relative to the generator root.
func (g *Generator) Generate(booking *model.Booking) (fileName, relPath string, err error) {
	if err := os.MkdirAll(g.Dir, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create report directory: %w", err)
	}

	fileName = fmt.Sprintf("booking-report-%d-%s.txt", booking.ID, uuid.NewString())
	relPath = filepath.Join(filepath.Base(g.Dir), fileName)
	fullPath := filepath.Join(g.Dir, fileName)

	if err := os.WriteFile(fullPath, []byte(content(booking)), 0o644); err != nil {
		return "", "", fmt.Errorf("failed to write report file: %w", err)
	}
	return fileName, relPath, nil
}

// FullPath resolves a stored relative path against the generator root.
func (g *Generator) FullPath(relPath string) string {
	return filepath.Join(filepath.Dir(g.Dir), relPath)
}

// Remove deletes a report file. A missing file is not an error; the record
// is the source of truth and the file may already be gone.
func (g *Generator) Remove(relPath string) error {
	err := os.Remove(g.FullPath(relPath))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove report file: %w", err)
	}
	return nil
}

func content(booking *model.Booking) string {
	var b strings.Builder
	b.WriteString("SPORT FIELD BOOKING REPORT\n")
	b.WriteString("=====================================\n\n")
	fmt.Fprintf(&b, "Booking ID: %d\n", booking.ID)
	fmt.Fprintf(&b, "Booked by: %s\n", booking.User.Name)
	fmt.Fprintf(&b, "Email: %s\n", booking.User.Email)
	fmt.Fprintf(&b, "Field type: %s\n", strings.ToUpper(booking.FieldType))
	fmt.Fprintf(&b, "Date: %s\n", booking.Date.Format("2006-01-02"))
	fmt.Fprintf(&b, "Time: %s\n", booking.TimeSlot)
	fmt.Fprintf(&b, "Status: %s\n", strings.ToUpper(string(booking.Status)))
	fmt.Fprintf(&b, "Booked at: %s\n", booking.CreatedAt.Format("2006-01-02"))

	if booking.Admin != nil {
		fmt.Fprintf(&b, "\nApproved by: %s\n", booking.Admin.Name)
	}

	b.WriteString("\nNotes:\n")
	b.WriteString("- This report was generated automatically\n")
	b.WriteString("- Bring this report when using the field\n")
	b.WriteString("- Contact an administrator with any questions\n")
	fmt.Fprintf(&b, "\nGenerated at: %s\n", time.Now().UTC().Format(time.RFC1123))
	return b.String()
}
