package ports

import "github.com/skeeto/showerthoughts/internal/domain"

// ReportStore persists run reports for reproducibility.
type ReportStore interface {
	SaveReport(r domain.RunReport) (id string, err error)
}
