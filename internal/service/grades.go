package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"coursework/internal/codec"
	"coursework/internal/domain"
	"coursework/internal/repository"
)

// GradeService turns a student roster into a graded report
type GradeService struct {
	log    zerolog.Logger
	events *EventBus
}

// NewGradeService creates a new grade service
func NewGradeService(log zerolog.Logger, events *EventBus) *GradeService {
	return &GradeService{
		log:    log.With().Str("component", "grades").Logger(),
		events: events,
	}
}

// Read parses a roster into a repository keyed by student id. Duplicate ids
// are rejected.
func (s *GradeService) Read(r io.Reader) (*repository.Repository[*domain.Student], error) {
	students, err := codec.ParseRoster(r)
	if err != nil {
		return nil, err
	}

	repo := repository.New[*domain.Student]("student")
	if err := repo.LoadAll(students); err != nil {
		return nil, err
	}

	s.log.Debug().Int("students", repo.Len()).Msg("roster parsed")
	return repo, nil
}

// Process reads the roster at inputPath and writes the report to
// outputPath. It returns the number of students graded.
func (s *GradeService) Process(ctx context.Context, inputPath, outputPath string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open roster: %w", err)
	}
	defer in.Close()

	repo, err := s.Read(in)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return 0, fmt.Errorf("failed to create report dir: %w", err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create report: %w", err)
	}
	defer out.Close()

	students := repo.GetAll()
	if err := codec.WriteReport(out, students); err != nil {
		return 0, err
	}

	s.log.Info().Str("input", inputPath).Str("output", outputPath).Int("students", len(students)).Msg("report generated")
	s.events.Publish(Event{
		Type:       EventSnapshotSaved,
		Collection: repo.Name(),
		Payload:    map[string]any{"path": outputPath, "count": len(students)},
	})

	return len(students), out.Close()
}
