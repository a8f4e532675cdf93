package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"coursework/internal/domain"
)

// ParseRoster reads "id, name, score" lines. Blank lines are skipped; any
// other malformed line aborts parsing with a line-numbered error.
func ParseRoster(r io.Reader) ([]*domain.Student, error) {
	students := make([]*domain.Student, 0)
	scanner := bufio.NewScanner(r)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		student, err := parseRosterLine(lineNumber, line)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}

	return students, nil
}

func parseRosterLine(lineNumber int, line string) (*domain.Student, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return nil, domain.NewMissingFieldError(lineNumber, "missing or extra fields in input")
	}

	idStr := strings.TrimSpace(fields[0])
	name := strings.TrimSpace(fields[1])
	scoreStr := strings.TrimSpace(fields[2])

	if idStr == "" || name == "" || scoreStr == "" {
		return nil, domain.NewMissingFieldError(lineNumber, "one or more fields are empty")
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		return nil, domain.NewInvalidScoreFormatError(lineNumber, "invalid ID format")
	}

	score, err := strconv.Atoi(scoreStr)
	if err != nil {
		return nil, domain.NewInvalidScoreFormatError(lineNumber, "invalid score format")
	}

	if score < domain.MinScore || score > domain.MaxScore {
		return nil, domain.NewInvalidScoreFormatError(lineNumber, "score out of valid range (0-100)")
	}

	return domain.NewStudent(id, name, score), nil
}

// ReportLine formats one student report line
func ReportLine(s *domain.Student) string {
	return fmt.Sprintf("%s (ID: %d): Score = %d, Grade = %s", s.FullName, s.ID, s.Score, s.Grade())
}

// WriteReport writes one report line per student
func WriteReport(w io.Writer, students []*domain.Student) error {
	bw := bufio.NewWriter(w)
	for _, s := range students {
		if _, err := fmt.Fprintln(bw, ReportLine(s)); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
