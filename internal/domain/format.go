package domain

import (
	"fmt"

	"github.com/mathcamp/daily-problem-bot/internal/domain/entity"
)

// FormatProblem renders a problem for posting: a numbered header, the raw
// body in a fenced block, and the source behind spoiler markers so readers
// can attempt the problem before seeing where it came from.
func FormatProblem(p *entity.Problem, number int64) string {
	source := p.Source
	if source == "" {
		source = UnknownSource
	}

	return fmt.Sprintf("📌 Problem #%d\n```\n%s\n```\nSource || %s ||", number, p.Body, source)
}
