package analytics

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yukikurage/migration-tracker/internal/models"
)

// ProjectIDPrefix starts every project identifier.
const ProjectIDPrefix = "MIG"

// NextProjectID returns MIG-<year>-<n> where n is one more than the highest
// sequence already used in that year, zero-padded to three digits. Ids with
// a non-numeric sequence are ignored.
//
// The result is only a proposal: two callers reading the same collection get
// the same id, so the store's primary key must reject the second insert.
func NextProjectID(projects []models.Project, year int) string {
	prefix := fmt.Sprintf("%s-%d-", ProjectIDPrefix, year)

	maxSeq := 0
	for _, p := range projects {
		if !strings.HasPrefix(p.ID, prefix) {
			continue
		}
		seq, err := strconv.Atoi(strings.TrimPrefix(p.ID, prefix))
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}

	return fmt.Sprintf("%s%03d", prefix, maxSeq+1)
}
