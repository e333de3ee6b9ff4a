package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yukikurage/migration-tracker/internal/models"
)

func projectsWithIDs(ids ...string) []models.Project {
	projects := make([]models.Project, len(ids))
	for i, id := range ids {
		projects[i] = models.Project{ID: id}
	}
	return projects
}

func TestNextProjectID(t *testing.T) {
	existing := projectsWithIDs("MIG-2025-001", "MIG-2025-007")

	assert.Equal(t, "MIG-2025-008", NextProjectID(existing, 2025))
	assert.Equal(t, "MIG-2026-001", NextProjectID(existing, 2026))
}

func TestNextProjectID_Empty(t *testing.T) {
	assert.Equal(t, "MIG-2025-001", NextProjectID(nil, 2025))
}

func TestNextProjectID_SkipsMalformed(t *testing.T) {
	existing := projectsWithIDs(
		"MIG-2025-002",
		"MIG-2025-abc",
		"MIG-2025-",
		"MIG-2024-950",
		"XYZ-2025-500",
		"MIG-20255-100",
	)

	assert.Equal(t, "MIG-2025-003", NextProjectID(existing, 2025))
}

func TestNextProjectID_BeyondPadding(t *testing.T) {
	existing := projectsWithIDs("MIG-2025-999")

	assert.Equal(t, "MIG-2025-1000", NextProjectID(existing, 2025))
}
