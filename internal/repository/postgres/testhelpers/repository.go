package testhelpers

import (
	"github.com/campus-navigator/internal/domain/repository"
	"github.com/campus-navigator/internal/repository/postgres"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// NewFeatureSourceForTest creates a PostGIS feature source over the test database
func NewFeatureSourceForTest(db *sqlx.DB, logger *zap.Logger, roadTypes []string) repository.FeatureSource {
	return postgres.NewFeatureRepository(postgres.NewDBForTest(db, logger), roadTypes)
}
