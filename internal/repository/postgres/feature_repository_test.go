package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/campus-navigator/internal/domain"
	"github.com/campus-navigator/internal/repository/postgres/testhelpers"
	"github.com/campus-navigator/internal/roadgraph"
)

// FeatureRepositorySuite tests the PostGIS feature source against a real database
type FeatureRepositorySuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	ctx    context.Context
}

func (s *FeatureRepositorySuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())
	s.ctx = context.Background()

	s.testDB.Migrate(s.T(), "../../../migrations")
	s.Require().NoError(s.testDB.Cleanup(s.ctx))
	s.testDB.LoadFixtures(s.T(), "testdata", "campus.sql")
}

func (s *FeatureRepositorySuite) TearDownSuite() {
	if s.testDB != nil {
		_ = s.testDB.Cleanup(context.Background())
		s.testDB.Close()
	}
}

func (s *FeatureRepositorySuite) TestLoadNodes() {
	source := testhelpers.NewFeatureSourceForTest(s.testDB.DB, s.testDB.Logger, nil)
	s.Equal("postgres", source.Name())

	nodes, err := source.LoadNodes(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(nodes, 4)

	s.Equal("gate1", nodes[0].ID)
	s.Equal("Main Gate", nodes[0].Name)
	s.True(nodes[0].IsDestination)
	s.Equal("entrance", nodes[0].Category)

	resolved, ok := nodes[1].Resolve()
	s.Require().True(ok)
	s.Equal(domain.DefaultNodeName, resolved.Name)
	s.InDelta(0.0009, resolved.Lat(), 1e-12)

	s.Nil(nodes[3].Geometry, "row without geometry decodes to nil")
}

func (s *FeatureRepositorySuite) TestLoadSegments() {
	source := testhelpers.NewFeatureSourceForTest(s.testDB.DB, s.testDB.Logger, nil)

	segments, err := source.LoadSegments(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(segments, 3)

	s.Equal(domain.RoadTypeMain, segments[0].Type)
	s.Equal(domain.RoadTypeSecondary, segments[2].Type, "unknown road type falls back")
	s.InDelta(100.0, segments[0].Length(), 0.5)
}

func (s *FeatureRepositorySuite) TestLoadSegments_RoadTypeFilter() {
	source := testhelpers.NewFeatureSourceForTest(s.testDB.DB, s.testDB.Logger, []string{"main", "path"})

	segments, err := source.LoadSegments(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(segments, 2)
	s.Equal("r1", segments[0].ID)
	s.Equal("r2", segments[1].ID)
}

func (s *FeatureRepositorySuite) TestBuildsRoutableNetwork() {
	source := testhelpers.NewFeatureSourceForTest(s.testDB.DB, s.testDB.Logger, []string{"main", "path"})

	nodes, err := source.LoadNodes(s.ctx)
	s.Require().NoError(err)
	segments, err := source.LoadSegments(s.ctx)
	s.Require().NoError(err)

	network := roadgraph.NewNetwork(nodes, segments, roadgraph.Options{Source: source.Name()}, s.testDB.Logger)
	route, err := network.Route("gate1", "library")
	s.Require().NoError(err)
	s.Equal([]string{"gate1", "quad", "library"}, route.NodePath)
	s.InDelta(250.0, route.Distance, 1.0)
}

func (s *FeatureRepositorySuite) TestHealth() {
	source := testhelpers.NewFeatureSourceForTest(s.testDB.DB, s.testDB.Logger, nil)

	hc, ok := source.(interface{ Health(context.Context) error })
	s.Require().True(ok)
	s.NoError(hc.Health(s.ctx))
}

func TestFeatureRepositorySuite(t *testing.T) {
	suite.Run(t, new(FeatureRepositorySuite))
}
