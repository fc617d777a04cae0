package entities_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/questline/internal/entities"
)

type TierTestSuite struct {
	suite.Suite
}

func TestTierSuite(t *testing.T) {
	suite.Run(t, new(TierTestSuite))
}

func (s *TierTestSuite) TestValueArithmeticRegion() {
	for t := entities.TierF; t <= entities.TierLR; t++ {
		s.Assert().Equal(float64(t)+1, t.Value(), "tier %s", t)
	}
	s.Assert().Equal(6.0, entities.TierA.Value())
	s.Assert().Equal(4.0, entities.TierC.Value())
}

func (s *TierTestSuite) TestValueGeometricRegion() {
	s.Assert().Equal(13.0, entities.TierMR.Value())
	s.Assert().Equal(26.0, entities.TierX.Value())
	s.Assert().Equal(52.0, entities.TierXX.Value())
	s.Assert().Equal(13.0*32, entities.TierDX.Value())
}

func (s *TierTestSuite) TestValueIsMonotonic() {
	for t := entities.TierF; t < entities.Unmeasurable; t++ {
		s.Assert().Less(t.Value(), (t + 1).Value())
	}
}

func (s *TierTestSuite) TestLabels() {
	s.Assert().Equal("F", entities.TierF.Label())
	s.Assert().Equal("SSS", entities.CardGatedTier.Label())
	s.Assert().Equal("DX", entities.MaxTier.Label())
	s.Assert().Equal("UNMEASURABLE", entities.Unmeasurable.Label())
	s.Assert().Equal("UNMEASURABLE", entities.Tier(100).String())

	t, ok := entities.ParseTier("LR")
	s.Assert().True(ok)
	s.Assert().Equal(entities.TierLR, t)

	_, ok = entities.ParseTier("Z")
	s.Assert().False(ok)
}

func (s *TierTestSuite) TestHitPointsSaturate() {
	s.Assert().Equal(150+4*20, entities.HitPoints(150, 20, entities.TierC))
	s.Assert().Equal(math.MaxInt32, entities.HitPoints(200, 20, entities.Tier(100)))
}

func (s *TierTestSuite) TestClamp() {
	s.Assert().Equal(entities.TierF, entities.Tier(-3).Clamp(entities.MaxTier))
	s.Assert().Equal(entities.TierSSS, entities.TierDX.Clamp(entities.TierSSS))
	s.Assert().Equal(entities.TierB, entities.TierB.Clamp(entities.TierSSS))
}
