package idgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/questline/internal/pkg/idgen"
)

type IDGenTestSuite struct {
	suite.Suite
}

func TestIDGenSuite(t *testing.T) {
	suite.Run(t, new(IDGenTestSuite))
}

func (s *IDGenTestSuite) TestSequential() {
	gen := idgen.NewSequential(idgen.PrefixCard)
	s.Assert().Equal("card_1", gen.Generate())
	s.Assert().Equal("card_2", gen.Generate())

	bare := idgen.NewSequential("")
	s.Assert().Equal("1", bare.Generate())
}

func (s *IDGenTestSuite) TestUUID() {
	gen := idgen.NewUUID(idgen.PrefixSession)
	first := gen.Generate()
	second := gen.Generate()

	s.Assert().True(strings.HasPrefix(first, "sess_"))
	s.Assert().Len(first, len("sess_")+36)
	s.Assert().NotEqual(first, second)
}
