package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/questline/internal/pkg/clock"
)

type ManualTestSuite struct {
	suite.Suite
	start  time.Time
	manual *clock.Manual
}

func TestManualSuite(t *testing.T) {
	suite.Run(t, new(ManualTestSuite))
}

func (s *ManualTestSuite) SetupTest() {
	s.start = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s.manual = clock.NewManual(s.start)
}

func (s *ManualTestSuite) TestRunsOnlyWhenDue() {
	ran := false
	s.manual.AfterFunc(800*time.Millisecond, func() { ran = true })

	s.manual.Advance(799 * time.Millisecond)
	s.Assert().False(ran)
	s.Assert().Equal(1, s.manual.Pending())

	s.manual.Advance(time.Millisecond)
	s.Assert().True(ran)
	s.Assert().Equal(0, s.manual.Pending())
	s.Assert().Equal(s.start.Add(800*time.Millisecond), s.manual.Now())
}

func (s *ManualTestSuite) TestRunsInDeadlineOrder() {
	var order []string
	s.manual.AfterFunc(3*time.Second, func() { order = append(order, "overlay") })
	s.manual.AfterFunc(time.Second, func() { order = append(order, "first") })
	s.manual.AfterFunc(time.Second, func() { order = append(order, "second") })

	s.manual.Advance(5 * time.Second)
	s.Assert().Equal([]string{"first", "second", "overlay"}, order)
}

func (s *ManualTestSuite) TestStopCancels() {
	ran := false
	timer := s.manual.AfterFunc(time.Second, func() { ran = true })

	s.Assert().True(timer.Stop())
	s.Assert().False(timer.Stop())
	s.manual.Advance(2 * time.Second)
	s.Assert().False(ran)
}

func (s *ManualTestSuite) TestFlushRunsChainedContinuations() {
	count := 0
	var step func()
	step = func() {
		count++
		if count < 3 {
			s.manual.AfterFunc(800*time.Millisecond, step)
		}
	}
	s.manual.AfterFunc(800*time.Millisecond, step)

	s.manual.Flush()
	s.Assert().Equal(3, count)
	s.Assert().Equal(s.start.Add(2400*time.Millisecond), s.manual.Now())
}
