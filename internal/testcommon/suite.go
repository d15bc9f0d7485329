package testcommon

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type Suite struct {
	suite.Suite
	Logger *zap.Logger
}

func (s *Suite) SetupSuite() {
	s.Logger = SetupLogger(s.T())
}

func (s *Suite) TearDownSuite() {
	_ = s.Logger.Sync()
}

// FakeUserID returns a synthetic user identifier of the shape the
// platform issues to signed-in users.
func (s *Suite) FakeUserID() string {
	return fmt.Sprintf("%s-%d", gofakeit.Username(), gofakeit.Number(0, 9999))
}
