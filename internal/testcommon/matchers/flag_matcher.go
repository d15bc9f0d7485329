package matchers

import (
	"fmt"

	"github.com/jobdeck/flaggate/pkg/flags"
)

// FlagMatcher matches gomock calls by flag name, accepting both the
// typed and the raw string form.
type FlagMatcher struct {
	flag flags.Flag
}

func NewFlagMatcher(flag flags.Flag) *FlagMatcher {
	return &FlagMatcher{
		flag: flag,
	}
}

func (m *FlagMatcher) Matches(x interface{}) bool {
	switch flag := x.(type) {
	case flags.Flag:
		return m.flag == flag
	case string:
		return m.flag.String() == flag
	}
	return false
}

func (m *FlagMatcher) String() string {
	return fmt.Sprintf("is equal to flag %s", m.flag)
}
