package version

import (
	"context"
	"testing"

	"github.com/google/go-github/v61/github"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockversion "github.com/jobdeck/flaggate/internal/version/mock"
)

func TestCheckLatestUpToDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mockversion.NewMockReleaseService(ctrl)

	tagName := Tag()
	service.EXPECT().
		GetLatestRelease(gomock.Any(), repositoryOwner, repositoryName).
		Return(&github.RepositoryRelease{TagName: &tagName}, nil, nil)

	latest, upToDate, err := CheckLatest(context.Background(), service)
	require.NoError(t, err)
	require.Equal(t, Tag(), latest)
	require.True(t, upToDate)
}

func TestCheckLatestBehind(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mockversion.NewMockReleaseService(ctrl)

	tagName := "v99.0.0"
	service.EXPECT().
		GetLatestRelease(gomock.Any(), repositoryOwner, repositoryName).
		Return(&github.RepositoryRelease{TagName: &tagName}, nil, nil)

	latest, upToDate, err := CheckLatest(context.Background(), service)
	require.NoError(t, err)
	require.Equal(t, "v99.0.0", latest)
	require.False(t, upToDate)
}

func TestCheckLatestError(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mockversion.NewMockReleaseService(ctrl)

	service.EXPECT().
		GetLatestRelease(gomock.Any(), repositoryOwner, repositoryName).
		Return(nil, nil, errors.New("api rate limit exceeded"))

	_, _, err := CheckLatest(context.Background(), service)
	require.Error(t, err)
}

func TestVersionString(t *testing.T) {
	require.Contains(t, Version(), Tag())
}
