package version

import (
	"context"

	"github.com/google/go-github/v61/github"
	"github.com/pkg/errors"
)

//go:generate mockgen -source=release.go -destination=mock/release.go

const repositoryOwner = "jobdeck"
const repositoryName = "flaggate"

// ReleaseService is the slice of the GitHub API used for the update
// check. *github.RepositoriesService satisfies it.
type ReleaseService interface {
	GetLatestRelease(ctx context.Context, owner string, repo string) (*github.RepositoryRelease, *github.Response, error)
}

func NewReleaseService() ReleaseService {
	return github.NewClient(nil).Repositories
}

// CheckLatest fetches the latest published release tag and reports
// whether the running binary is current.
func CheckLatest(ctx context.Context, service ReleaseService) (string, bool, error) {
	release, _, err := service.GetLatestRelease(ctx, repositoryOwner, repositoryName)
	if err != nil {
		return "", false, errors.Wrap(err, "failed to fetch latest release")
	}

	latest := release.GetTagName()
	return latest, latest == Tag(), nil
}
