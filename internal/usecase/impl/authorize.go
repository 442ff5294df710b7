package impl

import (
	"context"

	"fence/internal/domain/repository"

	"github.com/pkg/errors"
)

// canAccessWard reports whether the caller may read a ward's data: the ward
// themselves always can, a supporter only while linked to the ward.
func canAccessWard(ctx context.Context, linkRepo repository.LinkRepository, callerNumber, wardNumber string) (bool, error) {
	if callerNumber == wardNumber {
		return true, nil
	}

	links, err := linkRepo.FindLinksBySupporter(ctx, callerNumber)
	if err != nil {
		return false, errors.Wrap(err, "failed to find links by supporter")
	}

	for _, link := range links {
		if link.WardNumber == wardNumber {
			return true, nil
		}
	}

	return false, nil
}
