package services

import (
	"context"
	"sort"

	"github.com/verifeed/verifeed/internal/server/models"
)

// ListFeed returns every post whose owner still resolves, joined with the
// owner's public attributes and ordered newest first. Posts with an
// unresolvable owner are dropped from the view entirely; they are not
// surfaced as orphans.
func (g *Gateway) ListFeed(ctx context.Context) ([]*models.FeedEntry, error) {
	allPosts, err := g.posts.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(allPosts) == 0 {
		return []*models.FeedEntry{}, nil
	}

	allIdentities, err := g.identities.List(ctx)
	if err != nil {
		return nil, err
	}

	owners := make(map[string]*models.Identity, len(allIdentities))
	for _, identity := range allIdentities {
		owners[identity.ID] = identity
	}

	feed := make([]*models.FeedEntry, 0, len(allPosts))
	for _, post := range allPosts {
		owner, ok := owners[post.IdentityID]
		if !ok {
			continue
		}
		feed = append(feed, &models.FeedEntry{
			PostID:          post.ID,
			IdentityID:      post.IdentityID,
			Username:        owner.Username,
			Email:           owner.Email,
			ProfileImageURL: owner.ProfileImageURL,
			Content:         post.Content,
			ImageURL:        post.ImageURL,
			Status:          post.Status,
			Timestamp:       post.Timestamp,
		})
	}

	// Stable sort keeps scan order for equal or unparseable timestamps.
	sort.SliceStable(feed, func(i, j int) bool {
		return models.ParseTimestamp(feed[i].Timestamp).After(models.ParseTimestamp(feed[j].Timestamp))
	})

	return feed, nil
}

// Stats tallies an identity's posts by authenticity status. Posts without a
// status count on neither side.
func (g *Gateway) Stats(ctx context.Context, identityID string) (*models.ImageStats, error) {
	owned, err := g.posts.ListByIdentity(ctx, identityID)
	if err != nil {
		return nil, err
	}

	stats := &models.ImageStats{}
	for _, post := range owned {
		switch {
		case post.Status == nil:
			// excluded from both counts
		case *post.Status:
			stats.RealCount++
		default:
			stats.FakeCount++
		}
	}

	return stats, nil
}
