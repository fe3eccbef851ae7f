package application

import "github.com/karasuno/wpfront/blog/domain"

// DefaultRelatedCount is how many related posts a post page shows.
const DefaultRelatedCount = 5

// RelatedPosts selects up to maxCount posts related to target: posts
// other than target itself that share at least one tag with it, in their
// original order within all. One shared tag counts the same as many;
// there is no re-ranking. Pure function: all is never mutated.
func RelatedPosts(target domain.Post, all []domain.Post, maxCount int) []domain.Post {
	related := []domain.Post{}
	if maxCount <= 0 {
		return related
	}

	for _, post := range all {
		if post.ID == target.ID {
			continue
		}
		if !sharesTag(target, post) {
			continue
		}
		related = append(related, post)
		if len(related) == maxCount {
			break
		}
	}
	return related
}

func sharesTag(a, b domain.Post) bool {
	for _, tag := range a.Tags {
		if b.HasTag(tag.ID) {
			return true
		}
	}
	return false
}
