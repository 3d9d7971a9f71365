package models

// Platform identifies one of the supported social networks. The set is
// closed: every switch over Platform in this package is exhaustive, and
// unknown names parse to ok=false rather than a zero Platform.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformX         Platform = "x"
	PlatformReddit    Platform = "reddit"
	PlatformPinterest Platform = "pinterest"
	PlatformYouTube   Platform = "youtube"
)

// StatusPosted is the only status value counted as a successful publish.
// Anything else (scheduled, failed, NULL) counts as non-success.
const StatusPosted = "posted"

// AllPlatforms lists every supported platform in enumeration order. Ranking
// ties are broken by this order, so it must stay stable.
var AllPlatforms = []Platform{
	PlatformInstagram,
	PlatformFacebook,
	PlatformX,
	PlatformReddit,
	PlatformPinterest,
	PlatformYouTube,
}

// ParsePlatform maps a platform name to its Platform value. Unknown names
// return ok=false; callers treat that as "no data" rather than an error.
func ParsePlatform(name string) (Platform, bool) {
	switch Platform(name) {
	case PlatformInstagram, PlatformFacebook, PlatformX, PlatformReddit, PlatformPinterest, PlatformYouTube:
		return Platform(name), true
	default:
		return "", false
	}
}

// Table returns the backing post table for the platform. Table names are
// compile-time constants; they are the only identifiers ever interpolated
// into SQL text.
func (p Platform) Table() string {
	switch p {
	case PlatformInstagram:
		return "instagram_posts"
	case PlatformFacebook:
		return "facebook_posts"
	case PlatformX:
		return "x_posts"
	case PlatformReddit:
		return "reddit_posts"
	case PlatformPinterest:
		return "pinterest_posts"
	case PlatformYouTube:
		return "youtube_posts"
	default:
		return ""
	}
}

// ContentColumn returns the column holding the platform's main content text,
// used for length and topic analysis. ok=false means the platform has no
// content column and is omitted from content statistics.
func (p Platform) ContentColumn() (string, bool) {
	switch p {
	case PlatformInstagram:
		return "caption", true
	case PlatformFacebook:
		return "message", true
	case PlatformX:
		return "text", true
	case PlatformReddit:
		return "content", true
	case PlatformPinterest:
		return "description", true
	case PlatformYouTube:
		return "description", true
	default:
		return "", false
	}
}

// ExtraColumns returns the ordered platform-specific columns surfaced in
// per-user activity history views.
func (p Platform) ExtraColumns() []string {
	switch p {
	case PlatformInstagram:
		return []string{"image_url"}
	case PlatformFacebook:
		return []string{"image_url"}
	case PlatformX:
		return []string{"image_url"}
	case PlatformReddit:
		return []string{"title", "subreddit"}
	case PlatformPinterest:
		return []string{"title", "board_name", "image_url"}
	case PlatformYouTube:
		return []string{"title", "video_url"}
	default:
		return nil
	}
}

// String implements fmt.Stringer
func (p Platform) String() string {
	return string(p)
}
