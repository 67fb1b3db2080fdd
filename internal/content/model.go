package content

import "github.com/google/uuid"

// Collection names in the store.
const (
	GalleryKey = "bakeryGallery"
	BlogsKey   = "bakeryBlogs"
	ReviewsKey = "bakeryReviews"
	VideosKey  = "bakeryVideos"
)

// blogFallbackImage is stored when a post arrives with neither an
// upload nor a URL.
const blogFallbackImage = "https://images.unsplash.com/photo-1486427944299-d1955d23e34d"

const (
	VideoTypeURL    = "url"
	VideoTypeUpload = "upload"
)

type GalleryImage struct {
	ID  string `json:"id"`
	Src string `json:"src"`
}

func (g GalleryImage) EntityID() string { return g.ID }

type BlogPost struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content"`
	Image   string `json:"image"`
	Date    string `json:"date"`
}

func (b BlogPost) EntityID() string { return b.ID }

type Review struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (r Review) EntityID() string { return r.ID }

type Video struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Src   string `json:"src"`
	Type  string `json:"type"`
}

func (v Video) EntityID() string { return v.ID }

// NewID mints a stable feed identity.
func NewID() string {
	return uuid.NewString()
}
