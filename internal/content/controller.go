package content

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gyanbakery/storefront/internal/media"
)

type Confirmer interface {
	Confirm(prompt string) bool
}

// --- Gallery ---

// GalleryInput carries the gallery form. An empty ID means add.
type GalleryInput struct {
	ID     string
	URL    string
	Upload *media.Upload
}

type GalleryController struct {
	feed    *Feed[GalleryImage]
	decoder media.Decoder
	confirm Confirmer
	log     *logrus.Entry
}

func NewGalleryController(feed *Feed[GalleryImage], decoder media.Decoder, confirm Confirmer, log *logrus.Entry) *GalleryController {
	return &GalleryController{
		feed:    feed,
		decoder: decoder,
		confirm: confirm,
		log:     log,
	}
}

func (c *GalleryController) List() []GalleryImage {
	return c.feed.List()
}

func (c *GalleryController) Save(ctx context.Context, in GalleryInput) (GalleryImage, error) {
	previous := ""
	if in.ID != "" {
		existing, ok := c.feed.Find(in.ID)
		if !ok {
			return GalleryImage{}, errEntryNotFound
		}
		previous = existing.Src
	}

	src, err := media.ResolveImage(ctx, c.decoder, in.Upload, in.URL, previous, "")
	if err != nil {
		c.log.Debugf("Save: gallery image aborted - %v", err)
		return GalleryImage{}, err
	}
	if src == "" {
		// adding with nothing supplied is a no-op, as in the form
		return GalleryImage{}, errNoImageSupplied
	}

	if in.ID != "" {
		img := GalleryImage{ID: in.ID, Src: src}
		c.feed.Update(in.ID, img)
		return img, nil
	}

	img := GalleryImage{ID: NewID(), Src: src}
	c.feed.Append(img)
	return img, nil
}

func (c *GalleryController) Delete(id string) bool {
	if !c.confirm.Confirm("Delete this gallery image?") {
		return false
	}
	return c.feed.Delete(id)
}

// --- Blog ---

type BlogInput struct {
	ID       string
	Title    string
	Summary  string
	Content  string
	ImageURL string
	Upload   *media.Upload
}

type BlogController struct {
	feed    *Feed[BlogPost]
	decoder media.Decoder
	confirm Confirmer
	log     *logrus.Entry
}

func NewBlogController(feed *Feed[BlogPost], decoder media.Decoder, confirm Confirmer, log *logrus.Entry) *BlogController {
	return &BlogController{
		feed:    feed,
		decoder: decoder,
		confirm: confirm,
		log:     log,
	}
}

func (c *BlogController) List() []BlogPost {
	return c.feed.List()
}

func (c *BlogController) Save(ctx context.Context, in BlogInput) (BlogPost, error) {
	previous := ""
	if in.ID != "" {
		existing, ok := c.feed.Find(in.ID)
		if !ok {
			return BlogPost{}, errEntryNotFound
		}
		previous = existing.Image
	}

	image, err := media.ResolveImage(ctx, c.decoder, in.Upload, in.ImageURL, previous, blogFallbackImage)
	if err != nil {
		c.log.Debugf("Save: blog image aborted - %v", err)
		return BlogPost{}, err
	}

	post := BlogPost{
		ID:      in.ID,
		Title:   in.Title,
		Summary: in.Summary,
		Content: in.Content,
		Image:   image,
		Date:    time.Now().Format("1/2/2006"),
	}

	if in.ID != "" {
		c.feed.Update(in.ID, post)
		return post, nil
	}

	post.ID = NewID()
	c.feed.Prepend(post)
	return post, nil
}

func (c *BlogController) Delete(id string) bool {
	if !c.confirm.Confirm("Delete this blog post?") {
		return false
	}
	return c.feed.Delete(id)
}

// --- Reviews ---

type ReviewInput struct {
	ID      string
	Name    string
	Rating  int
	Comment string
}

type ReviewController struct {
	feed    *Feed[Review]
	confirm Confirmer
	log     *logrus.Entry
}

func NewReviewController(feed *Feed[Review], confirm Confirmer, log *logrus.Entry) *ReviewController {
	return &ReviewController{
		feed:    feed,
		confirm: confirm,
		log:     log,
	}
}

func (c *ReviewController) List() []Review {
	return c.feed.List()
}

func (c *ReviewController) Save(in ReviewInput) Review {
	rev := Review{
		ID:      in.ID,
		Name:    in.Name,
		Rating:  in.Rating,
		Comment: in.Comment,
	}

	if in.ID != "" && c.feed.Update(in.ID, rev) {
		return rev
	}

	rev.ID = NewID()
	c.feed.Prepend(rev)
	return rev
}

func (c *ReviewController) Delete(id string) bool {
	if !c.confirm.Confirm("Delete this review?") {
		return false
	}
	return c.feed.Delete(id)
}

// --- Videos ---

type VideoInput struct {
	ID     string
	Title  string
	Type   string
	URL    string
	Upload *media.Upload
}

type VideoController struct {
	feed    *Feed[Video]
	decoder media.Decoder
	confirm Confirmer
	log     *logrus.Entry
}

func NewVideoController(feed *Feed[Video], decoder media.Decoder, confirm Confirmer, log *logrus.Entry) *VideoController {
	return &VideoController{
		feed:    feed,
		decoder: decoder,
		confirm: confirm,
		log:     log,
	}
}

func (c *VideoController) List() []Video {
	return c.feed.List()
}

func (c *VideoController) Save(ctx context.Context, in VideoInput) (Video, error) {
	previous := ""
	if in.ID != "" {
		existing, ok := c.feed.Find(in.ID)
		if !ok {
			return Video{}, errEntryNotFound
		}
		previous = existing.Src
	}

	var up *media.Upload
	if in.Type == VideoTypeUpload {
		up = in.Upload
	}

	src, err := media.ResolveImage(ctx, c.decoder, up, in.URL, previous, "")
	if err != nil {
		c.log.Debugf("Save: video aborted - %v", err)
		return Video{}, err
	}

	vid := Video{
		ID:    in.ID,
		Title: in.Title,
		Src:   src,
		Type:  in.Type,
	}

	if in.ID != "" {
		c.feed.Update(in.ID, vid)
		return vid, nil
	}

	vid.ID = NewID()
	c.feed.Prepend(vid)
	return vid, nil
}

func (c *VideoController) Delete(id string) bool {
	if !c.confirm.Confirm("Delete this video?") {
		return false
	}
	return c.feed.Delete(id)
}
